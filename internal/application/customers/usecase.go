package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/rocketstore-api/internal/application/dto"
	"github.com/jhoicas/rocketstore-api/internal/application/ports"
	"github.com/jhoicas/rocketstore-api/internal/application/validation"
	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
	"github.com/jhoicas/rocketstore-api/internal/domain/repository"
	"github.com/jhoicas/rocketstore-api/pkg/logger"
)

// Nombres de operación usados en logs y métricas.
const (
	OpCreate = "create"
	OpList   = "list"
	OpGet    = "get"
	OpDelete = "delete"
)

// CustomerUseCase orquesta el ciclo de vida de clientes: valida, aplica la unicidad del email,
// coordina el store con la geocodificación y reduce todo a un domain.Result.
type CustomerUseCase struct {
	tx       TxRunner
	geo      ports.GeocodingGateway
	recorder ports.OperationRecorder
	log      *logger.Logger
	now      func() time.Time
}

// NewCustomerUseCase construye el caso de uso. recorder puede ser nil.
func NewCustomerUseCase(tx TxRunner, geo ports.GeocodingGateway, recorder ports.OperationRecorder, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		tx:       tx,
		geo:      geo,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

// Create crea un cliente y devuelve su ID. in nil es una violación de contrato (panic).
func (uc *CustomerUseCase) Create(ctx context.Context, in *dto.CreateCustomerRequest) domain.Result[string] {
	if in == nil {
		panic("customers: Create requiere un cliente no nil")
	}
	req := *in
	validation.NormalizeCustomer(&req)
	if v := validation.ValidateCustomer(&req); !v.Empty() {
		uc.log.Warn().Str("op", OpCreate).Str("violations", v.String()).Msg("cliente inválido")
		return record(uc, OpCreate, domain.Failure[string](domain.ErrCodeValidationFailed, v.String()))
	}

	customer := newCustomer(req, uc.now().UTC())
	err := uc.tx.Run(ctx, func(repo repository.CustomerRepository) error {
		existing, err := repo.FindByEmail(ctx, customer.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return repo.Add(ctx, customer)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		msg := fmt.Sprintf("A customer with email '%s' already exists.", customer.Email)
		uc.log.Warn().Str("op", OpCreate).Str("email", customer.Email).Msg("email duplicado")
		return record(uc, OpCreate, domain.Failure[string](domain.ErrCodeCustomerAlreadyExists, msg))
	}
	if err != nil {
		return record(uc, OpCreate, persistenceFailure[string](uc, OpCreate, err))
	}

	uc.log.Info().Str("op", OpCreate).Str("id", customer.ID).Msgf("cliente '%s' creado", customer.Name)
	return record(uc, OpCreate, domain.Success(customer.ID))
}

// List devuelve los resúmenes en el orden del store. Un filtro vacío no restringe;
// si no, conserva los clientes cuyo campo contiene el filtro (sensible a mayúsculas).
func (uc *CustomerUseCase) List(ctx context.Context, nameFilter, emailFilter string) domain.Result[[]dto.CustomerSummary] {
	var all []*entity.Customer
	err := uc.tx.Run(ctx, func(repo repository.CustomerRepository) error {
		var err error
		all, err = repo.ListAll(ctx)
		return err
	})
	if err != nil {
		return record(uc, OpList, persistenceFailure[[]dto.CustomerSummary](uc, OpList, err))
	}

	out := make([]dto.CustomerSummary, 0, len(all))
	for _, c := range all {
		s := toCustomerSummary(c)
		if nameFilter != "" && !strings.Contains(s.Name, nameFilter) {
			continue
		}
		if emailFilter != "" && !strings.Contains(s.Email, emailFilter) {
			continue
		}
		out = append(out, s)
	}
	uc.log.Info().Str("op", OpList).Int("count", len(out)).Msg("listado de clientes")
	return record(uc, OpList, domain.Success(out))
}

// GetByID devuelve el detalle con la ubicación resuelta. Si la geocodificación falla,
// la operación entera falla: no hay detalle parcial.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) domain.Result[*dto.CustomerDetail] {
	customer, res, ok := uc.find(ctx, OpGet, id)
	if !ok {
		return record(uc, OpGet, domain.FailureFrom[*dto.CustomerDetail](res))
	}

	detail := toCustomerDetail(customer)
	loc := uc.geo.ResolveLocation(ctx, customer.AddressOrEmpty())
	if loc.Failed() {
		uc.log.Warn().Str("op", OpGet).Str("id", id).Str("code", string(loc.ErrorCode())).
			Msg("error solicitando geolocalización")
		return record(uc, OpGet, domain.FailureFrom[*dto.CustomerDetail](loc))
	}
	location, _ := loc.Value()
	detail.Location = &location

	uc.log.Info().Str("op", OpGet).Str("id", id).Msg("cliente obtenido")
	return record(uc, OpGet, domain.Success(detail))
}

// DeleteByID elimina el cliente y devuelve el ID eliminado.
func (uc *CustomerUseCase) DeleteByID(ctx context.Context, id string) domain.Result[string] {
	err := uc.tx.Run(ctx, func(repo repository.CustomerRepository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		return repo.Remove(ctx, c)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return record(uc, OpDelete, notFound[string](uc, OpDelete, id))
	}
	if err != nil {
		return record(uc, OpDelete, persistenceFailure[string](uc, OpDelete, err))
	}

	uc.log.Info().Str("op", OpDelete).Str("id", id).Msg("cliente eliminado")
	return record(uc, OpDelete, domain.Success(id))
}

// find lee un cliente en su propia sesión; ok=false trae el fallo en res.
func (uc *CustomerUseCase) find(ctx context.Context, op, id string) (*entity.Customer, domain.Result[struct{}], bool) {
	var customer *entity.Customer
	err := uc.tx.Run(ctx, func(repo repository.CustomerRepository) error {
		var err error
		customer, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, persistenceFailure[struct{}](uc, op, err), false
	}
	if customer == nil {
		return nil, notFound[struct{}](uc, op, id), false
	}
	return customer, domain.Success(struct{}{}), true
}
