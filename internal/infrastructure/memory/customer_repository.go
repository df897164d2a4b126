package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/rocketstore-api/internal/application/customers"
	"github.com/jhoicas/rocketstore-api/internal/domain"
	"github.com/jhoicas/rocketstore-api/internal/domain/entity"
	"github.com/jhoicas/rocketstore-api/internal/domain/repository"
)

var (
	_ customers.TxRunner            = (*Store)(nil)
	_ repository.CustomerRepository = (*session)(nil)
)

// Store almacén in-memory de clientes para desarrollo local y tests.
// Cada Run trabaja sobre una copia y la publica solo si fn tiene éxito;
// las sesiones se serializan, así que la unicidad del email es atómica.
type Store struct {
	mu    sync.Mutex
	items map[string]entity.Customer
	order []string // orden de inserción = orden natural del store
}

// NewStore devuelve un store vacío.
func NewStore() *Store {
	return &Store{items: make(map[string]entity.Customer)}
}

// Run ejecuta fn con un repositorio atado a una copia del estado y hace "commit" al terminar sin error.
func (s *Store) Run(ctx context.Context, fn func(repo repository.CustomerRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		items: make(map[string]entity.Customer, len(s.items)),
		order: append([]string(nil), s.order...),
	}
	for k, v := range s.items {
		sess.items[k] = v
	}
	if err := fn(sess); err != nil {
		return err
	}
	s.items = sess.items
	s.order = sess.order
	return nil
}

// Len cantidad de clientes confirmados.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type session struct {
	items map[string]entity.Customer
	order []string
}

func (s *session) Add(_ context.Context, c *entity.Customer) error {
	if _, exists := s.items[c.ID]; exists {
		return domain.ErrDuplicate
	}
	for _, existing := range s.items {
		if existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	// Guardamos una copia para evitar mutaciones externas.
	s.items[c.ID] = *c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *session) FindByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *session) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, id := range s.order {
		if c := s.items[id]; c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *session) Remove(_ context.Context, c *entity.Customer) error {
	if _, ok := s.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, c.ID)
	for i, id := range s.order {
		if id == c.ID {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *session) ListAll(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(s.order))
	for _, id := range s.order {
		c := s.items[id]
		out = append(out, &c)
	}
	return out, nil
}
