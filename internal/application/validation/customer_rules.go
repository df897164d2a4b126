package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/rocketstore-api/internal/application/dto"
)

// VatNumberPattern patrón del NIF: exactamente nueve dígitos ASCII.
const VatNumberPattern = `^[0-9]{9}$`

var vatNumberRe = regexp.MustCompile(VatNumberPattern)

// Mensajes por campo y regla.
const (
	MsgNameRequired   = "The Name field is required."
	MsgEmailRequired  = "The Email field is required."
	MsgEmailInvalid   = "The Email field is not a valid e-mail address."
	MsgVatNumberRegex = "The field VAT Number must match the regular expression '" + VatNumberPattern + "'."
)

// Violations mapa campo (nombre JSON) -> mensajes.
type Violations map[string][]string

// Empty indica si no hubo violaciones.
func (v Violations) Empty() bool { return len(v) == 0 }

// String concatena las violaciones en una descripción de una línea, en orden de campos del DTO.
func (v Violations) String() string {
	var parts []string
	for _, field := range []string{"name", "email", "vat_number"} {
		for _, msg := range v[field] {
			parts = append(parts, field+": "+msg)
		}
	}
	return strings.Join(parts, " ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Usar el nombre JSON como nombre de campo en los errores
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("vatnumber", func(fl validator.FieldLevel) bool {
		return IsValidVatNumber(fl.Field().String())
	})
	return v
}

// IsValidVatNumber verifica el NIF contra VatNumberPattern.
func IsValidVatNumber(s string) bool {
	return vatNumberRe.MatchString(s)
}

// ValidateCustomer evalúa las reglas del modelo de escritura y devuelve todas las violaciones.
func ValidateCustomer(in *dto.CreateCustomerRequest) Violations {
	out := Violations{}
	err := validate.Struct(in)
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: solo ocurre con argumentos nil o no-struct.
		panic(err)
	}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "name.required":
		return MsgNameRequired
	case "email.required":
		return MsgEmailRequired
	case "email.email":
		return MsgEmailInvalid
	case "vat_number.vatnumber":
		return MsgVatNumberRegex
	default:
		return "The " + fe.Field() + " field is invalid."
	}
}

// NormalizeCustomer recorta espacios y normaliza a NFC nombre y dirección.
// El email solo se recorta: la unicidad compara el valor almacenado exacto.
// El NIF no se toca: se valida tal cual llega.
func NormalizeCustomer(in *dto.CreateCustomerRequest) {
	in.Name = norm.NFC.String(strings.TrimSpace(in.Name))
	in.Email = strings.TrimSpace(in.Email)
	if in.Address != nil {
		addr := norm.NFC.String(strings.TrimSpace(*in.Address))
		if addr == "" {
			in.Address = nil
		} else {
			in.Address = &addr
		}
	}
}
