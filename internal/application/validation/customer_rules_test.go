package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketstore-api/internal/application/dto"
	"github.com/jhoicas/rocketstore-api/internal/application/validation"
)

func strPtr(s string) *string { return &s }

func TestValidateCustomer_RequiresNameAndEmail(t *testing.T) {
	got := validation.ValidateCustomer(&dto.CreateCustomerRequest{})

	assert.Equal(t, validation.Violations{
		"name":  {validation.MsgNameRequired},
		"email": {validation.MsgEmailRequired},
	}, got)
}

func TestValidateCustomer_RequiresValidEmail(t *testing.T) {
	got := validation.ValidateCustomer(&dto.CreateCustomerRequest{
		Name:  "A customer",
		Email: "An invalid email",
	})

	assert.Equal(t, validation.Violations{
		"email": {validation.MsgEmailInvalid},
	}, got)
}

func TestValidateCustomer_VatNumber(t *testing.T) {
	cases := []struct {
		name  string
		vat   *string
		valid bool
	}{
		{"ausente", nil, true},
		{"nueve dígitos", strPtr("123456789"), true},
		{"diez dígitos", strPtr("1234567892"), false},
		{"ocho dígitos", strPtr("12345678"), false},
		{"con prefijo", strPtr("PT123456789"), false},
		{"con separadores", strPtr("123-456-789"), false},
		{"vacío", strPtr(""), false},
		{"espacio inicial", strPtr(" 123456789"), false},
		{"salto de línea final", strPtr("123456789\n"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ValidateCustomer(&dto.CreateCustomerRequest{
				Name:      "A customer",
				Email:     "customer@server.pt",
				VatNumber: tc.vat,
			})
			if tc.valid {
				assert.True(t, got.Empty(), "violaciones inesperadas: %v", got)
				return
			}
			assert.Equal(t, validation.Violations{
				"vat_number": {"The field VAT Number must match the regular expression '^[0-9]{9}$'."},
			}, got)
		})
	}
}

func TestViolations_String(t *testing.T) {
	v := validation.Violations{
		"email": {validation.MsgEmailRequired},
		"name":  {validation.MsgNameRequired},
	}
	assert.Equal(t, "name: The Name field is required. email: The Email field is required.", v.String())
}

func TestNormalizeCustomer(t *testing.T) {
	in := &dto.CreateCustomerRequest{
		Name:      "  José  ",
		Email:     " jose@server.pt ",
		Address:   strPtr("   "),
		VatNumber: strPtr(" 123456789 "),
	}

	validation.NormalizeCustomer(in)

	assert.Equal(t, "José", in.Name)
	assert.Equal(t, "jose@server.pt", in.Email)
	assert.Nil(t, in.Address)
	require.NotNil(t, in.VatNumber)
	assert.Equal(t, " 123456789 ", *in.VatNumber)
}

func TestNormalizeThenValidate_RejectsPaddedVatNumber(t *testing.T) {
	in := &dto.CreateCustomerRequest{
		Name:      "A customer",
		Email:     "customer@server.pt",
		VatNumber: strPtr(" 123456789\n"),
	}

	validation.NormalizeCustomer(in)
	got := validation.ValidateCustomer(in)

	assert.Equal(t, validation.Violations{
		"vat_number": {validation.MsgVatNumberRegex},
	}, got)
}
