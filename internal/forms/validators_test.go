package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentification(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"six digits minimum", "123456", "123456"},
		{"twelve digits maximum", "123456789012", "123456789012"},
		{"formatting stripped", "1.234.567", "1234567"},
		{"too short", "12345", nil},
		{"too long", "1234567890123", nil},
		{"no digits", "sin número", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateIdentification(tt.in)
			assert.Equal(t, tt.want, res.Value)
			if tt.want == nil {
				assert.True(t, res.Rejected())
				assert.NotEmpty(t, res.Prompt)
			}
		})
	}
}

func TestValidatePQRSType(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"queja", "queja"},
		{"Petición", "peticion"},
		{"PQRS", "peticion"},
		{"FELICITACIÓN", "felicitacion"},
		{"denuncia", "denuncia"},
		{"otra cosa", nil},
	}
	for _, tt := range tests {
		res := ValidatePQRSType(tt.in)
		assert.Equal(t, tt.want, res.Value, "input %q", tt.in)
	}
}

func TestValidateFullName(t *testing.T) {
	res := ValidateFullName("juan  camilo pérez")
	assert.Equal(t, "Juan Camilo Pérez", res.Value)

	assert.True(t, ValidateFullName("Ana1 Gómez").Rejected())
	assert.True(t, ValidateFullName("Ana").Rejected())
	assert.True(t, ValidateFullName("").Rejected())
}

func TestValidateContactEmail(t *testing.T) {
	assert.Equal(t, "ana@defensoria.gov.co", ValidateContactEmail(" ana@defensoria.gov.co ").Value)
	assert.True(t, ValidateContactEmail("sin-arroba").Rejected())
	assert.True(t, ValidateContactEmail("a@b").Rejected())
}

func TestValidateContactPhone(t *testing.T) {
	assert.Equal(t, "3138447735", ValidateContactPhone("313 844 77 35").Value)
	assert.Equal(t, "1234567", ValidateContactPhone("1234567").Value)
	assert.True(t, ValidateContactPhone("123456").Rejected())
	assert.True(t, ValidateContactPhone("123456789012").Rejected())
}

func TestValidateCaseDescription(t *testing.T) {
	assert.Equal(t, "me citaron sin aviso", ValidateCaseDescription("  me citaron   sin aviso ").Value)
	assert.True(t, ValidateCaseDescription("corto").Rejected())
}

func TestValidateNotificationMethod(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"por teléfono", "telefono"},
		{"llamada", "telefono"},
		{"whatsapp", "telefono"},
		{"correo electrónico", "correo"},
		{"e-mail", "correo"},
		{"notificación física", "fisico"},
		{"a mi dirección", "fisico"},
		{"paloma mensajera", nil},
	}
	for _, tt := range tests {
		res := ValidateNotificationMethod(tt.in)
		assert.Equal(t, tt.want, res.Value, "input %q", tt.in)
	}
}

func TestValidateContactName(t *testing.T) {
	// Name and phone arriving together: digits removed before the check.
	res := ValidateContactName("sebastian 3138447735")
	assert.Equal(t, "Sebastian", res.Value)

	res = ValidateContactName("maría del pilar")
	assert.Equal(t, "María Del Pilar", res.Value)

	assert.True(t, ValidateContactName("3138447735").Rejected())
}

func TestFormDefinitionsCoverTheirSlots(t *testing.T) {
	for _, f := range []Form{ConsultaProceso(), PQRSDF(), Contacto()} {
		for _, slot := range f.Slots {
			assert.Contains(t, f.Validators, slot, "form %s", f.Name)
		}
	}
}
