package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAliasOrder(t *testing.T) {
	t.Run("first non-empty alias wins", func(t *testing.T) {
		r := Record{
			"Número de identificación": "111",
			"Cedula":                   "222",
		}
		assert.Equal(t, "111", Resolve(r, FieldID))
	})

	t.Run("blank values are skipped", func(t *testing.T) {
		r := Record{
			"Número de identificación": "   ",
			"Cedula":                   "222",
		}
		assert.Equal(t, "222", Resolve(r, FieldID))
	})

	t.Run("values are trimmed", func(t *testing.T) {
		r := Record{"Defensor asignado": "  Ana Gómez  "}
		assert.Equal(t, "Ana Gómez", Resolve(r, FieldDefender))
	})

	t.Run("unresolved field is empty for comparisons", func(t *testing.T) {
		assert.Equal(t, "", Resolve(Record{}, FieldDocket))
	})
}

func TestResolveOrNA(t *testing.T) {
	r := Record{"Departamento": "Antioquia"}
	assert.Equal(t, "Antioquia", ResolveOrNA(r, FieldDepartment))
	assert.Equal(t, NotAvailable, ResolveOrNA(r, FieldCourt))
}

func TestResolveAccentedAndSnakeVariants(t *testing.T) {
	accented := Record{"Número de radicado": "RAD-001"}
	snake := Record{"radicado": "RAD-002"}
	assert.Equal(t, "RAD-001", Resolve(accented, FieldDocket))
	assert.Equal(t, "RAD-002", Resolve(snake, FieldDocket))
}
