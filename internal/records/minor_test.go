package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMinorDocumentType(t *testing.T) {
	tests := []struct {
		name    string
		docType string
		want    bool
	}{
		{"TI uppercase", "TI", true},
		{"ti lowercase", "ti", true},
		{"long form with accents", "Tarjeta de Identidad", true},
		{"snake form", "tarjeta_identidad", true},
		{"adult cedula", "CC", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{"Tipo de documento": tt.docType}
			assert.Equal(t, tt.want, IsMinor(r))
		})
	}
}

func TestIsMinorDocTypeDominates(t *testing.T) {
	// TI classifies as minor regardless of contradictory age or flag values.
	r := Record{
		"Tipo de documento": "TI",
		"Edad":              "35",
		"Es menor":          "no",
	}
	assert.True(t, IsMinor(r))
}

func TestIsMinorAgeSignal(t *testing.T) {
	tests := []struct {
		age  string
		want bool
	}{
		{"0", true},
		{"17", true},
		{"18", false},
		{"45", false},
		{"-1", false},
		{"desconocida", false}, // unparseable age contributes nothing
		{"", false},
	}
	for _, tt := range tests {
		r := Record{"Tipo de documento": "CC", "Edad": tt.age}
		assert.Equal(t, tt.want, IsMinor(r), "age %q", tt.age)
	}
}

func TestIsMinorExplicitFlag(t *testing.T) {
	for _, v := range []string{"si", "Sí", "SI", "true", "1", "x", "yes"} {
		r := Record{"Es menor": v}
		assert.True(t, IsMinor(r), "flag %q", v)
	}
	for _, v := range []string{"no", "false", "0", ""} {
		r := Record{"Es menor": v}
		assert.False(t, IsMinor(r), "flag %q", v)
	}
}

func TestIsMinorMonotonicOR(t *testing.T) {
	// Starting from any record already classified minor, adding further
	// signals never flips the classification back to false.
	base := Record{"Tipo de documento": "TI"}
	assert.True(t, IsMinor(base))

	withAge := Record{"Tipo de documento": "TI", "Edad": "17"}
	assert.True(t, IsMinor(withAge))

	withAll := Record{"Tipo de documento": "TI", "Edad": "17", "Es menor": "si"}
	assert.True(t, IsMinor(withAll))

	flagOnly := Record{"Tipo de documento": "CC", "Edad": "40", "Es menor": "si"}
	assert.True(t, IsMinor(flagOnly))
}
