// Package forms validates the slot values collected by the dialogue forms:
// the case-lookup form, the PQRSDF complaint form, and the human-handoff
// contact form. Each validator returns the canonical slot value or a
// rejection with the user-facing re-prompt.
package forms

import (
	"regexp"
	"strings"

	"defensoria/internal/records"
)

// SlotResult reports one slot validation. A rejected slot carries a nil
// Value so the dialogue backend re-asks, plus the prompt to utter.
type SlotResult struct {
	Name   string
	Value  any
	Prompt string
}

// SlotValidator validates one raw slot value.
type SlotValidator func(raw string) SlotResult

func accept(name string, value any) SlotResult {
	return SlotResult{Name: name, Value: value}
}

func reject(name, prompt string) SlotResult {
	return SlotResult{Name: name, Value: nil, Prompt: prompt}
}

// Rejected reports whether the slot value was refused.
func (r SlotResult) Rejected() bool { return r.Value == nil }

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	nameRe  = regexp.MustCompile("^[A-Za-zÁÉÍÓÚÑáéíóúñüÜ'´` ]+$")
	digitRe = regexp.MustCompile(`\d+`)
)

// Canonical PQRSDF types plus accepted synonyms.
var pqrsTypes = map[string]string{
	"peticion":     "peticion",
	"petición":     "peticion",
	"queja":        "queja",
	"reclamo":      "reclamo",
	"sugerencia":   "sugerencia",
	"denuncia":     "denuncia",
	"felicitacion": "felicitacion",
	"felicitación": "felicitacion",
	"pqr":          "peticion",
	"pqrs":         "peticion",
	"pqrsdf":       "peticion",
}

var canonicalPQRSTypes = map[string]struct{}{
	"peticion":     {},
	"queja":        {},
	"reclamo":      {},
	"sugerencia":   {},
	"denuncia":     {},
	"felicitacion": {},
}

// TitleName normalizes spacing and capitalizes each word of a person name.
func TitleName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ValidEmail reports whether s is a plausible email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidName accepts full names of at least five characters consisting of
// letters (Spanish diacritics included) and spaces.
func ValidName(s string) bool {
	s = records.NormSpaces(s)
	return len([]rune(s)) >= 5 && nameRe.MatchString(s)
}

// PhoneOK accepts 7 to 11 digits, covering long landlines and mobiles.
func PhoneOK(digits string) bool {
	return len(digits) >= 7 && len(digits) <= 11
}

// IDLengthOK bounds identification numbers to 6–12 digits.
func IDLengthOK(digits string) bool {
	return len(digits) >= 6 && len(digits) <= 12
}

// MapContactMethod canonicalizes free text like "por teléfono",
// "correo electrónico" or "notificación física" to correo/telefono/fisico.
// Returns "" when nothing matches.
func MapContactMethod(s string) string {
	t := records.FoldKey(records.NormSpaces(s))
	for _, w := range []string{"telefono", "llamada", "celular", "movil", "whatsapp"} {
		if strings.Contains(t, w) {
			return "telefono"
		}
	}
	for _, w := range []string{"correo", "email", "e-mail", "mail", "electronico"} {
		if strings.Contains(t, w) {
			return "correo"
		}
	}
	for _, w := range []string{"fisica", "domicilio", "direccion"} {
		if strings.Contains(t, w) {
			return "fisico"
		}
	}
	return ""
}

// CanonicalPQRSType maps free text to one of the six PQRSDF types.
func CanonicalPQRSType(s string) (string, bool) {
	raw := records.NormSpaces(records.FoldKey(s))
	choice, ok := pqrsTypes[raw]
	if !ok {
		choice = raw
	}
	_, valid := canonicalPQRSTypes[choice]
	return choice, valid
}

// ValidateIdentification enforces the 6–12 digit rule shared by the lookup
// and PQRSDF forms.
func ValidateIdentification(raw string) SlotResult {
	digits := records.Digits(raw)
	if IDLengthOK(digits) {
		return accept("numero_identificacion", digits)
	}
	return reject("numero_identificacion",
		"El número de identificación debe tener **entre 6 y 12 dígitos**. Intenta de nuevo.")
}

// ValidatePQRSType canonicalizes the complaint type slot.
func ValidatePQRSType(raw string) SlotResult {
	if choice, ok := CanonicalPQRSType(raw); ok {
		return accept("tipo_pqrs", choice)
	}
	return reject("tipo_pqrs",
		"Por favor indica si es **petición, queja, reclamo, sugerencia, denuncia o felicitación**.")
}

// ValidateFullName accepts and title-cases the complainant's name.
func ValidateFullName(raw string) SlotResult {
	if ValidName(raw) {
		return accept("nombre_completo", TitleName(records.NormSpaces(raw)))
	}
	return reject("nombre_completo",
		"Por favor ingresa tu **nombre completo** (solo letras y espacios).")
}

// ValidateContactEmail accepts a well-formed notification email.
func ValidateContactEmail(raw string) SlotResult {
	s := strings.TrimSpace(raw)
	if ValidEmail(s) {
		return accept("correo_contacto", s)
	}
	return reject("correo_contacto",
		"Por favor ingresa un **correo válido** (ej.: nombre@dominio.com).")
}

// ValidateContactPhone accepts 7–11 digits, tolerating formatting noise.
func ValidateContactPhone(raw string) SlotResult {
	digits := records.Digits(raw)
	if PhoneOK(digits) {
		return accept("telefono_contacto", digits)
	}
	return reject("telefono_contacto",
		"Por favor digita **solo números** (7 a 11 dígitos).")
}

// ValidateCaseDescription requires a minimally useful description.
func ValidateCaseDescription(raw string) SlotResult {
	txt := records.NormSpaces(raw)
	if len([]rune(txt)) >= 10 {
		return accept("descripcion_caso", txt)
	}
	return reject("descripcion_caso",
		"Describe tu caso con **al menos 10 caracteres** para poder orientarte mejor.")
}

// ValidateNotificationMethod canonicalizes the preferred contact channel.
func ValidateNotificationMethod(raw string) SlotResult {
	if mapped := MapContactMethod(raw); mapped != "" {
		return accept("medio_notificacion", mapped)
	}
	return reject("medio_notificacion", "Por favor elige una opción válida.")
}

// ValidateContactName validates the handoff name slot. Name and phone often
// arrive in one message ("Sebastián 3138447735"), so digits are stripped
// before the name check.
func ValidateContactName(raw string) SlotResult {
	cleaned := records.NormSpaces(digitRe.ReplaceAllString(raw, ""))
	if ValidName(cleaned) {
		return accept("nombre_contacto", TitleName(cleaned))
	}
	return reject("nombre_contacto",
		"Indica tu **nombre completo** (mínimo 5 caracteres, solo letras y espacios).")
}
