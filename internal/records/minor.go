package records

// Document types that by themselves mark the subject as a minor
// (tarjeta de identidad is only issued to minors in Colombia).
var minorDocTypes = map[string]struct{}{
	"ti":                   {},
	"tarjeta de identidad": {},
	"tarjeta_identidad":    {},
	"tarjeta identidad":    {},
}

// Truthy spellings accepted for the optional explicit minor flag.
var minorFlagValues = map[string]struct{}{
	"si":   {},
	"sí":   {},
	"true": {},
	"1":    {},
	"x":    {},
	"yes":  {},
}

// IsMinor reports whether the record's subject is a minor. Three independent
// signals are ORed, short-circuiting on the first hit: document type, age in
// [0,18), and the explicit flag. An unparseable age contributes nothing.
// The classification is monotonic: a true signal can never be overridden.
func IsMinor(r Record) bool {
	docType := FoldKey(Resolve(r, FieldDocType))
	if _, ok := minorDocTypes[docType]; ok {
		return true
	}

	if age, ok := ParseLenientInt(Resolve(r, FieldAge)); ok && age >= 0 && age < 18 {
		return true
	}

	flag := FoldKey(Resolve(r, FieldMinorFlag))
	if _, ok := minorFlagValues[flag]; ok {
		return true
	}
	return false
}
