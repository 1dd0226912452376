// Package records holds the case record store: loading, flexible
// column-name resolution, identifier normalization, and the minor-status
// classification that drives privacy redaction.
package records

import "strings"

// Record is one case entry: column name → raw value, exactly as loaded.
// Unknown columns are carried along and ignored by resolution.
type Record map[string]string

// Field names one logical field of a record. Physical column spellings are
// resolved through the alias table below.
type Field string

const (
	FieldID              Field = "numero_identificacion"
	FieldDocType         Field = "tipo_documento"
	FieldFullName        Field = "nombre_completo"
	FieldDefender        Field = "defensor_asignado"
	FieldDefenderEmail   Field = "correo_defensor"
	FieldSupervisor      Field = "supervisor"
	FieldSupervisorEmail Field = "correo_supervisor"
	FieldDocket          Field = "radicado"
	FieldDepartment      Field = "departamento"
	FieldMunicipality    Field = "municipio"
	FieldCourt           Field = "juzgado"
	FieldProcessStart    Field = "inicio_proceso"
	FieldOffense         Field = "delito"
	FieldCaptured        Field = "capturado"
	FieldCaptureType     Field = "tipo_captura"
	FieldMeasure         Field = "medida_impuesta"
	FieldFacility        Field = "centro_carcelario"
	FieldMinorFlag       Field = "es_menor"
	FieldAge             Field = "edad"
)

// NotAvailable is the sentinel substituted for any field that cannot be
// resolved from any alias. It is a defined value, never the empty string.
const NotAvailable = "NA"

// aliases maps each logical field to its accepted column spellings, tried
// in order. The record files come from several offices with inconsistent
// headers (accents, casing, snake/space), so new spellings are additive
// entries here rather than code changes.
var aliases = map[Field][]string{
	FieldID:              {"Número de identificación", "Numero de identificacion", "numero_identificacion", "Cédula", "Cedula", "cedula"},
	FieldDocType:         {"Tipo de documento", "tipo_documento", "Tipo doc", "tipo_doc", "Documento"},
	FieldFullName:        {"Nombre completo", "Usuario", "nombre_completo"},
	FieldDefender:        {"Defensor asignado", "defensor_asignado"},
	FieldDefenderEmail:   {"Correo", "correo", "email", "e-mail"},
	FieldSupervisor:      {"Supervisor", "supervisor"},
	FieldSupervisorEmail: {"Correo supervisor", "Correo Supervisor", "correo_supervisor", "email_supervisor"},
	FieldDocket:          {"Número de radicado", "Numero de radicado", "radicado"},
	FieldDepartment:      {"Departamento"},
	FieldMunicipality:    {"Municipio"},
	FieldCourt:           {"Juzgado"},
	FieldProcessStart:    {"Inicio de proceso", "Inicio del proceso"},
	FieldOffense:         {"Delito"},
	FieldCaptured:        {"Capturado"},
	FieldCaptureType:     {"Tipo de captura"},
	FieldMeasure:         {"Medida impuesta"},
	FieldFacility:        {"Centro carcelario", "Centro de reclusión", "Centro de reclusion"},
	FieldMinorFlag:       {"Es menor", "es_menor", "Menor", "menor", "Menor de edad", "menor_de_edad"},
	FieldAge:             {"Edad", "edad"},
}

// Resolve returns the first non-blank value among the field's aliases, or ""
// when no alias resolves. Use this form for comparisons; use ResolveOrNA for
// display.
func Resolve(r Record, f Field) string {
	for _, key := range aliases[f] {
		if v, ok := r[key]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// ResolveOrNA resolves a field for display, substituting the NotAvailable
// sentinel when no alias yields a value.
func ResolveOrNA(r Record, f Field) string {
	if v := Resolve(r, f); v != "" {
		return v
	}
	return NotAvailable
}
