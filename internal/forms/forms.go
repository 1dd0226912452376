package forms

// Form binds a dialogue form name to its slots and their validators.
// Slots lists the validation order; it matters because rejection prompts
// are uttered in this order when several slots arrive at once.
type Form struct {
	Name       string
	Slots      []string
	Validators map[string]SlotValidator
}

// ConsultaProceso validates the case-lookup form.
func ConsultaProceso() Form {
	return Form{
		Name:  "consulta_proceso_form",
		Slots: []string{"numero_identificacion"},
		Validators: map[string]SlotValidator{
			"numero_identificacion": ValidateIdentification,
		},
	}
}

// PQRSDF validates the complaint form.
func PQRSDF() Form {
	return Form{
		Name: "pqrsdf_form",
		Slots: []string{
			"tipo_pqrs",
			"nombre_completo",
			"numero_identificacion",
			"correo_contacto",
			"telefono_contacto",
			"descripcion_caso",
			"medio_notificacion",
		},
		Validators: map[string]SlotValidator{
			"tipo_pqrs":             ValidatePQRSType,
			"nombre_completo":       ValidateFullName,
			"numero_identificacion": ValidateIdentification,
			"correo_contacto":       ValidateContactEmail,
			"telefono_contacto":     ValidateContactPhone,
			"descripcion_caso":      ValidateCaseDescription,
			"medio_notificacion":    ValidateNotificationMethod,
		},
	}
}

// Contacto validates the human-handoff contact form.
func Contacto() Form {
	return Form{
		Name:  "contacto_form",
		Slots: []string{"nombre_contacto", "telefono_contacto"},
		Validators: map[string]SlotValidator{
			"nombre_contacto":   ValidateContactName,
			"telefono_contacto": ValidateContactPhone,
		},
	}
}

// PQRSSlots are the slots cleared when the complaint form closes, so they
// never contaminate a later flow in the same conversation.
var PQRSSlots = []string{
	"tipo_pqrs",
	"nombre_completo",
	"numero_identificacion",
	"correo_contacto",
	"telefono_contacto",
	"descripcion_caso",
	"medio_notificacion",
	"requested_slot",
}
