package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"defensoria/internal/lookup/metrics"
	"defensoria/internal/records"
)

// User-facing copy. The texts and action payloads are part of the
// conversational contract with the dialogue backend's intents.
const (
	msgUnavailable = "No puedo acceder a la base en este momento. Intenta más tarde."
	msgMissingID   = "No recibí el número de identificación. ¿Puedes indicarlo de nuevo?"
	msgNotFound    = "No encontré registros con esa cédula. ¿Quieres intentar de nuevo o hablar con un asesor?"
	msgMinorCase   = "**Caso con persona menor de edad.**"
	msgFollowUp    = "\n¿Quieres hacer otra consulta o volver al menú?"

	// MsgInternalFault is uttered by the boundary when a lookup faults
	// unexpectedly; exported so the action layer emits identical copy.
	MsgInternalFault = "Ocurrió un problema al consultar tu proceso. Intenta de nuevo en un momento."

	displayNotAvailable = "No disponible"

	PayloadLookup = "/consultar_proceso"
	PayloadHuman  = "/hablar_con_humano"
	PayloadMenu   = "/saludar"
)

// Service orchestrates a lookup: store access, identifier matching,
// minor-status classification, and response composition.
type Service struct {
	store   records.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the lookup orchestrator.
func NewService(store records.Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

// Lookup resolves a raw identifier to conversational fragments.
//
// Slot-clear semantics: the identifier slot is cleared on every completed
// lookup (matched or not) so a stale number never leaks into the next
// conversation turn. The two early exits that never consumed the slot
// (store unavailable, missing identifier) leave it untouched.
//
// The error return is the escape hatch for unexpected composition faults;
// the caller maps it to the fixed retry-later fragment. All expected
// conditions (empty store, no match) are answered with fragments, not
// errors.
func (s *Service) Lookup(ctx context.Context, rawID string) (*Result, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveLookupDuration(time.Since(start))
	}()

	recs, err := s.store.All(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "record store unavailable", "error", err)
		recs = nil
	}
	if len(recs) == 0 {
		s.metrics.IncrementOutcome(metrics.OutcomeUnavailable)
		return &Result{Fragments: []Fragment{textFragment(msgUnavailable)}}, nil
	}

	id := records.Digits(rawID)
	if id == "" {
		s.metrics.IncrementOutcome(metrics.OutcomeMissingID)
		return &Result{Fragments: []Fragment{textFragment(msgMissingID)}}, nil
	}

	var matches []records.Record
	for _, r := range recs {
		if records.Digits(records.Resolve(r, records.FieldID)) == id {
			matches = append(matches, r)
		}
	}

	if len(matches) == 0 {
		s.metrics.IncrementOutcome(metrics.OutcomeNotFound)
		return &Result{
			Fragments: []Fragment{{
				Text: msgNotFound,
				Buttons: []Button{
					{Title: "🔁 Intentar de nuevo", Payload: PayloadLookup},
					{Title: "👤 Hablar con una persona", Payload: PayloadHuman},
				},
			}},
			ClearSlot: true,
		}, nil
	}

	// Contact info deliberately comes from the first match only, while
	// minor status is checked across every match. See DESIGN.md.
	first := matches[0]
	defenderName := records.ResolveOrNA(first, records.FieldDefender)
	defenderMail := records.ResolveOrNA(first, records.FieldDefenderEmail)
	supervisorName := records.ResolveOrNA(first, records.FieldSupervisor)
	supervisorMail := records.ResolveOrNA(first, records.FieldSupervisorEmail)

	defender := contactDisplay(defenderName, defenderMail)
	supervisor := contactDisplay(supervisorName, supervisorMail)

	allMinor := true
	for _, r := range matches {
		if !records.IsMinor(r) {
			allMinor = false
			break
		}
	}

	var fragments []Fragment
	if allMinor {
		// Privacy redaction: one minimal fragment, no per-case detail and no
		// subject name.
		s.metrics.IncrementOutcome(metrics.OutcomeRedacted)
		fragments = append(fragments, textFragment(redactedSummary(defender, supervisor)))
	} else {
		s.metrics.IncrementOutcome(metrics.OutcomeDetail)

		header := "**Defensor asignado:** " + defender
		if supervisorName != records.NotAvailable || supervisorMail != records.NotAvailable {
			header += "\n**Supervisor:** " + supervisor
		}
		fragments = append(fragments, textFragment(header))

		for i, r := range matches {
			if records.IsMinor(r) {
				card := fmt.Sprintf("### Proceso %d\n", i+1) + redactedSummary(defender, supervisor)
				fragments = append(fragments, textFragment(card))
				continue
			}
			fragments = append(fragments, textFragment(detailCard(i+1, r)))
		}
	}

	fragments = append(fragments, Fragment{
		Text: msgFollowUp,
		Buttons: []Button{
			{Title: "🔁 Consultar otro número de documento", Payload: PayloadLookup},
			{Title: "🏠 Menú principal", Payload: PayloadMenu},
		},
	})

	s.logger.InfoContext(ctx, "lookup completed",
		"matches", len(matches),
		"redacted", allMinor,
	)

	return &Result{Fragments: fragments, ClearSlot: true}, nil
}

// contactDisplay renders "Name (email)", "Name" when the email is absent,
// and "No disponible" when the name itself is not available.
func contactDisplay(name, email string) string {
	display := name
	if name == records.NotAvailable {
		display = displayNotAvailable
	}
	if email != records.NotAvailable {
		display += " (" + email + ")"
	}
	return display
}

func redactedSummary(defender, supervisor string) string {
	return msgMinorCase + "\n" +
		"**Defensor(a):** " + defender + "\n" +
		"**Supervisor:** " + supervisor
}

func detailCard(n int, r records.Record) string {
	docket := records.ResolveOrNA(r, records.FieldDocket)
	captured := records.ResolveOrNA(r, records.FieldCaptured)
	if captureType := records.ResolveOrNA(r, records.FieldCaptureType); captureType != records.NotAvailable {
		captured += " (" + captureType + ")"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### Proceso %d\n", n)
	fmt.Fprintf(&b, "**Radicado:** `%s`\n", docket)
	fmt.Fprintf(&b, "- **Departamento:** %s\n", records.ResolveOrNA(r, records.FieldDepartment))
	fmt.Fprintf(&b, "- **Municipio:** %s\n", records.ResolveOrNA(r, records.FieldMunicipality))
	fmt.Fprintf(&b, "- **Juzgado:** %s\n", records.ResolveOrNA(r, records.FieldCourt))
	fmt.Fprintf(&b, "- **Inicio de proceso:** %s\n", records.ResolveOrNA(r, records.FieldProcessStart))
	fmt.Fprintf(&b, "- **Delito:** %s\n", records.ResolveOrNA(r, records.FieldOffense))
	fmt.Fprintf(&b, "- **Capturado:** %s\n", captured)
	fmt.Fprintf(&b, "- **Medida:** %s\n", records.ResolveOrNA(r, records.FieldMeasure))
	fmt.Fprintf(&b, "- **Centro carcelario:** %s\n", records.ResolveOrNA(r, records.FieldFacility))
	return b.String()
}
