package workflow

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/resiops/resiops/internal/domain/assessment"
	"github.com/resiops/resiops/internal/domain/consult"
	"github.com/resiops/resiops/internal/domain/ward"
	"github.com/resiops/resiops/internal/platform/clinicalnote"
)

// Orchestrator turns a finished assessment that answers a consult request
// into a ward-round patient. Each promotion is a short best-effort sequence:
// failures short-circuit the remaining steps and nothing already written is
// rolled back.
type Orchestrator struct {
	consults    ConsultStore
	assessments AssessmentStore
	patients    WardStore
}

func NewOrchestrator(consults ConsultStore, assessments AssessmentStore, patients WardStore) *Orchestrator {
	return &Orchestrator{consults: consults, assessments: assessments, patients: patients}
}

// Promote materializes a ward patient from the consult/assessment pair and
// marks the assessment as answered. The consult's own status is left alone;
// advancing it is the caller's decision.
//
// The in-process duplicate lookup gives a friendly error message, but the
// unique index on (dni, hospital) is the authoritative guard; a concurrent
// insert surfaces through the same DuplicatePatientError.
func (o *Orchestrator) Promote(ctx context.Context, consultID, assessmentID uuid.UUID) (uuid.UUID, error) {
	cr, err := o.consults.GetByID(ctx, consultID)
	if err != nil {
		if errors.Is(err, consult.ErrNotFound) {
			return uuid.Nil, &NotFoundError{Kind: "consult", ID: consultID.String()}
		}
		return uuid.Nil, &PersistenceError{Op: "load consult", Err: err}
	}

	as, err := o.assessments.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			return uuid.Nil, &NotFoundError{Kind: "assessment", ID: assessmentID.String()}
		}
		return uuid.Nil, &PersistenceError{Op: "load assessment", Err: err}
	}

	note := clinicalnote.Parse(as.NoteText)
	datos := clinicalnote.ParseDatos(note.Datos)

	candidate := buildCandidate(cr, as, note, datos)

	var missing []string
	if candidate.Name == "" {
		missing = append(missing, "name")
	}
	if candidate.DNI == "" {
		missing = append(missing, "dni")
	}
	if len(missing) > 0 {
		return uuid.Nil, &ValidationError{Fields: missing}
	}

	existing, err := o.patients.FindByDNIAndHospital(ctx, candidate.DNI, candidate.Hospital)
	if err != nil {
		return uuid.Nil, &PersistenceError{Op: "duplicate lookup", Err: err}
	}
	if len(existing) > 0 {
		return uuid.Nil, &DuplicatePatientError{DNI: candidate.DNI, ExistingName: existing[0].Name}
	}

	if err := o.patients.Create(ctx, candidate); err != nil {
		if errors.Is(err, ward.ErrDuplicateDNI) {
			return uuid.Nil, &DuplicatePatientError{DNI: candidate.DNI, ExistingName: candidate.Name}
		}
		return uuid.Nil, &PersistenceError{Op: "insert ward patient", Err: err}
	}

	if err := o.assessments.MarkResponseSent(ctx, assessmentID); err != nil {
		return uuid.Nil, &PersistenceError{Op: "mark response sent", Err: err}
	}

	return candidate.ID, nil
}

// buildCandidate assembles the ward patient. Identity fields prefer the
// parsed DATOS value, then the consult, then the assessment. Narrative fields
// come straight from the note's sections.
func buildCandidate(cr *consult.ConsultRequest, as *assessment.ClinicalAssessment, note clinicalnote.Note, datos clinicalnote.Datos) *ward.Patient {
	p := &ward.Patient{
		Name:             firstNonEmpty(datos.Paciente, cr.PatientName, as.PatientName),
		DNI:              firstNonEmpty(datos.DNI, cr.DNI, as.DNI),
		Age:              firstNonEmpty(datos.Edad, as.PatientAge),
		Cama:             firstNonEmpty(datos.Cama, cr.Cama),
		Antecedentes:     note.Antecedentes,
		EnfermedadActual: note.EnfermedadActual,
		Estudios:         note.Estudios,
		ExamenFisico:     note.ExamenFisico,
		Conducta:         note.Conducta,
		Pendientes:       note.Pendientes,
		Severidad:        ward.SeverityII,
		Images:           cr.Images,
		Hospital:         firstNonEmpty(cr.Hospital, as.Hospital),
	}
	if dx, ok := clinicalnote.ExtractDiagnosis(note.Conducta); ok {
		p.Diagnostico = dx
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
