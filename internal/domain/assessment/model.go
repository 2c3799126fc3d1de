package assessment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ClinicalAssessment represents one evolution/assessment event: a structured
// clinical note plus optional scale results, possibly originating from a
// consult request. Content is immutable after creation except the
// response_sent flag.
type ClinicalAssessment struct {
	ID           uuid.UUID        `db:"id" json:"id"`
	PatientName  string           `db:"patient_name" json:"patient_name"`
	PatientAge   string           `db:"patient_age" json:"patient_age"`
	DNI          string           `db:"dni" json:"dni"`
	NoteText     string           `db:"note_text" json:"note_text"`
	ScaleResults *json.RawMessage `db:"scale_results" json:"scale_results,omitempty"`
	Hospital     string           `db:"hospital" json:"hospital"`
	ConsultID    *uuid.UUID       `db:"consult_id" json:"consult_id,omitempty"`
	ResponseSent bool             `db:"response_sent" json:"response_sent"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}
