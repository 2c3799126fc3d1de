package consult

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle statuses for a consult request.
const (
	StatusRequested  = "requested"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusCancelled  = "cancelled"
)

// ConsultRequest represents an interconsulta: one service asking another for
// an opinion on a patient.
type ConsultRequest struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PatientName string     `db:"patient_name" json:"patient_name"`
	DNI         string     `db:"dni" json:"dni"`
	Cama        string     `db:"cama" json:"cama"`
	ConsultDate *time.Time `db:"consult_date" json:"consult_date,omitempty"`
	Narrative   string     `db:"narrative" json:"narrative"`
	Response    *string    `db:"response" json:"response,omitempty"`
	Status      string     `db:"status" json:"status"`
	Images      []string   `db:"images" json:"images,omitempty"`
	OCRText     *string    `db:"ocr_text" json:"ocr_text,omitempty"`
	Hospital    string     `db:"hospital" json:"hospital"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
