package ward

import (
	"time"

	"github.com/google/uuid"
)

// Severity codes: ordinal clinical acuity, I least to IV most severe.
const (
	SeverityI   = "I"
	SeverityII  = "II"
	SeverityIII = "III"
	SeverityIV  = "IV"
)

// Patient represents a ward-round (pase de sala) entry: the rounding-list
// summary of a current inpatient. The clinical free-text fields mirror the
// evolution-note template sections.
type Patient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Cama             string    `db:"cama" json:"cama"`
	DNI              string    `db:"dni" json:"dni"`
	Name             string    `db:"name" json:"name"`
	Age              string    `db:"age" json:"age"`
	Antecedentes     string    `db:"antecedentes" json:"antecedentes"`
	EnfermedadActual string    `db:"enfermedad_actual" json:"enfermedad_actual"`
	ExamenFisico     string    `db:"examen_fisico" json:"examen_fisico"`
	Estudios         string    `db:"estudios" json:"estudios"`
	Conducta         string    `db:"conducta" json:"conducta"`
	Diagnostico      string    `db:"diagnostico" json:"diagnostico"`
	Pendientes       string    `db:"pendientes" json:"pendientes"`
	Severidad        string    `db:"severidad" json:"severidad"`
	Images           []string  `db:"images" json:"images,omitempty"`
	Hospital         string    `db:"hospital" json:"hospital"`
	DisplayOrder     int       `db:"display_order" json:"display_order"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
