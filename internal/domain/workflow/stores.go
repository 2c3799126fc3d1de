package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/resiops/resiops/internal/domain/assessment"
	"github.com/resiops/resiops/internal/domain/consult"
	"github.com/resiops/resiops/internal/domain/tasks"
	"github.com/resiops/resiops/internal/domain/ward"
)

// Narrow views over the domain repositories. The full Repository interfaces
// of each domain package satisfy these, so wiring passes the same repo value
// here and to the domain service.

type ConsultStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*consult.ConsultRequest, error)
}

type AssessmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*assessment.ClinicalAssessment, error)
	MarkResponseSent(ctx context.Context, id uuid.UUID) error
}

type WardStore interface {
	Create(ctx context.Context, p *ward.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*ward.Patient, error)
	FindByDNIAndHospital(ctx context.Context, dni, hospital string) ([]*ward.Patient, error)
	UpdatePendientes(ctx context.Context, id uuid.UUID, pendientes string) error
	ListAll(ctx context.Context) ([]*ward.Patient, error)
}

type TaskStore interface {
	Create(ctx context.Context, t *tasks.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*tasks.Task, error)
	Update(ctx context.Context, t *tasks.Task) error
	FindByPatientAndSource(ctx context.Context, patientID uuid.UUID, source string) ([]*tasks.Task, error)
}
