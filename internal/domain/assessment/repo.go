package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a clinical assessment does not exist.
var ErrNotFound = errors.New("clinical assessment not found")

type Repository interface {
	Create(ctx context.Context, a *ClinicalAssessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*ClinicalAssessment, error)
	MarkResponseSent(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDNI(ctx context.Context, dni string, limit, offset int) ([]*ClinicalAssessment, int, error)
	List(ctx context.Context, hospital string, limit, offset int) ([]*ClinicalAssessment, int, error)
}
