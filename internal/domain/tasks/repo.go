package tasks

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("task not found")

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByPatientAndSource(ctx context.Context, patientID uuid.UUID, source string) ([]*Task, error)
	List(ctx context.Context, status, source string, limit, offset int) ([]*Task, int, error)
}
