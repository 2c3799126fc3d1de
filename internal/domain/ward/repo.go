package ward

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a ward patient does not exist.
var ErrNotFound = errors.New("ward patient not found")

// ErrDuplicateDNI is returned when inserting a patient whose (dni, hospital)
// pair already exists. The repo_pg maps the table's unique constraint to this
// error, so the constraint — not a prior read — is the authoritative guard.
var ErrDuplicateDNI = errors.New("ward patient with this dni already exists in hospital")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	FindByDNIAndHospital(ctx context.Context, dni, hospital string) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	UpdatePendientes(ctx context.Context, id uuid.UUID, pendientes string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*Patient, error)
	ListByHospital(ctx context.Context, hospital string, limit, offset int) ([]*Patient, int, error)
}
