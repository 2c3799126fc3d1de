package consult

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a consult request does not exist.
var ErrNotFound = errors.New("consult request not found")

type Repository interface {
	Create(ctx context.Context, c *ConsultRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*ConsultRequest, error)
	Update(ctx context.Context, c *ConsultRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByHospital(ctx context.Context, hospital string) (int, error)
	List(ctx context.Context, status, hospital string, limit, offset int) ([]*ConsultRequest, int, error)
}
