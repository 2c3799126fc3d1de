package consult

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	consults Repository
}

func NewService(consults Repository) *Service {
	return &Service{consults: consults}
}

var validStatuses = map[string]bool{
	StatusRequested:  true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusCancelled:  true,
}

// allowedTransitions encodes the lifecycle: requested → in_progress →
// resolved, with cancellation possible until resolution.
var allowedTransitions = map[string][]string{
	StatusRequested:  {StatusInProgress, StatusResolved, StatusCancelled},
	StatusInProgress: {StatusResolved, StatusCancelled},
	StatusResolved:   {},
	StatusCancelled:  {},
}

func (s *Service) Create(ctx context.Context, c *ConsultRequest) error {
	if strings.TrimSpace(c.PatientName) == "" {
		return fmt.Errorf("patient_name is required")
	}
	if strings.TrimSpace(c.Narrative) == "" {
		return fmt.Errorf("narrative is required")
	}
	if c.Status == "" {
		c.Status = StatusRequested
	}
	if !validStatuses[c.Status] {
		return fmt.Errorf("invalid status: %s", c.Status)
	}
	return s.consults.Create(ctx, c)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ConsultRequest, error) {
	return s.consults.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status, hospital string, limit, offset int) ([]*ConsultRequest, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid status: %s", status)
	}
	return s.consults.List(ctx, status, hospital, limit, offset)
}

// UpdateResponse sets or edits the free-text response on a consult without
// touching its lifecycle status.
func (s *Service) UpdateResponse(ctx context.Context, id uuid.UUID, response string) (*ConsultRequest, error) {
	c, err := s.consults.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Response = &response
	if err := s.consults.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Transition advances a consult to the given status, enforcing the lifecycle.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, status string) (*ConsultRequest, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	c, err := s.consults.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(c.Status, status) {
		return nil, fmt.Errorf("cannot transition consult from %s to %s", c.Status, status)
	}
	c.Status = status
	if err := s.consults.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func transitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.consults.Delete(ctx, id)
}

// DeleteByHospital removes every consult for a hospital context and returns
// how many were deleted.
func (s *Service) DeleteByHospital(ctx context.Context, hospital string) (int, error) {
	if strings.TrimSpace(hospital) == "" {
		return 0, fmt.Errorf("hospital is required")
	}
	return s.consults.DeleteByHospital(ctx, hospital)
}
