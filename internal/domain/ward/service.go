package ward

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

var validSeverities = map[string]bool{
	SeverityI:   true,
	SeverityII:  true,
	SeverityIII: true,
	SeverityIV:  true,
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.DNI) == "" {
		return fmt.Errorf("dni is required")
	}
	if p.Severidad == "" {
		p.Severidad = SeverityII
	}
	if !validSeverities[p.Severidad] {
		return fmt.Errorf("invalid severidad: %s", p.Severidad)
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.Severidad != "" && !validSeverities[p.Severidad] {
		return fmt.Errorf("invalid severidad: %s", p.Severidad)
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListByHospital(ctx context.Context, hospital string, limit, offset int) ([]*Patient, int, error) {
	if strings.TrimSpace(hospital) == "" {
		return nil, 0, fmt.Errorf("hospital is required")
	}
	return s.patients.ListByHospital(ctx, hospital, limit, offset)
}

// Reorder sets the display position of one patient within its hospital list.
func (s *Service) Reorder(ctx context.Context, id uuid.UUID, displayOrder int) (*Patient, error) {
	if displayOrder < 0 {
		return nil, fmt.Errorf("display_order must be non-negative")
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.DisplayOrder = displayOrder
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
