package assessment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	assessments Repository
}

func NewService(assessments Repository) *Service {
	return &Service{assessments: assessments}
}

func (s *Service) Create(ctx context.Context, a *ClinicalAssessment) error {
	if strings.TrimSpace(a.PatientName) == "" {
		return fmt.Errorf("patient_name is required")
	}
	if strings.TrimSpace(a.NoteText) == "" {
		return fmt.Errorf("note_text is required")
	}
	a.ResponseSent = false
	return s.assessments.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ClinicalAssessment, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *Service) MarkResponseSent(ctx context.Context, id uuid.UUID) error {
	return s.assessments.MarkResponseSent(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.assessments.Delete(ctx, id)
}

func (s *Service) ListByDNI(ctx context.Context, dni string, limit, offset int) ([]*ClinicalAssessment, int, error) {
	if strings.TrimSpace(dni) == "" {
		return nil, 0, fmt.Errorf("dni is required")
	}
	return s.assessments.ListByDNI(ctx, dni, limit, offset)
}

func (s *Service) List(ctx context.Context, hospital string, limit, offset int) ([]*ClinicalAssessment, int, error) {
	return s.assessments.List(ctx, hospital, limit, offset)
}
