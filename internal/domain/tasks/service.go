package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	tasks Repository
}

func NewService(tasks Repository) *Service {
	return &Service{tasks: tasks}
}

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// allowedTransitions: pending ⇄ in_progress → completed. Completed is
// terminal for manual edits; only the sync engine re-touches derived tasks.
var allowedTransitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusPending, StatusCompleted},
	StatusCompleted:  {},
}

// CreateManual creates a hand-entered task. Derived tasks are created by the
// workflow sync engine, never through this path.
func (s *Service) CreateManual(ctx context.Context, t *Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if t.Priority == "" {
		t.Priority = PriorityLow
	}
	if !validPriorities[t.Priority] {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	t.Source = "manual"
	return s.tasks.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, t *Task) error {
	if t.Status != "" && !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if t.Priority != "" && !validPriorities[t.Priority] {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	return s.tasks.Update(ctx, t)
}

// Transition moves a task through pending ⇄ in_progress → completed.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, status string) (*Task, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(t.Status, status) {
		return nil, fmt.Errorf("cannot transition task from %s to %s", t.Status, status)
	}
	t.Status = status
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
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
	return s.tasks.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, status, source string, limit, offset int) ([]*Task, int, error) {
	if status != "" && !validStatuses[status] {
		return nil, 0, fmt.Errorf("invalid status: %s", status)
	}
	return s.tasks.List(ctx, status, source, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, source string) ([]*Task, error) {
	if source == "" {
		source = SourceWardRounds
	}
	return s.tasks.FindByPatientAndSource(ctx, patientID, source)
}
