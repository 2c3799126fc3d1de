package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resiops/resiops/internal/domain/tasks"
	"github.com/resiops/resiops/internal/domain/ward"
)

// SyncEngine keeps each ward patient's pendientes text mirrored to exactly
// one derived task (source "ward_rounds") and runs the reverse completion
// cascade. All operations converge on repeated invocation against unchanged
// input.
type SyncEngine struct {
	patients WardStore
	tasks    TaskStore
	log      zerolog.Logger
}

func NewSyncEngine(patients WardStore, taskStore TaskStore, log zerolog.Logger) *SyncEngine {
	return &SyncEngine{patients: patients, tasks: taskStore, log: log}
}

// SyncOne reconciles a single patient's derived task. Empty pendientes means
// the patient has nothing outstanding, so any derived task is completed via
// the cascade (without re-clearing the already empty field). Non-empty
// pendientes find-or-create the task and mirror description and priority
// onto it. Status is reset to pending on every sync, even if someone had
// advanced it to in_progress.
func (e *SyncEngine) SyncOne(ctx context.Context, p *ward.Patient) error {
	if strings.TrimSpace(p.Pendientes) == "" {
		derived, err := e.tasks.FindByPatientAndSource(ctx, p.ID, tasks.SourceWardRounds)
		if err != nil {
			return &PersistenceError{Op: "find derived tasks", Err: err}
		}
		var errs []error
		for _, t := range derived {
			if t.Status == tasks.StatusCompleted {
				continue
			}
			if err := e.CompleteCascade(ctx, t.ID, false); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	existing, err := e.tasks.FindByPatientAndSource(ctx, p.ID, tasks.SourceWardRounds)
	if err != nil {
		return &PersistenceError{Op: "find derived tasks", Err: err}
	}

	if len(existing) == 0 {
		patientID := p.ID
		t := &tasks.Task{
			Title:       fmt.Sprintf("%s (%s) - Pendientes", p.Name, p.Cama),
			Description: p.Pendientes,
			Priority:    PriorityForSeverity(p.Severidad),
			Status:      tasks.StatusPending,
			PatientID:   &patientID,
			Source:      tasks.SourceWardRounds,
		}
		if err := e.tasks.Create(ctx, t); err != nil {
			return &PersistenceError{Op: "create derived task", Err: err}
		}
		return nil
	}

	t := existing[0]
	t.Title = fmt.Sprintf("%s (%s) - Pendientes", p.Name, p.Cama)
	t.Description = p.Pendientes
	t.Priority = PriorityForSeverity(p.Severidad)
	t.Status = tasks.StatusPending
	if err := e.tasks.Update(ctx, t); err != nil {
		return &PersistenceError{Op: "update derived task", Err: err}
	}
	return nil
}

// SyncAll reconciles every ward patient. A failing patient does not stop the
// batch; the joined error reports every failure at the end.
func (e *SyncEngine) SyncAll(ctx context.Context) error {
	patients, err := e.patients.ListAll(ctx)
	if err != nil {
		return &PersistenceError{Op: "list ward patients", Err: err}
	}

	var errs []error
	for _, p := range patients {
		if err := e.SyncOne(ctx, p); err != nil {
			e.log.Error().Err(err).
				Str("patient_id", p.ID.String()).
				Str("dni", p.DNI).
				Msg("task sync failed for patient")
			errs = append(errs, fmt.Errorf("patient %s: %w", p.ID, err))
		}
	}
	return errors.Join(errs...)
}

// CompleteCascade completes a task. For derived tasks it optionally clears
// the source patient's pendientes so the next sync does not resurrect the
// task. A non-derived task is just completed. The task stays completed even
// if the subsequent clear fails.
func (e *SyncEngine) CompleteCascade(ctx context.Context, taskID uuid.UUID, clearPendientes bool) error {
	t, err := e.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			return &NotFoundError{Kind: "task", ID: taskID.String()}
		}
		return &PersistenceError{Op: "load task", Err: err}
	}

	t.Status = tasks.StatusCompleted
	if err := e.tasks.Update(ctx, t); err != nil {
		return &PersistenceError{Op: "complete task", Err: err}
	}

	if t.Source != tasks.SourceWardRounds || !clearPendientes || t.PatientID == nil {
		return nil
	}
	if err := e.patients.UpdatePendientes(ctx, *t.PatientID, ""); err != nil {
		return &PersistenceError{Op: "clear pendientes", Err: err}
	}
	return nil
}
