package consult

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCreateConsult(t *testing.T) {
	svc := NewService(newMockRepo())
	req := &ConsultRequest{PatientName: "Juan Pérez", DNI: "30111222", Narrative: "Fiebre persistente", Hospital: "Posadas"}
	if err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != StatusRequested {
		t.Errorf("expected default status requested, got %s", req.Status)
	}
}

func TestCreateConsult_PatientNameRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &ConsultRequest{Narrative: "x"})
	if err == nil {
		t.Error("expected error for missing patient_name")
	}
}

func TestCreateConsult_NarrativeRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &ConsultRequest{PatientName: "Ana"})
	if err == nil {
		t.Error("expected error for missing narrative")
	}
}

func TestCreateConsult_InvalidStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &ConsultRequest{PatientName: "Ana", Narrative: "x", Status: "bogus"})
	if err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestUpdateResponse(t *testing.T) {
	svc := NewService(newMockRepo())
	req := &ConsultRequest{PatientName: "Ana", Narrative: "x"}
	svc.Create(context.Background(), req)

	updated, err := svc.UpdateResponse(context.Background(), req.ID, "Se sugiere TAC de tórax")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Response == nil || *updated.Response != "Se sugiere TAC de tórax" {
		t.Error("response was not stored")
	}
	if updated.Status != StatusRequested {
		t.Errorf("response edit must not touch status, got %s", updated.Status)
	}
}

func TestTransitionLifecycle(t *testing.T) {
	svc := NewService(newMockRepo())
	req := &ConsultRequest{PatientName: "Ana", Narrative: "x"}
	svc.Create(context.Background(), req)

	if _, err := svc.Transition(context.Background(), req.ID, StatusInProgress); err != nil {
		t.Fatalf("requested→in_progress: %v", err)
	}
	if _, err := svc.Transition(context.Background(), req.ID, StatusResolved); err != nil {
		t.Fatalf("in_progress→resolved: %v", err)
	}
	if _, err := svc.Transition(context.Background(), req.ID, StatusRequested); err == nil {
		t.Error("resolved must be terminal")
	}
}

func TestTransitionCancelled(t *testing.T) {
	svc := NewService(newMockRepo())
	req := &ConsultRequest{PatientName: "Ana", Narrative: "x"}
	svc.Create(context.Background(), req)

	if _, err := svc.Transition(context.Background(), req.ID, StatusCancelled); err != nil {
		t.Fatalf("requested→cancelled: %v", err)
	}
	if _, err := svc.Transition(context.Background(), req.ID, StatusInProgress); err == nil {
		t.Error("cancelled must be terminal")
	}
}

func TestTransitionNotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Transition(context.Background(), uuid.New(), StatusResolved); err == nil {
		t.Error("expected error for unknown consult")
	}
}

func TestDeleteByHospital(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	for i := 0; i < 3; i++ {
		svc.Create(context.Background(), &ConsultRequest{PatientName: "Ana", Narrative: "x", Hospital: "Posadas"})
	}
	svc.Create(context.Background(), &ConsultRequest{PatientName: "Ana", Narrative: "x", Hospital: "Otro"})

	count, err := svc.DeleteByHospital(context.Background(), "Posadas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 deleted, got %d", count)
	}
	if len(repo.items) != 1 {
		t.Errorf("expected 1 remaining, got %d", len(repo.items))
	}
}

func TestDeleteByHospital_HospitalRequired(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.DeleteByHospital(context.Background(), " "); err == nil {
		t.Error("expected error for blank hospital")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	a := &ConsultRequest{PatientName: "Ana", Narrative: "x"}
	svc.Create(context.Background(), a)
	svc.Transition(context.Background(), a.ID, StatusResolved)
	svc.Create(context.Background(), &ConsultRequest{PatientName: "Juan", Narrative: "y"})

	items, total, err := svc.List(context.Background(), StatusResolved, "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected 1 resolved consult, got %d", total)
	}
}
