package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/resiops/resiops/internal/domain/assessment"
	"github.com/resiops/resiops/internal/domain/consult"
	"github.com/resiops/resiops/internal/domain/tasks"
	"github.com/resiops/resiops/internal/domain/ward"
)

type mockConsultStore struct {
	items map[uuid.UUID]*consult.ConsultRequest
}

func newMockConsultStore() *mockConsultStore {
	return &mockConsultStore{items: make(map[uuid.UUID]*consult.ConsultRequest)}
}

func (m *mockConsultStore) GetByID(_ context.Context, id uuid.UUID) (*consult.ConsultRequest, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, consult.ErrNotFound
	}
	return c, nil
}

type mockAssessmentStore struct {
	items         map[uuid.UUID]*assessment.ClinicalAssessment
	markSentCalls int
}

func newMockAssessmentStore() *mockAssessmentStore {
	return &mockAssessmentStore{items: make(map[uuid.UUID]*assessment.ClinicalAssessment)}
}

func (m *mockAssessmentStore) GetByID(_ context.Context, id uuid.UUID) (*assessment.ClinicalAssessment, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, assessment.ErrNotFound
	}
	return a, nil
}

func (m *mockAssessmentStore) MarkResponseSent(_ context.Context, id uuid.UUID) error {
	a, ok := m.items[id]
	if !ok {
		return assessment.ErrNotFound
	}
	m.markSentCalls++
	a.ResponseSent = true
	return nil
}

type mockWardStore struct {
	items       map[uuid.UUID]*ward.Patient
	createCalls int
	writeCalls  int
}

func newMockWardStore() *mockWardStore {
	return &mockWardStore{items: make(map[uuid.UUID]*ward.Patient)}
}

func (m *mockWardStore) Create(_ context.Context, p *ward.Patient) error {
	m.createCalls++
	m.writeCalls++
	for _, existing := range m.items {
		if existing.DNI == p.DNI && existing.Hospital == p.Hospital {
			return ward.ErrDuplicateDNI
		}
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.items[p.ID] = p
	return nil
}

func (m *mockWardStore) GetByID(_ context.Context, id uuid.UUID) (*ward.Patient, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, ward.ErrNotFound
	}
	return p, nil
}

func (m *mockWardStore) FindByDNIAndHospital(_ context.Context, dni, hospital string) ([]*ward.Patient, error) {
	var result []*ward.Patient
	for _, p := range m.items {
		if p.DNI == dni && p.Hospital == hospital {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockWardStore) UpdatePendientes(_ context.Context, id uuid.UUID, pendientes string) error {
	m.writeCalls++
	p, ok := m.items[id]
	if !ok {
		return ward.ErrNotFound
	}
	p.Pendientes = pendientes
	return nil
}

func (m *mockWardStore) ListAll(_ context.Context) ([]*ward.Patient, error) {
	result := make([]*ward.Patient, 0, len(m.items))
	for _, p := range m.items {
		result = append(result, p)
	}
	return result, nil
}

type mockTaskStore struct {
	items       map[uuid.UUID]*tasks.Task
	createCalls int
	updateCalls int
}

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{items: make(map[uuid.UUID]*tasks.Task)}
}

func (m *mockTaskStore) Create(_ context.Context, t *tasks.Task) error {
	m.createCalls++
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	m.items[t.ID] = t
	return nil
}

func (m *mockTaskStore) GetByID(_ context.Context, id uuid.UUID) (*tasks.Task, error) {
	t, ok := m.items[id]
	if !ok {
		return nil, tasks.ErrNotFound
	}
	return t, nil
}

func (m *mockTaskStore) Update(_ context.Context, t *tasks.Task) error {
	m.updateCalls++
	if _, ok := m.items[t.ID]; !ok {
		return tasks.ErrNotFound
	}
	m.items[t.ID] = t
	return nil
}

func (m *mockTaskStore) FindByPatientAndSource(_ context.Context, patientID uuid.UUID, source string) ([]*tasks.Task, error) {
	var result []*tasks.Task
	for _, t := range m.items {
		if t.PatientID != nil && *t.PatientID == patientID && t.Source == source {
			result = append(result, t)
		}
	}
	return result, nil
}
