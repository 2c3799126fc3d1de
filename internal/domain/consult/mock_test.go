package consult

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items map[uuid.UUID]*ConsultRequest
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*ConsultRequest)}
}

func (m *mockRepo) Create(_ context.Context, c *ConsultRequest) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	m.items[c.ID] = c
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*ConsultRequest, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (m *mockRepo) Update(_ context.Context, c *ConsultRequest) error {
	if _, ok := m.items[c.ID]; !ok {
		return ErrNotFound
	}
	c.UpdatedAt = time.Now()
	m.items[c.ID] = c
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) DeleteByHospital(_ context.Context, hospital string) (int, error) {
	count := 0
	for id, c := range m.items {
		if c.Hospital == hospital {
			delete(m.items, id)
			count++
		}
	}
	return count, nil
}

func (m *mockRepo) List(_ context.Context, status, hospital string, limit, offset int) ([]*ConsultRequest, int, error) {
	var result []*ConsultRequest
	for _, c := range m.items {
		if status != "" && c.Status != status {
			continue
		}
		if hospital != "" && c.Hospital != hospital {
			continue
		}
		result = append(result, c)
	}
	return result, len(result), nil
}
