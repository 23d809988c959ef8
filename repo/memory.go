package repo

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"IntakeBot/model"
)

// MemoryStore keeps applications in process memory. It is used when no
// Firebase database is configured.
type MemoryStore struct {
	mu           sync.Mutex
	seq          int
	applications map[string]model.EventApplication
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{applications: make(map[string]model.EventApplication)}
}

func (m *MemoryStore) CreateEventApplication(ctx context.Context, applicationData string) (*model.ApplicationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, remoteErr("Request cancelled", err)
	}
	application, err := DecodeApplication(applicationData)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	application.ID = strconv.Itoa(m.seq)
	application.Name = ApplicationName(m.seq)
	application.CreatedAt = time.Now().Unix()
	m.applications[application.ID] = *application
	return &model.ApplicationResult{ID: application.ID, Name: application.Name}, nil
}

func (m *MemoryStore) ReadApplication(_ context.Context, id string) (*model.EventApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	application, ok := m.applications[id]
	if !ok {
		return nil, model.ErrApplicationNotFound
	}
	return &application, nil
}

func (m *MemoryStore) ListApplications(_ context.Context) ([]model.EventApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]model.EventApplication, 0, len(m.applications))
	for _, application := range m.applications {
		list = append(list, application)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (m *MemoryStore) DeleteApplication(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.applications[id]; !ok {
		return model.ErrApplicationNotFound
	}
	delete(m.applications, id)
	return nil
}
