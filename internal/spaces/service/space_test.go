package service

import (
	"context"
	"testing"

	spaceserrors "ijuruhub/internal/spaces/errors"
	"ijuruhub/internal/spaces/repository"
	"ijuruhub/pkg/config"
	apperrors "ijuruhub/pkg/errors"
	"ijuruhub/pkg/logger"
	"ijuruhub/pkg/model"
)

type mockSpaceRepository struct {
	seedFunc       func(ctx context.Context) error
	resetFunc      func(ctx context.Context) error
	getFunc        func(ctx context.Context, id string) (*model.Space, error)
	listAllFunc    func(ctx context.Context) ([]*model.Space, error)
	listByTypeFunc func(ctx context.Context, spaceType string) ([]*model.Space, error)
}

func (m *mockSpaceRepository) SeedIfEmpty(ctx context.Context) error {
	if m.seedFunc != nil {
		return m.seedFunc(ctx)
	}
	return nil
}

func (m *mockSpaceRepository) Reset(ctx context.Context) error {
	if m.resetFunc != nil {
		return m.resetFunc(ctx)
	}
	return nil
}

func (m *mockSpaceRepository) Get(ctx context.Context, id string) (*model.Space, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, spaceserrors.ErrNotFound
}

func (m *mockSpaceRepository) ListAll(ctx context.Context) ([]*model.Space, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return repository.DefaultCatalog(), nil
}

func (m *mockSpaceRepository) ListByType(ctx context.Context, spaceType string) ([]*model.Space, error) {
	if m.listByTypeFunc != nil {
		return m.listByTypeFunc(ctx, spaceType)
	}
	var out []*model.Space
	for _, s := range repository.DefaultCatalog() {
		if s.Type == spaceType {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSpaceRepository) Occupy(ctx context.Context, id, name, phone string) (*model.Space, error) {
	return nil, spaceserrors.ErrNotFound
}

func (m *mockSpaceRepository) Vacate(ctx context.Context, id string) (*model.Space, error) {
	return nil, spaceserrors.ErrNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   logger.ERROR,
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func TestGetAll_GroupsByType(t *testing.T) {
	svc := NewSpaceService(&mockSpaceRepository{}, testConfig())

	grouped, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(grouped.HotDesks) != 12 {
		t.Errorf("expected 12 hot desks, got %d", len(grouped.HotDesks))
	}
	if len(grouped.DedicatedDesks) != 3 {
		t.Errorf("expected 3 dedicated desks, got %d", len(grouped.DedicatedDesks))
	}
	if len(grouped.PrivateOffices) != 2 {
		t.Errorf("expected 2 private offices, got %d", len(grouped.PrivateOffices))
	}
	if len(grouped.MeetingRooms) != 3 {
		t.Errorf("expected 3 meeting rooms, got %d", len(grouped.MeetingRooms))
	}
}

func TestGetByType_Slugs(t *testing.T) {
	svc := NewSpaceService(&mockSpaceRepository{}, testConfig())

	tests := []struct {
		slug  string
		total int
	}{
		{"hot-desk", 12},
		{"dedicated-desk", 3},
		{"private-office", 2},
		{"meeting-room", 3},
	}

	for _, tt := range tests {
		spaces, available, total, err := svc.GetByType(context.Background(), tt.slug)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.slug, err)
		}
		if total != tt.total || len(spaces) != tt.total {
			t.Errorf("%s: expected %d spaces, got %d", tt.slug, tt.total, total)
		}
		if available != tt.total {
			t.Errorf("%s: fresh catalog should be fully available, got %d of %d", tt.slug, available, total)
		}
	}
}

func TestGetByType_InvalidSlug(t *testing.T) {
	svc := NewSpaceService(&mockSpaceRepository{}, testConfig())

	_, _, _, err := svc.GetByType(context.Background(), "penthouse")
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestGetByType_CountsOccupied(t *testing.T) {
	repo := &mockSpaceRepository{
		listByTypeFunc: func(ctx context.Context, spaceType string) ([]*model.Space, error) {
			return []*model.Space{
				{ID: "mr1", Type: spaceType, Status: model.SpaceStatusOccupied},
				{ID: "mr2", Type: spaceType, Status: model.SpaceStatusAvailable},
				{ID: "mr3", Type: spaceType, Status: model.SpaceStatusAvailable},
			}, nil
		},
	}
	svc := NewSpaceService(repo, testConfig())

	_, available, total, err := svc.GetByType(context.Background(), "meeting-room")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || available != 2 {
		t.Errorf("expected 2 of 3 available, got %d of %d", available, total)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewSpaceService(&mockSpaceRepository{}, testConfig())

	_, err := svc.GetByID(context.Background(), "nope")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGetByID_EmptyID(t *testing.T) {
	svc := NewSpaceService(&mockSpaceRepository{}, testConfig())

	_, err := svc.GetByID(context.Background(), "")
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestStats(t *testing.T) {
	repo := &mockSpaceRepository{
		listAllFunc: func(ctx context.Context) ([]*model.Space, error) {
			catalog := repository.DefaultCatalog()
			// Occupy one hot desk and one private office.
			catalog[0].Status = model.SpaceStatusOccupied
			catalog[15].Status = model.SpaceStatusOccupied
			return catalog, nil
		},
	}
	svc := NewSpaceService(repo, testConfig())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 20 {
		t.Errorf("expected 20 spaces, got %d", stats.Total)
	}
	if stats.Occupied != 2 || stats.Available != 18 {
		t.Errorf("expected 2 occupied / 18 available, got %d / %d", stats.Occupied, stats.Available)
	}
	if stats.ByType["hotDesks"].Total != 12 || stats.ByType["hotDesks"].Occupied != 1 {
		t.Errorf("unexpected hot desk stats: %+v", stats.ByType["hotDesks"])
	}
	if stats.ByType["privateOffices"].Occupied != 1 || stats.ByType["privateOffices"].Available != 1 {
		t.Errorf("unexpected private office stats: %+v", stats.ByType["privateOffices"])
	}
	if stats.ByType["meetingRooms"].Total != 3 || stats.ByType["dedicatedDesks"].Total != 3 {
		t.Errorf("unexpected type totals: %+v", stats.ByType)
	}
}
