package service

import (
	"context"
	"errors"

	spaceserrors "ijuruhub/internal/spaces/errors"
	"ijuruhub/internal/spaces/repository"
	"ijuruhub/pkg/config"
	apperrors "ijuruhub/pkg/errors"
	"ijuruhub/pkg/model"
)

// URL slugs accepted by the by-type listing.
var spaceTypeSlugs = map[string]string{
	"hot-desk":       model.SpaceTypeHotDesk,
	"dedicated-desk": model.SpaceTypeDedicatedDesk,
	"private-office": model.SpaceTypePrivateOffice,
	"meeting-room":   model.SpaceTypeMeetingRoom,
}

// SpaceService exposes the read side of the space registry plus seeding and
// reset. Occupancy transitions go through the booking coordinator so the
// booking/space invariants hold.
type SpaceService interface {
	SeedIfEmpty(ctx context.Context) error
	Reset(ctx context.Context) error
	GetAll(ctx context.Context) (*model.GroupedSpaces, error)
	GetByType(ctx context.Context, typeSlug string) ([]*model.Space, int, int, error)
	GetByID(ctx context.Context, id string) (*model.Space, error)
	Stats(ctx context.Context) (*model.SpaceStats, error)
}

type spaceService struct {
	repo repository.SpaceRepository
	cfg  *config.Config
}

func NewSpaceService(repo repository.SpaceRepository, cfg *config.Config) SpaceService {
	return &spaceService{repo: repo, cfg: cfg}
}

func (s *spaceService) SeedIfEmpty(ctx context.Context) error {
	if err := s.repo.SeedIfEmpty(ctx); err != nil {
		s.cfg.Log.Error("Failed to seed spaces", "error", err)
		return apperrors.Internal("Failed to initialize spaces", err)
	}
	return nil
}

func (s *spaceService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		s.cfg.Log.Error("Failed to reset spaces", "error", err)
		return apperrors.Internal("Failed to reset spaces", err)
	}
	s.cfg.Log.Info("All spaces reset to default state")
	return nil
}

func (s *spaceService) GetAll(ctx context.Context) (*model.GroupedSpaces, error) {
	spaces, err := s.repo.ListAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list spaces", "error", err)
		return nil, apperrors.Internal("Failed to fetch spaces", err)
	}

	grouped := &model.GroupedSpaces{
		HotDesks:       []*model.Space{},
		DedicatedDesks: []*model.Space{},
		PrivateOffices: []*model.Space{},
		MeetingRooms:   []*model.Space{},
	}
	for _, space := range spaces {
		switch space.Type {
		case model.SpaceTypeHotDesk:
			grouped.HotDesks = append(grouped.HotDesks, space)
		case model.SpaceTypeDedicatedDesk:
			grouped.DedicatedDesks = append(grouped.DedicatedDesks, space)
		case model.SpaceTypePrivateOffice:
			grouped.PrivateOffices = append(grouped.PrivateOffices, space)
		case model.SpaceTypeMeetingRoom:
			grouped.MeetingRooms = append(grouped.MeetingRooms, space)
		}
	}
	return grouped, nil
}

// GetByType resolves a URL slug and returns the spaces of that type together
// with the available and total counts.
func (s *spaceService) GetByType(ctx context.Context, typeSlug string) ([]*model.Space, int, int, error) {
	spaceType, ok := spaceTypeSlugs[typeSlug]
	if !ok {
		return nil, 0, 0, apperrors.InvalidInput("Invalid space type")
	}

	spaces, err := s.repo.ListByType(ctx, spaceType)
	if err != nil {
		s.cfg.Log.Error("Failed to list spaces by type", "type", spaceType, "error", err)
		return nil, 0, 0, apperrors.Internal("Failed to fetch spaces by type", err)
	}

	available := 0
	for _, space := range spaces {
		if space.Status == model.SpaceStatusAvailable {
			available++
		}
	}
	return spaces, available, len(spaces), nil
}

func (s *spaceService) GetByID(ctx context.Context, id string) (*model.Space, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Space ID cannot be empty")
	}

	space, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, spaceserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Space", id)
		}
		s.cfg.Log.Error("Failed to get space", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to fetch space", err)
	}
	return space, nil
}

func (s *spaceService) Stats(ctx context.Context) (*model.SpaceStats, error) {
	spaces, err := s.repo.ListAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list spaces for stats", "error", err)
		return nil, apperrors.Internal("Failed to fetch space statistics", err)
	}

	stats := &model.SpaceStats{
		Total:  len(spaces),
		ByType: make(map[string]model.SpaceTypeStats, len(model.SpaceTypes)),
	}

	typeKeys := map[string]string{
		model.SpaceTypeHotDesk:       "hotDesks",
		model.SpaceTypeDedicatedDesk: "dedicatedDesks",
		model.SpaceTypePrivateOffice: "privateOffices",
		model.SpaceTypeMeetingRoom:   "meetingRooms",
	}
	for _, key := range typeKeys {
		stats.ByType[key] = model.SpaceTypeStats{}
	}

	for _, space := range spaces {
		key := typeKeys[space.Type]
		byType := stats.ByType[key]
		byType.Total++

		if space.Status == model.SpaceStatusOccupied {
			stats.Occupied++
			byType.Occupied++
		} else {
			stats.Available++
			byType.Available++
		}
		stats.ByType[key] = byType
	}

	return stats, nil
}
