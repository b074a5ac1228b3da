package repository

import (
	"testing"

	"ijuruhub/pkg/model"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	if len(catalog) != 20 {
		t.Fatalf("expected 20 spaces, got %d", len(catalog))
	}

	counts := map[string]int{}
	ids := map[string]bool{}
	for _, space := range catalog {
		counts[space.Type]++

		if ids[space.ID] {
			t.Errorf("duplicate space id %s", space.ID)
		}
		ids[space.ID] = true

		if space.Status != model.SpaceStatusAvailable {
			t.Errorf("space %s should start available, got %s", space.ID, space.Status)
		}
		if space.Occupant != nil {
			t.Errorf("space %s should start without an occupant", space.ID)
		}
		if space.Name == "" || space.Price == "" {
			t.Errorf("space %s is missing name or price", space.ID)
		}
	}

	want := map[string]int{
		model.SpaceTypeHotDesk:       12,
		model.SpaceTypeDedicatedDesk: 3,
		model.SpaceTypePrivateOffice: 2,
		model.SpaceTypeMeetingRoom:   3,
	}
	for spaceType, n := range want {
		if counts[spaceType] != n {
			t.Errorf("expected %d %s spaces, got %d", n, spaceType, counts[spaceType])
		}
	}
}

func TestDefaultCatalog_MeetingRoomCapacities(t *testing.T) {
	for _, space := range DefaultCatalog() {
		if space.Type == model.SpaceTypeMeetingRoom && space.Capacity == "" {
			t.Errorf("meeting room %s has no capacity", space.ID)
		}
		if space.Type == model.SpaceTypeHotDesk && space.Capacity != "" {
			t.Errorf("hot desk %s should not carry a capacity", space.ID)
		}
	}
}

func TestDefaultCatalog_ReturnsFreshCopies(t *testing.T) {
	first := DefaultCatalog()
	first[0].Status = model.SpaceStatusOccupied

	second := DefaultCatalog()
	if second[0].Status != model.SpaceStatusAvailable {
		t.Error("DefaultCatalog must not share state between calls")
	}
}
