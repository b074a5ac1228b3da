package model

import "time"

const (
	SpaceStatusAvailable = "available"
	SpaceStatusOccupied  = "occupied"
)

const (
	SpaceTypeHotDesk       = "Hot Desk"
	SpaceTypeDedicatedDesk = "Dedicated Desk"
	SpaceTypePrivateOffice = "Private Office"
	SpaceTypeMeetingRoom   = "Meeting Room"
)

// SpaceTypes lists every bookable unit type, in catalog order.
var SpaceTypes = []string{
	SpaceTypeHotDesk,
	SpaceTypeDedicatedDesk,
	SpaceTypePrivateOffice,
	SpaceTypeMeetingRoom,
}

func IsValidSpaceType(t string) bool {
	for _, st := range SpaceTypes {
		if st == t {
			return true
		}
	}
	return false
}

// Occupant is the customer currently holding a space. Both fields are empty
// while the space is available.
type Occupant struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

// Space is a bookable physical unit. The invariant maintained by the registry
// is Status == occupied exactly when Occupant != nil.
type Space struct {
	ID         string     `json:"id" bson:"id"`
	Name       string     `json:"name" bson:"name"`
	Type       string     `json:"type" bson:"type"`
	Status     string     `json:"status" bson:"status"`
	Occupant   *Occupant  `json:"occupant" bson:"occupant,omitempty"`
	Price      string     `json:"price" bson:"price"`
	Capacity   string     `json:"capacity,omitempty" bson:"capacity,omitempty"`
	OccupiedAt *time.Time `json:"occupiedAt" bson:"occupiedAt,omitempty"`
	VacatedAt  *time.Time `json:"vacatedAt" bson:"vacatedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// GroupedSpaces is the catalog grouped by type for the public listing.
type GroupedSpaces struct {
	HotDesks       []*Space `json:"hotDesks"`
	DedicatedDesks []*Space `json:"dedicatedDesks"`
	PrivateOffices []*Space `json:"privateOffices"`
	MeetingRooms   []*Space `json:"meetingRooms"`
}

// SpaceTypeStats is the occupancy breakdown for a single space type.
type SpaceTypeStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

// SpaceStats is the registry-wide occupancy breakdown.
type SpaceStats struct {
	Total     int                       `json:"total"`
	Available int                       `json:"available"`
	Occupied  int                       `json:"occupied"`
	ByType    map[string]SpaceTypeStats `json:"byType"`
}
