package repository

import "ijuruhub/pkg/model"

type catalogEntry struct {
	id       string
	name     string
	spaceTyp string
	price    string
	capacity string
}

// The fixed catalog of bookable units: 12 hot-desk seats across 3 tables,
// 3 dedicated desks, 2 private offices, 3 meeting rooms.
var defaultCatalog = []catalogEntry{
	{id: "hd1", name: "Table 1 - Seat A", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd2", name: "Table 1 - Seat B", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd3", name: "Table 1 - Seat C", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd4", name: "Table 1 - Seat D", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd5", name: "Table 2 - Seat A", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd6", name: "Table 2 - Seat B", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd7", name: "Table 2 - Seat C", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd8", name: "Table 2 - Seat D", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd9", name: "Table 3 - Seat A", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd10", name: "Table 3 - Seat B", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd11", name: "Table 3 - Seat C", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},
	{id: "hd12", name: "Table 3 - Seat D", spaceTyp: model.SpaceTypeHotDesk, price: "5,000 RWF/hour"},

	{id: "dd1", name: "Private Desk 1", spaceTyp: model.SpaceTypeDedicatedDesk, price: "90,000 RWF/month"},
	{id: "dd2", name: "Private Desk 2", spaceTyp: model.SpaceTypeDedicatedDesk, price: "90,000 RWF/month"},
	{id: "dd3", name: "Public Desk (Shared)", spaceTyp: model.SpaceTypeDedicatedDesk, price: "90,000 RWF/month"},

	{id: "po1", name: "Private Room 1", spaceTyp: model.SpaceTypePrivateOffice, price: "120,000 RWF/month"},
	{id: "po2", name: "Private Room 2", spaceTyp: model.SpaceTypePrivateOffice, price: "120,000 RWF/month"},

	{id: "mr1", name: "Meeting Room A (Large)", spaceTyp: model.SpaceTypeMeetingRoom, price: "10,000 RWF/hour", capacity: "Up to 6 People"},
	{id: "mr2", name: "Meeting Room B (Small)", spaceTyp: model.SpaceTypeMeetingRoom, price: "8,000 RWF/hour", capacity: "Up to 4 People"},
	{id: "mr3", name: "Meeting Room C (Small)", spaceTyp: model.SpaceTypeMeetingRoom, price: "8,000 RWF/hour", capacity: "Up to 4 People"},
}

// DefaultCatalog returns fresh Space documents for the seed catalog, all
// available. Callers own the returned slice.
func DefaultCatalog() []*model.Space {
	spaces := make([]*model.Space, 0, len(defaultCatalog))
	for _, e := range defaultCatalog {
		spaces = append(spaces, &model.Space{
			ID:       e.id,
			Name:     e.name,
			Type:     e.spaceTyp,
			Status:   model.SpaceStatusAvailable,
			Price:    e.price,
			Capacity: e.capacity,
		})
	}
	return spaces
}
