package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:         c.ID,
		NationalID: c.NationalID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		Vehicle:    c.Vehicle,
		Zone:       entities.ZoneType(c.Zone),
		Capacity:   c.Capacity,
		Available:  c.Available,
		Active:     c.Active,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{}

	if courierModify.ID != nil {
		courierDB.ID = courierModify.ID
	}
	if courierModify.NationalID != nil {
		courierDB.NationalID = courierModify.NationalID
	}
	if courierModify.FirstName != nil {
		courierDB.FirstName = courierModify.FirstName
	}
	if courierModify.LastName != nil {
		courierDB.LastName = courierModify.LastName
	}
	if courierModify.Phone != nil {
		courierDB.Phone = courierModify.Phone
	}
	if courierModify.Vehicle != nil {
		courierDB.Vehicle = courierModify.Vehicle
	}
	if courierModify.Zone != nil {
		zone := courierModify.Zone.String()
		courierDB.Zone = &zone
	}
	if courierModify.Capacity != nil {
		courierDB.Capacity = courierModify.Capacity
	}
	if courierModify.Available != nil {
		courierDB.Available = courierModify.Available
	}
	if courierModify.Active != nil {
		courierDB.Active = courierModify.Active
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
