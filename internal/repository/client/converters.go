package client

import (
	"dispatch/internal/entities"
)

func ToDomain(c *ClientDB) *entities.Client {
	if c == nil {
		return nil
	}

	return &entities.Client{
		ID:           c.ID,
		NationalID:   c.NationalID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Phone:        c.Phone,
		Address:      c.Address,
		Email:        c.Email,
		Zone:         entities.ZoneType(c.Zone),
		Disability:   c.Disability,
		RegisteredAt: c.RegisteredAt,
	}
}

func FromDomainModify(clientModify *entities.ClientModify) *ClientModifyDB {
	if clientModify == nil {
		return nil
	}
	clientDB := &ClientModifyDB{}

	if clientModify.ID != nil {
		clientDB.ID = clientModify.ID
	}
	if clientModify.NationalID != nil {
		clientDB.NationalID = clientModify.NationalID
	}
	if clientModify.FirstName != nil {
		clientDB.FirstName = clientModify.FirstName
	}
	if clientModify.LastName != nil {
		clientDB.LastName = clientModify.LastName
	}
	if clientModify.Phone != nil {
		clientDB.Phone = clientModify.Phone
	}
	if clientModify.Address != nil {
		clientDB.Address = clientModify.Address
	}
	if clientModify.Email != nil {
		clientDB.Email = clientModify.Email
	}
	if clientModify.Zone != nil {
		zone := clientModify.Zone.String()
		clientDB.Zone = &zone
	}
	if clientModify.Disability != nil {
		clientDB.Disability = clientModify.Disability
	}

	return clientDB
}

func ToDomainList(clientsDB []ClientDB) []entities.Client {
	if len(clientsDB) == 0 {
		return []entities.Client{}
	}

	result := make([]entities.Client, len(clientsDB))
	for i, clientDB := range clientsDB {
		result[i] = *ToDomain(&clientDB)
	}
	return result
}
