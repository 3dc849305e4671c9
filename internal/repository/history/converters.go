package history

import (
	"dispatch/internal/entities"
)

func ToDomain(h *StateHistoryDB) *entities.StateHistoryEntry {
	if h == nil {
		return nil
	}

	entry := &entities.StateHistoryEntry{
		ID:        h.ID,
		OrderID:   h.OrderID,
		NewStatus: entities.OrderStatusType(h.NewStatus),
		ChangedAt: h.ChangedAt,
		ChangedBy: h.ChangedBy,
	}
	if h.PreviousStatus != nil {
		previous := entities.OrderStatusType(*h.PreviousStatus)
		entry.PreviousStatus = &previous
	}

	return entry
}

func ToDomainList(entriesDB []StateHistoryDB) []entities.StateHistoryEntry {
	if len(entriesDB) == 0 {
		return []entities.StateHistoryEntry{}
	}

	result := make([]entities.StateHistoryEntry, len(entriesDB))
	for i, entryDB := range entriesDB {
		result[i] = *ToDomain(&entryDB)
	}
	return result
}
