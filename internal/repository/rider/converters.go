package rider

import (
	"dispatch/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:                  r.ID,
		Name:                r.Name,
		Phone:               r.Phone,
		Status:              entities.RiderStatusType(r.Status),
		ZoneID:              r.ZoneID,
		ActiveOrders:        r.ActiveOrders,
		CompletedDeliveries: r.CompletedDeliveries,
		IsActive:            r.IsActive,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify) *RiderModifyDB {
	if riderModify == nil {
		return nil
	}

	riderDB := &RiderModifyDB{
		ID:       riderModify.ID,
		Name:     riderModify.Name,
		Phone:    riderModify.Phone,
		ZoneID:   riderModify.ZoneID,
		IsActive: riderModify.IsActive,
	}
	if riderModify.Status != nil {
		status := riderModify.Status.String()
		riderDB.Status = &status
	}

	return riderDB
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i := range ridersDB {
		result[i] = *ToDomain(&ridersDB[i])
	}
	return result
}

func ToLoadDomain(l *RiderLoadDB) *entities.RiderLoad {
	return &entities.RiderLoad{
		RiderID:             l.ID,
		ActiveOrders:        l.ActiveOrders,
		CompletedDeliveries: l.CompletedDeliveries,
	}
}
