package mapping

import (
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/models"
)

func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:        d.ClientID,
		ProfileID:       d.ProfileID,
		Name:            d.Name,
		Phone:           d.Phone,
		Email:           d.Email,
		Address:         d.Address,
		Notes:           d.Notes,
		IsFavorite:      d.IsFavorite,
		TotalSpent:      d.TotalSpent,
		LastServiceDate: d.LastServiceDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:        m.ClientID,
		ProfileID:       m.ProfileID,
		Name:            m.Name,
		Phone:           m.Phone,
		Email:           m.Email,
		Address:         m.Address,
		Notes:           m.Notes,
		IsFavorite:      m.IsFavorite,
		TotalSpent:      m.TotalSpent,
		LastServiceDate: m.LastServiceDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
