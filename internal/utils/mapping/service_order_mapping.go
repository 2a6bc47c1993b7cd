package mapping

import (
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/models"
)

func ToModelServiceOrder(d domain.ServiceOrder) models.ServiceOrder {
	return models.ServiceOrder{
		ServiceID:    d.ServiceID,
		ProfileID:    d.ProfileID,
		ClientID:     d.ClientID,
		ClientName:   d.ClientName,
		Description:  d.Description,
		Value:        d.Value,
		DeliveryDate: d.DeliveryDate,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainServiceOrder(m models.ServiceOrder) domain.ServiceOrder {
	return domain.ServiceOrder{
		ServiceID:    m.ServiceID,
		ProfileID:    m.ProfileID,
		ClientID:     m.ClientID,
		ClientName:   m.ClientName,
		Description:  m.Description,
		Value:        m.Value,
		DeliveryDate: m.DeliveryDate,
		Status:       domain.ServiceStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainServiceOrderSlice(ms []models.ServiceOrder) []domain.ServiceOrder {
	ds := make([]domain.ServiceOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainServiceOrder(m)
	}
	return ds
}
