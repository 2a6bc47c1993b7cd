package mapping

import (
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/models"
)

func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		ProfileID:    d.ProfileID,
		DisplayName:  d.DisplayName,
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Phone:        d.Phone,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:    m.ProfileID,
		DisplayName:  m.DisplayName,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		Phone:        m.Phone,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
