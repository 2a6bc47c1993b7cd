package mapping

import (
	"github.com/SscSPs/costureira_pro/internal/core/domain"
	"github.com/SscSPs/costureira_pro/internal/models"
)

func ToModelPieceCounter(d domain.PieceCounter) models.PieceCounter {
	return models.PieceCounter{
		CounterID:   d.CounterID,
		ProfileID:   d.ProfileID,
		ClientID:    d.ClientID,
		ClientName:  d.ClientName,
		TotalPieces: d.TotalPieces,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPieceCounter(m models.PieceCounter) domain.PieceCounter {
	return domain.PieceCounter{
		CounterID:   m.CounterID,
		ProfileID:   m.ProfileID,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		TotalPieces: m.TotalPieces,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPieceCounterSlice(ms []models.PieceCounter) []domain.PieceCounter {
	ds := make([]domain.PieceCounter, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPieceCounter(m)
	}
	return ds
}

func ToModelPieceCounterEntry(d domain.PieceCounterEntry) models.PieceCounterEntry {
	return models.PieceCounterEntry{
		EntryID:     d.EntryID,
		CounterID:   d.CounterID,
		ProfileID:   d.ProfileID,
		Delta:       d.Delta,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainPieceCounterEntry(m models.PieceCounterEntry) domain.PieceCounterEntry {
	return domain.PieceCounterEntry{
		EntryID:     m.EntryID,
		CounterID:   m.CounterID,
		ProfileID:   m.ProfileID,
		Delta:       m.Delta,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainPieceCounterEntrySlice(ms []models.PieceCounterEntry) []domain.PieceCounterEntry {
	ds := make([]domain.PieceCounterEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPieceCounterEntry(m)
	}
	return ds
}
