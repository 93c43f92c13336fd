package mapping

import (
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/hraxis/hr_payroll_app/internal/models"
)

// ToModelCommission converts a domain Commission to its storage model.
func ToModelCommission(d domain.Commission) models.Commission {
	return models.Commission{
		CommissionID: d.CommissionID,
		EmployeeID:   d.EmployeeID,
		BasicSalary:  d.BasicSalary,
		Total:        d.Total,
		DateFrom:     d.DateFrom,
		DateUntil:    d.DateUntil,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommission converts a storage Commission to its domain form.
func ToDomainCommission(m models.Commission) domain.Commission {
	return domain.Commission{
		CommissionID: m.CommissionID,
		EmployeeID:   m.EmployeeID,
		BasicSalary:  m.BasicSalary,
		Total:        m.Total,
		DateFrom:     m.DateFrom,
		DateUntil:    m.DateUntil,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCommissionEntry converts a domain CommissionEntry to its storage model.
func ToModelCommissionEntry(d domain.CommissionEntry) models.CommissionEntry {
	return models.CommissionEntry{
		EntryID:      d.EntryID,
		CommissionID: d.CommissionID,
		EntryDate:    d.EntryDate,
		Amount:       d.Amount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommissionEntry converts a storage CommissionEntry to its domain form.
func ToDomainCommissionEntry(m models.CommissionEntry) domain.CommissionEntry {
	return domain.CommissionEntry{
		EntryID:      m.EntryID,
		CommissionID: m.CommissionID,
		EntryDate:    m.EntryDate,
		Amount:       m.Amount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCommissionEntrySlice converts a slice of storage entries to domain form.
func ToDomainCommissionEntrySlice(ms []models.CommissionEntry) []domain.CommissionEntry {
	ds := make([]domain.CommissionEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommissionEntry(m)
	}
	return ds
}
