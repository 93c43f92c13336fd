package mapping

import (
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/hraxis/hr_payroll_app/internal/models"
)

// ToModelLoan converts a domain Loan to its storage model.
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:      d.LoanID,
		EmployeeID:  d.EmployeeID,
		LoanAmount:  d.LoanAmount,
		Balance:     d.Balance,
		Status:      models.LoanStatus(d.Status),
		IssuedDate:  d.IssuedDate,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a storage Loan to its domain form.
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:      m.LoanID,
		EmployeeID:  m.EmployeeID,
		LoanAmount:  m.LoanAmount,
		Balance:     m.Balance,
		Status:      domain.LoanStatus(m.Status),
		IssuedDate:  m.IssuedDate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLoanEntry converts a domain LoanEntry to its storage model.
func ToModelLoanEntry(d domain.LoanEntry) models.LoanEntry {
	return models.LoanEntry{
		EntryID:     d.EntryID,
		LoanID:      d.LoanID,
		EntryType:   models.EntryType(d.EntryType),
		Amount:      d.Amount,
		EntryDate:   d.EntryDate,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoanEntry converts a storage LoanEntry to its domain form.
func ToDomainLoanEntry(m models.LoanEntry) domain.LoanEntry {
	return domain.LoanEntry{
		EntryID:     m.EntryID,
		LoanID:      m.LoanID,
		EntryType:   domain.EntryType(m.EntryType),
		Amount:      m.Amount,
		EntryDate:   m.EntryDate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanEntrySlice converts a slice of storage entries to domain form.
func ToDomainLoanEntrySlice(ms []models.LoanEntry) []domain.LoanEntry {
	ds := make([]domain.LoanEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoanEntry(m)
	}
	return ds
}
