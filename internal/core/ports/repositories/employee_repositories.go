package repositories

import (
	"context"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
)

// EmployeeReader is the directory lookup contract: existence, display name and
// the current basic salary. The directory itself is maintained elsewhere.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee directory record.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// WorkTimeReader resolves work-time shift definitions referenced by submissions.
type WorkTimeReader interface {
	// FindWorkTimeByID retrieves a work-time shift definition.
	FindWorkTimeByID(ctx context.Context, workTimeID string) (*domain.WorkTime, error)
}

// DirectoryReader combines the master-data lookups backed by one store.
type DirectoryReader interface {
	EmployeeReader
	WorkTimeReader
}

// RepositoryProvider bundles every repository the service layer needs.
type RepositoryProvider struct {
	LoanRepo       LoanRepositoryFacade
	CommissionRepo CommissionRepositoryFacade
	ScheduleRepo   ScheduleRepositoryFacade
	EmployeeRepo   DirectoryReader
}
