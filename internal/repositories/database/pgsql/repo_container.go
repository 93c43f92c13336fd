package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeoutMS int) portsrepo.RepositoryProvider {
	loanRepo := newPgxLoanRepository(dbPool, lockTimeoutMS)
	commissionRepo := newPgxCommissionRepository(dbPool, lockTimeoutMS)
	scheduleRepo := newPgxScheduleRepository(dbPool, lockTimeoutMS)
	employeeRepo := newPgxEmployeeRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LoanRepo:       loanRepo,
		CommissionRepo: commissionRepo,
		ScheduleRepo:   scheduleRepo,
		EmployeeRepo:   employeeRepo,
	}
}
