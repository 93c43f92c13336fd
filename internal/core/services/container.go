package services

import (
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Loan:       NewLoanService(repos.LoanRepo),
		Commission: NewCommissionService(repos.CommissionRepo, repos.EmployeeRepo),
		Schedule:   NewScheduleService(repos.ScheduleRepo, repos.EmployeeRepo, repos.EmployeeRepo),
	}
}
