package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	"github.com/hraxis/hr_payroll_app/internal/models"
)

// PgxEmployeeRepository is a read-only view over the employee directory and
// the work-time definitions maintained by the HR master-data system.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeReader = (*PgxEmployeeRepository)(nil)
var _ portsrepo.WorkTimeReader = (*PgxEmployeeRepository)(nil)

// FindEmployeeByID retrieves an employee directory record.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, display_name, branch_id, basic_salary, is_active
		FROM employees
		WHERE employee_id = $1;
	`
	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID,
		&m.DisplayName,
		&m.BranchID,
		&m.BasicSalary,
		&m.IsActive,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to find employee "+employeeID)
	}
	return &domain.Employee{
		EmployeeID:  m.EmployeeID,
		DisplayName: m.DisplayName,
		BranchID:    m.BranchID,
		BasicSalary: m.BasicSalary,
		IsActive:    m.IsActive,
	}, nil
}

// FindWorkTimeByID retrieves a work-time shift definition.
func (r *PgxEmployeeRepository) FindWorkTimeByID(ctx context.Context, workTimeID string) (*domain.WorkTime, error) {
	query := `
		SELECT work_time_id, name, starts_at, ends_at, is_active
		FROM work_times
		WHERE work_time_id = $1;
	`
	var m models.WorkTime
	err := r.Pool.QueryRow(ctx, query, workTimeID).Scan(
		&m.WorkTimeID,
		&m.Name,
		&m.StartsAt,
		&m.EndsAt,
		&m.IsActive,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to find work time "+workTimeID)
	}
	return &domain.WorkTime{
		WorkTimeID: m.WorkTimeID,
		Name:       m.Name,
		StartsAt:   m.StartsAt,
		EndsAt:     m.EndsAt,
		IsActive:   m.IsActive,
	}, nil
}
