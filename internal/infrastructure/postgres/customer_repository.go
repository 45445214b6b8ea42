package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, contractor_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.ContractorID, customer.Name, customer.Email, customer.Phone,
		customer.Address, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, contractor_id, name, email, phone, address, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ContractorID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) ListByContractor(contractorID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, contractor_id, name, email, phone, address, created_at, updated_at
		FROM customers WHERE contractor_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, contractorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.ContractorID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implements EmployeeRepository over PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, contractor_id, name, email, title, hourly_rate, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.ContractorID, employee.Name, employee.Email, employee.Title,
		employee.HourlyRate, employee.Active, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `
		SELECT id, contractor_id, name, email, title, hourly_rate, active, created_at, updated_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ContractorID, &e.Name, &e.Email, &e.Title, &e.HourlyRate, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) ListByContractor(contractorID string) ([]*entity.Employee, error) {
	query := `
		SELECT id, contractor_id, name, email, title, hourly_rate, active, created_at, updated_at
		FROM employees WHERE contractor_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, contractorID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.ContractorID, &e.Name, &e.Email, &e.Title, &e.HourlyRate,
			&e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) CountActiveByContractor(contractorID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM employees WHERE contractor_id = $1 AND active`, contractorID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active employees: %w", err)
	}
	return n, nil
}

func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, email = $3, title = $4, hourly_rate = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Email, employee.Title, employee.HourlyRate,
		employee.Active, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
