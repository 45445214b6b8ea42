package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// CustomerRepository is the persistence port for a contractor's customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByContractor(contractorID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}

// EmployeeRepository is the persistence port for a contractor's employees.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	ListByContractor(contractorID string) ([]*entity.Employee, error)
	// CountActiveByContractor backs the tier quantity limit at create time.
	CountActiveByContractor(contractorID string) (int, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
