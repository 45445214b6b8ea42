package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// CRMUseCase contractor customers and employees. Employee headcount is
// capped by the subscription tier.
type CRMUseCase struct {
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	entitlements *EntitlementService
}

// NewCRMUseCase builds the use case.
func NewCRMUseCase(customerRepo repository.CustomerRepository, employeeRepo repository.EmployeeRepository, entitlements *EntitlementService) *CRMUseCase {
	return &CRMUseCase{customerRepo: customerRepo, employeeRepo: employeeRepo, entitlements: entitlements}
}

// CreateCustomer adds a client to the contractor's book.
func (uc *CRMUseCase) CreateCustomer(contractorID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Customer{
		ID:           uuid.New().String(),
		ContractorID: contractorID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customerRepo.Create(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// ListCustomers lists the contractor's customers.
func (uc *CRMUseCase) ListCustomers(contractorID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	list, err := uc.customerRepo.ListByContractor(contractorID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// DeleteCustomer removes a customer owned by the contractor.
func (uc *CRMUseCase) DeleteCustomer(contractorID, id string) error {
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.ContractorID != contractorID {
		return domain.ErrForbidden
	}
	return uc.customerRepo.Delete(id)
}

// CreateEmployee adds an employee. Returns ErrLimitExceeded when the tier's
// headcount cap is reached.
func (uc *CRMUseCase) CreateEmployee(ctx context.Context, contractorID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	limits, err := uc.entitlements.LimitsFor(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	count, err := uc.employeeRepo.CountActiveByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	if !limits.Allows(limits.Employees, count) {
		return nil, domain.ErrLimitExceeded
	}
	now := time.Now()
	e := &entity.Employee{
		ID:           uuid.New().String(),
		ContractorID: contractorID,
		Name:         in.Name,
		Email:        in.Email,
		Title:        in.Title,
		HourlyRate:   in.HourlyRate,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.employeeRepo.Create(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// ListEmployees lists the contractor's employees.
func (uc *CRMUseCase) ListEmployees(contractorID string) ([]*dto.EmployeeResponse, error) {
	list, err := uc.employeeRepo.ListByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// DeactivateEmployee marks an employee inactive (frees a headcount slot).
func (uc *CRMUseCase) DeactivateEmployee(contractorID, id string) error {
	e, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if e.ContractorID != contractorID {
		return domain.ErrForbidden
	}
	e.Active = false
	e.UpdatedAt = time.Now()
	return uc.employeeRepo.Update(e)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Title:      e.Title,
		HourlyRate: e.HourlyRate,
		Active:     e.Active,
	}
}
