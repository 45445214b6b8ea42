package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
)

// PropertyUseCase landlord property and unit management plus the public
// vacant-unit listing.
type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	unitRepo     repository.UnitRepository
}

// NewPropertyUseCase builds the use case.
func NewPropertyUseCase(propertyRepo repository.PropertyRepository, unitRepo repository.UnitRepository) *PropertyUseCase {
	return &PropertyUseCase{propertyRepo: propertyRepo, unitRepo: unitRepo}
}

// CreateProperty creates a property owned by the landlord.
func (uc *PropertyUseCase) CreateProperty(landlordID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Property{
		ID:         uuid.New().String(),
		LandlordID: landlordID,
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
		Type:       in.Type,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.propertyRepo.Create(p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// GetProperty returns a property owned by the landlord.
func (uc *PropertyUseCase) GetProperty(landlordID, id string) (*dto.PropertyResponse, error) {
	p, err := uc.ownedProperty(landlordID, id)
	if err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// ListProperties lists the landlord's properties.
func (uc *PropertyUseCase) ListProperties(landlordID string, limit, offset int) ([]*dto.PropertyResponse, error) {
	list, err := uc.propertyRepo.ListByLandlord(landlordID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPropertyResponse(p))
	}
	return out, nil
}

// UpdateProperty updates a property owned by the landlord.
func (uc *PropertyUseCase) UpdateProperty(landlordID, id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.ownedProperty(landlordID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Address != "" {
		p.Address = in.Address
	}
	if in.City != "" {
		p.City = in.City
	}
	if in.State != "" {
		p.State = in.State
	}
	if in.ZipCode != "" {
		p.ZipCode = in.ZipCode
	}
	if in.Type != "" {
		p.Type = in.Type
	}
	p.UpdatedAt = time.Now()
	if err := uc.propertyRepo.Update(p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// DeleteProperty removes a property owned by the landlord.
func (uc *PropertyUseCase) DeleteProperty(landlordID, id string) error {
	if _, err := uc.ownedProperty(landlordID, id); err != nil {
		return err
	}
	return uc.propertyRepo.Delete(id)
}

// CreateUnit adds a unit under a property owned by the landlord.
// New units start vacant.
func (uc *PropertyUseCase) CreateUnit(landlordID, propertyID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if _, err := uc.ownedProperty(landlordID, propertyID); err != nil {
		return nil, err
	}
	if in.Label == "" || in.Rent.IsNegative() || in.Rent.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	u := &entity.Unit{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		Label:      in.Label,
		Bedrooms:   in.Bedrooms,
		Bathrooms:  in.Bathrooms,
		SquareFeet: in.SquareFeet,
		Rent:       in.Rent,
		Deposit:    in.Deposit,
		Status:     entity.UnitVacant,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.unitRepo.Create(u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

// ListUnits lists units under a property owned by the landlord.
func (uc *PropertyUseCase) ListUnits(landlordID, propertyID string) ([]*dto.UnitResponse, error) {
	if _, err := uc.ownedProperty(landlordID, propertyID); err != nil {
		return nil, err
	}
	list, err := uc.unitRepo.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// UpdateUnit edits a unit under a property owned by the landlord.
// Occupancy is not settable directly here; approval and lease end manage it.
func (uc *PropertyUseCase) UpdateUnit(landlordID, unitID string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	u, err := uc.ownedUnit(landlordID, unitID)
	if err != nil {
		return nil, err
	}
	if in.Label != "" {
		u.Label = in.Label
	}
	if in.Bedrooms > 0 {
		u.Bedrooms = in.Bedrooms
	}
	if in.Bathrooms > 0 {
		u.Bathrooms = in.Bathrooms
	}
	if in.SquareFeet > 0 {
		u.SquareFeet = in.SquareFeet
	}
	if in.Rent.IsPositive() {
		u.Rent = in.Rent
	}
	if !in.Deposit.IsNegative() && in.Deposit.IsPositive() {
		u.Deposit = in.Deposit
	}
	if in.Status != "" {
		switch in.Status {
		case entity.UnitVacant, entity.UnitUnlisted, entity.UnitMaintenance:
			if u.Status == entity.UnitOccupied {
				return nil, domain.ErrConflict // occupied units are released by ending the lease
			}
			u.Status = in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	u.UpdatedAt = time.Now()
	if err := uc.unitRepo.Update(u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

// DeleteUnit removes a unit; occupied units cannot be deleted.
func (uc *PropertyUseCase) DeleteUnit(landlordID, unitID string) error {
	u, err := uc.ownedUnit(landlordID, unitID)
	if err != nil {
		return err
	}
	if u.Status == entity.UnitOccupied {
		return domain.ErrConflict
	}
	return uc.unitRepo.Delete(unitID)
}

// BrowseVacantUnits is the public listing of vacant units.
func (uc *PropertyUseCase) BrowseVacantUnits(limit, offset int) ([]*dto.UnitResponse, error) {
	list, err := uc.unitRepo.ListVacant(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

func (uc *PropertyUseCase) ownedProperty(landlordID, id string) (*entity.Property, error) {
	p, err := uc.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.LandlordID != landlordID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (uc *PropertyUseCase) ownedUnit(landlordID, unitID string) (*entity.Unit, error) {
	u, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedProperty(landlordID, u.PropertyID); err != nil {
		return nil, err
	}
	return u, nil
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
	}
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:         u.ID,
		PropertyID: u.PropertyID,
		Label:      u.Label,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		SquareFeet: u.SquareFeet,
		Rent:       u.Rent,
		Deposit:    u.Deposit,
		Status:     u.Status,
	}
}
