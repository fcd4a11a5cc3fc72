package service

import (
	"context"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
)

// AddressService translates between address entities and DTOs. Addresses
// have no natural-key guard; duplicates are allowed. GetOneAddress and
// GetAllAddresses propagate store failures, the remaining operations swallow
// them.
type AddressService struct {
	addresses *repository.AddressRepository
	logs      *logger.Logs
}

// NewAddressService creates the service.
func NewAddressService(addresses *repository.AddressRepository, logs *logger.Logs) *AddressService {
	return &AddressService{addresses: addresses, logs: logs}
}

// CreateAddress stores a new address and returns it, or nil on failure.
func (s *AddressService) CreateAddress(ctx context.Context, streetName, streetNumber, postalCode, city string) *AddressDto {
	created := s.addresses.Create(ctx, &domain.AddressEntity{
		StreetName:   streetName,
		StreetNumber: streetNumber,
		PostalCode:   postalCode,
		City:         city,
	})
	return toAddressDto(created)
}

// GetOneAddress returns the first address matching pred.
func (s *AddressService) GetOneAddress(ctx context.Context, pred predicate.Predicate) (*AddressDto, error) {
	address, err := s.addresses.GetOne(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "AddressService - GetOneAddress")
		return nil, err
	}
	return toAddressDto(address), nil
}

// GetAddresses returns up to take addresses matching pred. Failures surface
// as an empty result.
func (s *AddressService) GetAddresses(ctx context.Context, pred predicate.Predicate, take int) []AddressDto {
	addresses, err := s.addresses.Get(ctx, pred, take)
	if err != nil {
		s.logs.LogToFile(err.Error(), "AddressService - GetAddresses")
		return []AddressDto{}
	}
	return toAddressDtos(addresses)
}

// GetAllAddresses returns every address.
func (s *AddressService) GetAllAddresses(ctx context.Context) ([]AddressDto, error) {
	addresses, err := s.addresses.GetAll(ctx)
	if err != nil {
		s.logs.LogToFile(err.Error(), "AddressService - GetAllAddresses")
		return nil, err
	}
	return toAddressDtos(addresses), nil
}

// UpdateAddress rewrites the address identified by addressID. Blank fields
// in updated keep the stored value.
func (s *AddressService) UpdateAddress(ctx context.Context, addressID int, updated UpdatedAddressDto) *AddressDto {
	existing, err := s.addresses.GetOne(ctx, predicate.Eq("address_id", addressID))
	if err != nil || existing == nil {
		if err != nil {
			s.logs.LogToFile(err.Error(), "AddressService - UpdateAddress")
		}
		return nil
	}
	if updated.StreetName != "" {
		existing.StreetName = updated.StreetName
	}
	if updated.StreetNumber != "" {
		existing.StreetNumber = updated.StreetNumber
	}
	if updated.PostalCode != "" {
		existing.PostalCode = updated.PostalCode
	}
	if updated.City != "" {
		existing.City = updated.City
	}
	entity, err := s.addresses.Update(ctx, predicate.Eq("address_id", addressID), existing)
	if err != nil {
		s.logs.LogToFile(err.Error(), "AddressService - UpdateAddress")
		return nil
	}
	return toAddressDto(entity)
}

// DeleteAddress removes the first address matching pred.
func (s *AddressService) DeleteAddress(ctx context.Context, pred predicate.Predicate) bool {
	deleted, err := s.addresses.Delete(ctx, pred)
	if err != nil {
		s.logs.LogToFile(err.Error(), "AddressService - DeleteAddress")
		return false
	}
	return deleted
}
