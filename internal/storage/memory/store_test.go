package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/predicate"
)

func TestInsertAssignsIncrementingKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.SkillEntity, *domain.SkillEntity]()

	first := &domain.SkillEntity{SkillName: "Go"}
	second := &domain.SkillEntity{SkillName: "SQL"}
	require.NoError(t, store.Insert(ctx, first))
	require.NoError(t, store.Insert(ctx, second))

	assert.Equal(t, 1, first.SkillID)
	assert.Equal(t, 2, second.SkillID)
}

func TestInsertKeepsExplicitKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.SkillEntity, *domain.SkillEntity]()

	require.NoError(t, store.Insert(ctx, &domain.SkillEntity{SkillID: 10, SkillName: "Go"}))
	next := &domain.SkillEntity{SkillName: "SQL"}
	require.NoError(t, store.Insert(ctx, next))

	assert.Equal(t, 11, next.SkillID)
}

func TestFindScansInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.SkillEntity, *domain.SkillEntity]()
	for _, name := range []string{"Go", "SQL", "Negotiation"} {
		require.NoError(t, store.Insert(ctx, &domain.SkillEntity{SkillName: name}))
	}

	all, err := store.Find(ctx, predicate.Predicate{}, -1)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Go", all[0].SkillName)
	assert.Equal(t, "Negotiation", all[2].SkillName)

	limited, err := store.Find(ctx, predicate.Predicate{}, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestFirstReturnsNilWhenNothingMatches(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.SkillEntity, *domain.SkillEntity]()
	require.NoError(t, store.Insert(ctx, &domain.SkillEntity{SkillName: "Go"}))

	record, err := store.First(ctx, predicate.Eq("skill_name", "Rust"))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestUpdateUnknownKeyFails(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.SkillEntity, *domain.SkillEntity]()

	err := store.Update(ctx, &domain.SkillEntity{SkillID: 99, SkillName: "Go"})
	assert.ErrorIs(t, err, errNotFound)
}

func TestFailMakesOperationsReturnTheError(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.SkillEntity, *domain.SkillEntity]()
	boom := errors.New("connection reset")
	store.Fail(boom)

	_, err := store.All(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, store.Insert(ctx, &domain.SkillEntity{SkillName: "Go"}), boom)

	store.Fail(nil)
	assert.NoError(t, store.Insert(ctx, &domain.SkillEntity{SkillName: "Go"}))
}

func TestDeleteCascadesThroughHooks(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()

	employee := &domain.EmployeeEntity{FirstName: "Anna", LastName: "Berg", Email: "anna@staffdesk.se"}
	require.NoError(t, stores.Employees.Insert(ctx, employee))
	address := &domain.AddressEntity{StreetName: "Sveavägen", City: "Stockholm"}
	require.NoError(t, stores.Addresses.Insert(ctx, address))
	require.NoError(t, stores.PhoneNumbers.Insert(ctx, &domain.EmployeePhoneNumberEntity{
		PhoneNumber: "+46701234567", EmployeeID: employee.EmployeeID,
	}))
	require.NoError(t, stores.EmployeeAddresses.Insert(ctx, &domain.EmployeeAddressEntity{
		EmployeeID: employee.EmployeeID, AddressID: address.AddressID,
	}))

	require.NoError(t, stores.Employees.Delete(ctx, employee))

	phones, err := stores.PhoneNumbers.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, phones)

	links, err := stores.EmployeeAddresses.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	// The address itself stays.
	addresses, err := stores.Addresses.All(ctx)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}
