package repository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage/memory"
)

// seedDirectory stores one fully linked employee and returns it.
func seedDirectory(t *testing.T, ctx context.Context, stores *memory.Stores) *domain.EmployeeEntity {
	t.Helper()

	department := &domain.DepartmentEntity{DepartmentName: "Finance"}
	require.NoError(t, stores.Departments.Insert(ctx, department))
	position := &domain.PositionEntity{PositionName: "Analyst"}
	require.NoError(t, stores.Positions.Insert(ctx, position))
	skill := &domain.SkillEntity{SkillName: "Accounting"}
	require.NoError(t, stores.Skills.Insert(ctx, skill))
	salary := &domain.SalaryEntity{
		Amount:    38000,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, stores.Salaries.Insert(ctx, salary))

	employee := &domain.EmployeeEntity{
		FirstName:    "Anna",
		LastName:     "Berg",
		Email:        "anna.berg@staffdesk.se",
		BirthDate:    time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
		Gender:       "F",
		DepartmentID: department.DepartmentID,
		PositionID:   position.PositionID,
		SalaryID:     salary.SalaryID,
		SkillID:      skill.SkillID,
	}
	require.NoError(t, stores.Employees.Insert(ctx, employee))

	address := &domain.AddressEntity{
		StreetName: "Sveavägen", StreetNumber: "10", PostalCode: "11157", City: "Stockholm",
	}
	require.NoError(t, stores.Addresses.Insert(ctx, address))
	require.NoError(t, stores.EmployeeAddresses.Insert(ctx, &domain.EmployeeAddressEntity{
		EmployeeID: employee.EmployeeID, AddressID: address.AddressID,
	}))
	require.NoError(t, stores.PhoneNumbers.Insert(ctx, &domain.EmployeePhoneNumberEntity{
		PhoneNumber: "+46701234567", EmployeeID: employee.EmployeeID,
	}))

	return employee
}

func TestEmployeeGetOneAttachesRelatedRecords(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	seeded := seedDirectory(t, ctx, stores)
	repo := NewEmployeeRepository(stores.Stores(), logger.NewLogsWithWriter(io.Discard))

	employee, err := repo.GetOne(ctx, predicate.Eq("email", "anna.berg@staffdesk.se"))
	require.NoError(t, err)
	require.NotNil(t, employee)

	assert.Equal(t, seeded.EmployeeID, employee.EmployeeID)
	require.NotNil(t, employee.Department)
	assert.Equal(t, "Finance", employee.Department.DepartmentName)
	require.NotNil(t, employee.Position)
	assert.Equal(t, "Analyst", employee.Position.PositionName)
	require.NotNil(t, employee.Skill)
	assert.Equal(t, "Accounting", employee.Skill.SkillName)
	require.NotNil(t, employee.Salary)
	assert.Equal(t, 38000.0, employee.Salary.Amount)

	require.Len(t, employee.PhoneNumbers, 1)
	assert.Equal(t, "+46701234567", employee.PhoneNumbers[0].PhoneNumber)
	require.Len(t, employee.Addresses, 1)
	require.NotNil(t, employee.Addresses[0].Address)
	assert.Equal(t, "Sveavägen", employee.Addresses[0].Address.StreetName)
}

func TestEmployeeGetAllSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	seedDirectory(t, ctx, stores)
	repo := NewEmployeeRepository(stores.Stores(), logger.NewLogsWithWriter(io.Discard))

	stores.Employees.Fail(errors.New("connection reset"))
	assert.Empty(t, repo.GetAll(ctx))
	assert.Empty(t, repo.Get(ctx, predicate.Predicate{}, -1))
}

func TestEmployeeUpdateKeepsKeyAndWritesFields(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	seeded := seedDirectory(t, ctx, stores)
	repo := NewEmployeeRepository(stores.Stores(), logger.NewLogsWithWriter(io.Discard))

	updated, err := repo.Update(ctx, predicate.Eq("employee_id", seeded.EmployeeID),
		&domain.EmployeeEntity{
			FirstName:    "Anna",
			LastName:     "Lindqvist",
			Email:        seeded.Email,
			BirthDate:    seeded.BirthDate,
			Gender:       seeded.Gender,
			DepartmentID: seeded.DepartmentID,
			PositionID:   seeded.PositionID,
			SalaryID:     seeded.SalaryID,
			SkillID:      seeded.SkillID,
		})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, seeded.EmployeeID, updated.EmployeeID)
	assert.Equal(t, "Lindqvist", updated.LastName)
}

func TestAddressRepositoryPropagatesReadFailures(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	seedDirectory(t, ctx, stores)
	repo := NewAddressRepository(stores.Stores(), logger.NewLogsWithWriter(io.Discard))

	boom := errors.New("connection reset")
	stores.Addresses.Fail(boom)

	_, err := repo.GetAll(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = repo.GetOne(ctx, predicate.Eq("city", "Stockholm"))
	assert.ErrorIs(t, err, boom)
}

func TestAddressEagerLoadingStitchesLinksAndEmployees(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	seeded := seedDirectory(t, ctx, stores)
	repo := NewAddressRepository(stores.Stores(), logger.NewLogsWithWriter(io.Discard))

	addresses, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	require.Len(t, addresses[0].EmployeeAddresses, 1)
	require.NotNil(t, addresses[0].EmployeeAddresses[0].Employee)
	assert.Equal(t, seeded.EmployeeID, addresses[0].EmployeeAddresses[0].Employee.EmployeeID)
}

func TestDepartmentSwallowsIntoEmptySlice(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	repo := NewDepartmentRepository(stores.Stores(), logger.NewLogsWithWriter(io.Discard))

	stores.Departments.Fail(errors.New("connection reset"))

	departments := repo.GetAll(ctx)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)
}
