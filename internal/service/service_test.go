package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/repository"
	"github.com/staffdesk/employee_directory/internal/storage/memory"
)

type testEnv struct {
	stores      *memory.Stores
	employees   *EmployeeService
	departments *DepartmentService
	positions   *PositionService
	skills      *SkillService
	salaries    *SalaryService
	addresses   *AddressService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	stores := memory.NewStores()
	bundle := stores.Stores()
	logs := logger.NewLogsWithWriter(io.Discard)

	departments := NewDepartmentService(repository.NewDepartmentRepository(bundle, logs), logs)
	positions := NewPositionService(repository.NewPositionRepository(bundle, logs), logs)
	skills := NewSkillService(repository.NewSkillRepository(bundle, logs), logs)
	salaries := NewSalaryService(repository.NewSalaryRepository(bundle, logs), logs)
	addresses := NewAddressService(repository.NewAddressRepository(bundle, logs), logs)
	employees := NewEmployeeService(
		repository.NewEmployeeRepository(bundle, logs),
		repository.NewEmployeePhoneNumberRepository(bundle, logs),
		repository.NewEmployeeAddressRepository(bundle, logs),
		departments, positions, skills, salaries, logs,
	)

	return &testEnv{
		stores:      stores,
		employees:   employees,
		departments: departments,
		positions:   positions,
		skills:      skills,
		salaries:    salaries,
		addresses:   addresses,
	}
}

func (env *testEnv) seedLookups(t *testing.T, ctx context.Context) {
	t.Helper()
	require.NotNil(t, env.departments.CreateDepartment(ctx, "Finance"))
	require.NotNil(t, env.positions.CreatePosition(ctx, "Analyst"))
	require.NotNil(t, env.skills.CreateSkill(ctx, "Accounting"))
	require.NotNil(t, env.salaries.CreateSalary(ctx, 38000,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func annaRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FirstName:      "Anna",
		LastName:       "Berg",
		Email:          "anna.berg@staffdesk.se",
		BirthDate:      time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
		Gender:         "F",
		DepartmentName: "Finance",
		PositionName:   "Analyst",
		SkillName:      "Accounting",
		SalaryAmount:   38000,
	}
}

func TestCreateDepartmentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first := env.departments.CreateDepartment(ctx, "Finance")
	require.NotNil(t, first)
	assert.Equal(t, "Finance", first.DepartmentName)

	// The second identical create is a no-op.
	assert.Nil(t, env.departments.CreateDepartment(ctx, "Finance"))
	assert.Len(t, env.departments.GetAllDepartments(ctx), 1)
}

func TestCreateSalaryGuardsOnTheFullTriple(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	require.NotNil(t, env.salaries.CreateSalary(ctx, 38000, start, end))
	assert.Nil(t, env.salaries.CreateSalary(ctx, 38000, start, end))

	// Same amount under a different period is a distinct band.
	assert.NotNil(t, env.salaries.CreateSalary(ctx, 38000, start.AddDate(1, 0, 0), end.AddDate(1, 0, 0)))
	assert.Len(t, env.salaries.GetAllSalaries(ctx), 2)
}

func TestGetDepartmentByName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	department := env.departments.GetOneDepartment(ctx, predicate.Eq("department_name", "Finance"))
	require.NotNil(t, department)
	assert.Equal(t, "Finance", department.DepartmentName)

	assert.Nil(t, env.departments.GetOneDepartment(ctx, predicate.Eq("department_name", "Legal")))
}

func TestCreateEmployeeResolvesLookupsAndFlattens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	employee := env.employees.CreateEmployee(ctx, annaRequest())
	require.NotNil(t, employee)
	assert.NotZero(t, employee.ID)
	assert.Equal(t, "Finance", employee.DepartmentName)
	assert.Equal(t, "Analyst", employee.PositionName)
	assert.Equal(t, "Accounting", employee.SkillName)
	assert.Equal(t, 38000.0, employee.Salary)
}

func TestCreateEmployeeWithUnknownDepartmentPersistsNothing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	req := annaRequest()
	req.DepartmentName = "Legal"

	assert.Nil(t, env.employees.CreateEmployee(ctx, req))
	assert.Empty(t, env.employees.GetAllEmployees(ctx))
}

func TestUpdateAddressKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created := env.addresses.CreateAddress(ctx, "Sveavägen", "10", "11157", "Stockholm")
	require.NotNil(t, created)

	updated := env.addresses.UpdateAddress(ctx, created.ID, UpdatedAddressDto{
		StreetName:   "Kungsportsavenyn",
		StreetNumber: "3",
		PostalCode:   "41136",
		City:         "Göteborg",
	})
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Kungsportsavenyn", updated.StreetName)
	assert.Equal(t, "Göteborg", updated.City)

	all, err := env.addresses.GetAllAddresses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetSkillsRespectsTake(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	for _, name := range []string{"Go", "SQL", "Negotiation"} {
		require.NotNil(t, env.skills.CreateSkill(ctx, name))
	}

	skills := env.skills.GetSkills(ctx, predicate.Like("skill_name", "%"), 2)
	assert.Len(t, skills, 2)

	all := env.skills.GetSkills(ctx, predicate.Predicate{}, -1)
	assert.Len(t, all, 3)

	// A filter narrower than take returns only the matches.
	named := env.skills.GetSkills(ctx, predicate.Eq("skill_name", "Go"), 10)
	require.Len(t, named, 1)
	assert.Equal(t, "Go", named[0].SkillName)
}

func TestDeleteEmployeeCascadesLinks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	employee := env.employees.CreateEmployee(ctx, annaRequest())
	require.NotNil(t, employee)

	address := env.addresses.CreateAddress(ctx, "Sveavägen", "10", "11157", "Stockholm")
	require.NotNil(t, address)
	require.True(t, env.employees.AttachAddress(ctx, employee.ID, address.ID))
	require.True(t, env.employees.AttachPhoneNumber(ctx, employee.ID, "+46701234567"))

	require.True(t, env.employees.DeleteEmployee(ctx, predicate.Eq("employee_id", employee.ID)))

	links, err := env.stores.EmployeeAddresses.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)
	phones, err := env.stores.PhoneNumbers.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, phones)

	// The address itself survives the cascade.
	addresses, err := env.addresses.GetAllAddresses(ctx)
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}

func TestAttachGuardsRejectDuplicates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	employee := env.employees.CreateEmployee(ctx, annaRequest())
	require.NotNil(t, employee)
	address := env.addresses.CreateAddress(ctx, "Sveavägen", "10", "11157", "Stockholm")
	require.NotNil(t, address)

	require.True(t, env.employees.AttachAddress(ctx, employee.ID, address.ID))
	assert.False(t, env.employees.AttachAddress(ctx, employee.ID, address.ID))

	require.True(t, env.employees.AttachPhoneNumber(ctx, employee.ID, "+46701234567"))
	assert.False(t, env.employees.AttachPhoneNumber(ctx, employee.ID, "+46701234567"))
}

func TestGetOneEmployeeFlattensAddressAndPhones(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	created := env.employees.CreateEmployee(ctx, annaRequest())
	require.NotNil(t, created)
	address := env.addresses.CreateAddress(ctx, "Sveavägen", "10", "11157", "Stockholm")
	require.NotNil(t, address)
	require.True(t, env.employees.AttachAddress(ctx, created.ID, address.ID))
	require.True(t, env.employees.AttachPhoneNumber(ctx, created.ID, "+46701234567"))

	employee := env.employees.GetOneEmployee(ctx, predicate.Eq("email", "anna.berg@staffdesk.se"))
	require.NotNil(t, employee)
	assert.Equal(t, "Sveavägen 10, 11157 Stockholm", employee.Address)
	assert.Equal(t, []string{"+46701234567"}, employee.PhoneNumbers)
	assert.Equal(t, "Finance", employee.DepartmentName)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.employees.UpdateEmployee(ctx, predicate.Eq("employee_id", 99), UpdatedEmployeeDto{
		FirstName: "Anna",
	})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateEmployeePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedLookups(t, ctx)

	created := env.employees.CreateEmployee(ctx, annaRequest())
	require.NotNil(t, created)

	updated, err := env.employees.UpdateEmployee(ctx, predicate.Eq("employee_id", created.ID),
		UpdatedEmployeeDto{
			FirstName:    "Anna",
			LastName:     "Lindqvist",
			Email:        "anna.berg@staffdesk.se",
			BirthDate:    time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
			Gender:       "F",
			DepartmentID: created.DepartmentID,
			PositionID:   created.PositionID,
			SalaryID:     created.SalaryID,
			SkillID:      created.SkillID,
		})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Lindqvist", updated.LastName)
}
