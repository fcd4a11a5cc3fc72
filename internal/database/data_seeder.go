package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/service"
)

// DataSeeder fills the directory with reference data and sample employees.
// Everything goes through the service layer so the create-if-not-exists
// guards apply and reruns stay idempotent.
type DataSeeder struct {
	employees   *service.EmployeeService
	departments *service.DepartmentService
	positions   *service.PositionService
	skills      *service.SkillService
	salaries    *service.SalaryService
	addresses   *service.AddressService
}

func NewDataSeeder(
	employees *service.EmployeeService,
	departments *service.DepartmentService,
	positions *service.PositionService,
	skills *service.SkillService,
	salaries *service.SalaryService,
	addresses *service.AddressService,
) *DataSeeder {
	return &DataSeeder{
		employees:   employees,
		departments: departments,
		positions:   positions,
		skills:      skills,
		salaries:    salaries,
		addresses:   addresses,
	}
}

var (
	departmentNames = []string{"Finance", "Engineering", "Human Resources", "Sales", "Marketing", "Operations"}
	positionNames   = []string{"Manager", "Developer", "Analyst", "Coordinator", "Director", "Consultant"}
	skillNames      = []string{"Accounting", "Go", "Negotiation", "Recruiting", "SQL", "Presentation"}
	salaryAmounts   = []float64{28000, 32000, 38000, 45000, 52000, 61000}
	firstNames      = []string{"Anna", "Erik", "Maria", "Johan", "Sara", "Lars", "Elin", "Oskar", "Karin", "Nils"}
	lastNames       = []string{"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson", "Larsson", "Olsson", "Persson"}
	streetNames     = []string{"Sveavägen", "Kungsgatan", "Drottninggatan", "Storgatan", "Vasagatan"}
	cities          = []string{"Stockholm", "Göteborg", "Malmö", "Uppsala"}
)

// SeedData creates the reference records and numEmployees sample employees
// with one address and one phone number each.
func (ds *DataSeeder) SeedData(ctx context.Context, numEmployees int) error {
	start := time.Now()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, name := range departmentNames {
		ds.departments.CreateDepartment(ctx, name)
	}
	for _, name := range positionNames {
		ds.positions.CreatePosition(ctx, name)
	}
	for _, name := range skillNames {
		ds.skills.CreateSkill(ctx, name)
	}
	salaryStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	salaryEnd := salaryStart.AddDate(1, 0, 0)
	for _, amount := range salaryAmounts {
		ds.salaries.CreateSalary(ctx, amount, salaryStart, salaryEnd)
	}

	created := 0
	for i := 0; i < numEmployees; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s.%d@staffdesk.se", first, last, i)

		employee := ds.employees.CreateEmployee(ctx, service.CreateEmployeeRequest{
			FirstName:      first,
			LastName:       last,
			Email:          email,
			BirthDate:      time.Date(1960+rng.Intn(40), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
			Gender:         []string{"F", "M"}[rng.Intn(2)],
			DepartmentName: departmentNames[rng.Intn(len(departmentNames))],
			PositionName:   positionNames[rng.Intn(len(positionNames))],
			SkillName:      skillNames[rng.Intn(len(skillNames))],
			SalaryAmount:   salaryAmounts[rng.Intn(len(salaryAmounts))],
		})
		if employee == nil {
			return fmt.Errorf("failed to seed employee %s", email)
		}
		created++

		address := ds.addresses.CreateAddress(ctx,
			streetNames[rng.Intn(len(streetNames))],
			fmt.Sprintf("%d", 1+rng.Intn(120)),
			fmt.Sprintf("%d", 10000+rng.Intn(89999)),
			cities[rng.Intn(len(cities))],
		)
		if address != nil {
			ds.employees.AttachAddress(ctx, employee.ID, address.ID)
		}
		ds.employees.AttachPhoneNumber(ctx, employee.ID, fmt.Sprintf("+4670%07d", rng.Intn(10000000)))
	}

	fmt.Printf("seeded %d employees in %v\n", created, time.Since(start))
	return nil
}

// ClearData removes every employee; link rows cascade with them.
func (ds *DataSeeder) ClearData(ctx context.Context) error {
	for {
		dtos := ds.employees.GetAllEmployees(ctx)
		if len(dtos) == 0 {
			return nil
		}
		for _, dto := range dtos {
			if !ds.employees.DeleteEmployee(ctx, predicate.Eq("employee_id", dto.ID)) {
				return fmt.Errorf("failed to delete employee %d", dto.ID)
			}
		}
	}
}

// Presets for the seeder CLI.
type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
)

// GetPresetConfig returns the employee count for a preset.
func GetPresetConfig(preset SeedPreset) int {
	switch preset {
	case PresetSmall:
		return 20
	case PresetMedium:
		return 200
	case PresetLarge:
		return 2000
	default:
		return 200
	}
}
