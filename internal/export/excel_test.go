package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/staffdesk/employee_directory/internal/service"
)

func sampleEmployees() []service.EmployeeDto {
	return []service.EmployeeDto{
		{
			ID:             1,
			FirstName:      "Anna",
			LastName:       "Berg",
			Email:          "anna.berg@staffdesk.se",
			BirthDate:      time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
			Gender:         "F",
			DepartmentName: "Finance",
			PositionName:   "Analyst",
			SkillName:      "Accounting",
			Salary:         38000,
			Address:        "Sveavägen 10, 11157 Stockholm",
			PhoneNumbers:   []string{"+46701234567", "+46709876543"},
		},
		{
			ID:        2,
			FirstName: "Erik",
			LastName:  "Nilsson",
			Email:     "erik.nilsson@staffdesk.se",
		},
	}
}

func TestExportWritesHeadersAndRows(t *testing.T) {
	exporter := NewEmployeeExporter(DefaultLayout())

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(sampleEmployees(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Employees", "B1")
	require.NoError(t, err)
	assert.Equal(t, "First name", header)

	firstName, err := f.GetCellValue("Employees", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Anna", firstName)

	department, err := f.GetCellValue("Employees", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Finance", department)

	phones, err := f.GetCellValue("Employees", "L2")
	require.NoError(t, err)
	assert.Equal(t, "+46701234567, +46709876543", phones)

	email, err := f.GetCellValue("Employees", "D3")
	require.NoError(t, err)
	assert.Equal(t, "erik.nilsson@staffdesk.se", email)
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDefaultLayoutNamesEveryColumn(t *testing.T) {
	layout := DefaultLayout()
	assert.Equal(t, "Employees", layout.Sheet)
	require.Len(t, layout.Columns, 12)
	for _, col := range layout.Columns {
		assert.NotEmpty(t, col.Field)
		assert.NotEmpty(t, col.Header)
	}
}
