// Package export renders employee lists to .xlsx workbooks. The column
// layout is data, not code: a YAML document names the sheet and the columns
// in order, so deployments can reshape the export without a rebuild.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/staffdesk/employee_directory/internal/service"
)

// Layout describes one export sheet.
type Layout struct {
	Sheet   string   `yaml:"sheet"`
	Columns []Column `yaml:"columns"`
}

// Column maps an employee DTO field to a spreadsheet column.
type Column struct {
	Field  string  `yaml:"field"`
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

const defaultLayoutYAML = `
sheet: Employees
columns:
  - {field: id, header: ID, width: 8}
  - {field: first_name, header: First name, width: 16}
  - {field: last_name, header: Last name, width: 16}
  - {field: email, header: Email, width: 28}
  - {field: birth_date, header: Birth date, width: 14}
  - {field: gender, header: Gender, width: 10}
  - {field: department_name, header: Department, width: 18}
  - {field: position_name, header: Position, width: 18}
  - {field: skill_name, header: Skill, width: 16}
  - {field: salary, header: Salary, width: 12}
  - {field: address, header: Address, width: 30}
  - {field: phone_numbers, header: Phone numbers, width: 22}
`

// DefaultLayout returns the built-in employee layout.
func DefaultLayout() Layout {
	var layout Layout
	// The embedded document is a constant; a decode failure is a programming
	// error.
	if err := yaml.Unmarshal([]byte(defaultLayoutYAML), &layout); err != nil {
		panic(err)
	}
	return layout
}

// LoadLayout reads a layout from a YAML file.
func LoadLayout(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open layout file: %w", err)
	}
	defer f.Close()

	var layout Layout
	if err := yaml.NewDecoder(f).Decode(&layout); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if layout.Sheet == "" || len(layout.Columns) == 0 {
		return Layout{}, fmt.Errorf("layout %s names no sheet or columns", path)
	}
	return layout, nil
}

// EmployeeExporter renders employee DTO lists with a fixed layout.
type EmployeeExporter struct {
	layout Layout
}

// NewEmployeeExporter creates an exporter over layout.
func NewEmployeeExporter(layout Layout) *EmployeeExporter {
	return &EmployeeExporter{layout: layout}
}

// Export writes the employees as one worksheet to w.
func (e *EmployeeExporter) Export(employees []service.EmployeeDto, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := e.layout.Sheet
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, col := range e.layout.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("resolve column name: %w", err)
		}
		cell := name + "1"
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
		if col.Width > 0 {
			if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
				return fmt.Errorf("set column width: %w", err)
			}
		}
	}

	for row, employee := range employees {
		for i, col := range e.layout.Columns {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return fmt.Errorf("resolve column name: %w", err)
			}
			cell := fmt.Sprintf("%s%d", name, row+2)
			if err := f.SetCellValue(sheet, cell, fieldValue(&employee, col.Field)); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func fieldValue(e *service.EmployeeDto, field string) any {
	switch field {
	case "id":
		return e.ID
	case "first_name":
		return e.FirstName
	case "last_name":
		return e.LastName
	case "email":
		return e.Email
	case "birth_date":
		return e.BirthDate.Format("2006-01-02")
	case "gender":
		return e.Gender
	case "department_name":
		return e.DepartmentName
	case "position_name":
		return e.PositionName
	case "skill_name":
		return e.SkillName
	case "salary":
		return e.Salary
	case "address":
		return e.Address
	case "phone_numbers":
		return strings.Join(e.PhoneNumbers, ", ")
	default:
		return ""
	}
}
