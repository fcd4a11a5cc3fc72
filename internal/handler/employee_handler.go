package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee_directory/internal/export"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/service"
)

type EmployeeHandler struct {
	svc      *service.EmployeeService
	exporter *export.EmployeeExporter
}

func NewEmployeeHandler(svc *service.EmployeeService, exporter *export.EmployeeExporter) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, exporter: exporter}
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req service.CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	employee := h.svc.CreateEmployee(c.Request().Context(), req)
	if employee == nil {
		return responseError(c, http.StatusConflict, "Failed to create employee")
	}

	return responseSuccess(c, http.StatusCreated, "Employee created successfully", employee)
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	employee := h.svc.GetOneEmployee(c.Request().Context(), predicate.Eq("employee_id", id))
	if employee == nil {
		return responseError(c, http.StatusNotFound, "Employee not found")
	}

	return responseSuccess(c, http.StatusOK, "Employee retrieved successfully", employee)
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	take, _ := strconv.Atoi(c.QueryParam("take"))

	var parts []predicate.Predicate
	if email := c.QueryParam("email"); email != "" {
		parts = append(parts, predicate.Eq("email", email))
	}
	if dept := c.QueryParam("department_id"); dept != "" {
		id, err := strconv.Atoi(dept)
		if err != nil {
			return responseError(c, http.StatusBadRequest, "Invalid department ID")
		}
		parts = append(parts, predicate.Eq("department_id", id))
	}
	if skill := c.QueryParam("skill_id"); skill != "" {
		id, err := strconv.Atoi(skill)
		if err != nil {
			return responseError(c, http.StatusBadRequest, "Invalid skill ID")
		}
		parts = append(parts, predicate.Eq("skill_id", id))
	}

	employees := h.svc.GetEmployees(c.Request().Context(), predicate.And(parts...), take)
	return responseSuccess(c, http.StatusOK, "Employees listed successfully", employees)
}

func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	var req service.UpdatedEmployeeDto
	if err := c.Bind(&req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	employee, err := h.svc.UpdateEmployee(c.Request().Context(), predicate.Eq("employee_id", id), req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return responseError(c, http.StatusNotFound, "Employee not found")
		}
		return responseError(c, http.StatusInternalServerError, "Failed to update employee")
	}

	return responseSuccess(c, http.StatusOK, "Employee updated successfully", employee)
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	if !h.svc.DeleteEmployee(c.Request().Context(), predicate.Eq("employee_id", id)) {
		return responseError(c, http.StatusNotFound, "Failed to delete employee")
	}

	return responseSuccess(c, http.StatusOK, "Employee deleted successfully", nil)
}

func (h *EmployeeHandler) AttachPhoneNumberHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	var req struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.Bind(&req); err != nil || req.PhoneNumber == "" {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	if !h.svc.AttachPhoneNumber(c.Request().Context(), id, req.PhoneNumber) {
		return responseError(c, http.StatusConflict, "Failed to attach phone number")
	}

	return responseSuccess(c, http.StatusCreated, "Phone number attached successfully", nil)
}

func (h *EmployeeHandler) AttachAddressHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	var req struct {
		AddressID int `json:"address_id"`
	}
	if err := c.Bind(&req); err != nil || req.AddressID == 0 {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	if !h.svc.AttachAddress(c.Request().Context(), id, req.AddressID) {
		return responseError(c, http.StatusConflict, "Failed to attach address")
	}

	return responseSuccess(c, http.StatusCreated, "Address attached successfully", nil)
}

func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	employees := h.svc.GetAllEmployees(c.Request().Context())

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employees.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)

	return h.exporter.Export(employees, c.Response())
}
