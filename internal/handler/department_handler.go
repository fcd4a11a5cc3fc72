package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/service"
)

type DepartmentHandler struct {
	svc *service.DepartmentService
}

func NewDepartmentHandler(svc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

func (h *DepartmentHandler) CreateHandler(c echo.Context) error {
	var req struct {
		DepartmentName string `json:"department_name"`
	}
	if err := c.Bind(&req); err != nil || req.DepartmentName == "" {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	department := h.svc.CreateDepartment(c.Request().Context(), req.DepartmentName)
	if department == nil {
		return responseError(c, http.StatusConflict, "Failed to create department")
	}

	return responseSuccess(c, http.StatusCreated, "Department created successfully", department)
}

func (h *DepartmentHandler) GetHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid department ID")
	}

	department := h.svc.GetOneDepartment(c.Request().Context(), predicate.Eq("department_id", id))
	if department == nil {
		return responseError(c, http.StatusNotFound, "Department not found")
	}

	return responseSuccess(c, http.StatusOK, "Department retrieved successfully", department)
}

func (h *DepartmentHandler) ListHandler(c echo.Context) error {
	take, _ := strconv.Atoi(c.QueryParam("take"))
	if name := c.QueryParam("name"); name != "" {
		departments := h.svc.GetDepartments(c.Request().Context(), predicate.Eq("department_name", name), take)
		return responseSuccess(c, http.StatusOK, "Departments listed successfully", departments)
	}
	return responseSuccess(c, http.StatusOK, "Departments listed successfully",
		h.svc.GetAllDepartments(c.Request().Context()))
}

func (h *DepartmentHandler) UpdateHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid department ID")
	}

	var req service.UpdatedDepartmentDto
	if err := c.Bind(&req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.ID = id

	department := h.svc.UpdateDepartment(c.Request().Context(), req)
	if department == nil {
		return responseError(c, http.StatusNotFound, "Failed to update department")
	}

	return responseSuccess(c, http.StatusOK, "Department updated successfully", department)
}

func (h *DepartmentHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid department ID")
	}

	if !h.svc.DeleteDepartment(c.Request().Context(), predicate.Eq("department_id", id)) {
		return responseError(c, http.StatusNotFound, "Failed to delete department")
	}

	return responseSuccess(c, http.StatusOK, "Department deleted successfully", nil)
}
