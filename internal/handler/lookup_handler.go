package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/service"
)

// LookupHandler serves the three reference tables resolved during employee
// creation: positions, skills and salary bands.
type LookupHandler struct {
	positions *service.PositionService
	skills    *service.SkillService
	salaries  *service.SalaryService
}

func NewLookupHandler(positions *service.PositionService, skills *service.SkillService, salaries *service.SalaryService) *LookupHandler {
	return &LookupHandler{positions: positions, skills: skills, salaries: salaries}
}

func (h *LookupHandler) CreatePositionHandler(c echo.Context) error {
	var req struct {
		PositionName string `json:"position_name"`
	}
	if err := c.Bind(&req); err != nil || req.PositionName == "" {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	position := h.positions.CreatePosition(c.Request().Context(), req.PositionName)
	if position == nil {
		return responseError(c, http.StatusConflict, "Failed to create position")
	}

	return responseSuccess(c, http.StatusCreated, "Position created successfully", position)
}

func (h *LookupHandler) ListPositionsHandler(c echo.Context) error {
	return responseSuccess(c, http.StatusOK, "Positions listed successfully",
		h.positions.GetAllPositions(c.Request().Context()))
}

func (h *LookupHandler) DeletePositionHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid position ID")
	}
	if !h.positions.DeletePosition(c.Request().Context(), predicate.Eq("position_id", id)) {
		return responseError(c, http.StatusNotFound, "Failed to delete position")
	}
	return responseSuccess(c, http.StatusOK, "Position deleted successfully", nil)
}

func (h *LookupHandler) CreateSkillHandler(c echo.Context) error {
	var req struct {
		SkillName string `json:"skill_name"`
	}
	if err := c.Bind(&req); err != nil || req.SkillName == "" {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	skill := h.skills.CreateSkill(c.Request().Context(), req.SkillName)
	if skill == nil {
		return responseError(c, http.StatusConflict, "Failed to create skill")
	}

	return responseSuccess(c, http.StatusCreated, "Skill created successfully", skill)
}

func (h *LookupHandler) ListSkillsHandler(c echo.Context) error {
	return responseSuccess(c, http.StatusOK, "Skills listed successfully",
		h.skills.GetAllSkills(c.Request().Context()))
}

func (h *LookupHandler) DeleteSkillHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid skill ID")
	}
	if !h.skills.DeleteSkill(c.Request().Context(), predicate.Eq("skill_id", id)) {
		return responseError(c, http.StatusNotFound, "Failed to delete skill")
	}
	return responseSuccess(c, http.StatusOK, "Skill deleted successfully", nil)
}

func (h *LookupHandler) CreateSalaryHandler(c echo.Context) error {
	var req struct {
		Amount    float64   `json:"amount"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	}
	if err := c.Bind(&req); err != nil || req.Amount == 0 {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	salary := h.salaries.CreateSalary(c.Request().Context(), req.Amount, req.StartDate, req.EndDate)
	if salary == nil {
		return responseError(c, http.StatusConflict, "Failed to create salary")
	}

	return responseSuccess(c, http.StatusCreated, "Salary created successfully", salary)
}

func (h *LookupHandler) ListSalariesHandler(c echo.Context) error {
	return responseSuccess(c, http.StatusOK, "Salaries listed successfully",
		h.salaries.GetAllSalaries(c.Request().Context()))
}

func (h *LookupHandler) DeleteSalaryHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid salary ID")
	}
	if !h.salaries.DeleteSalary(c.Request().Context(), predicate.Eq("salary_id", id)) {
		return responseError(c, http.StatusNotFound, "Failed to delete salary")
	}
	return responseSuccess(c, http.StatusOK, "Salary deleted successfully", nil)
}
