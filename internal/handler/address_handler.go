package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/service"
)

type AddressHandler struct {
	svc *service.AddressService
}

func NewAddressHandler(svc *service.AddressService) *AddressHandler {
	return &AddressHandler{svc: svc}
}

func (h *AddressHandler) CreateHandler(c echo.Context) error {
	var req struct {
		StreetName   string `json:"street_name"`
		StreetNumber string `json:"street_number"`
		PostalCode   string `json:"postal_code"`
		City         string `json:"city"`
	}
	if err := c.Bind(&req); err != nil || req.StreetName == "" || req.City == "" {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	address := h.svc.CreateAddress(c.Request().Context(), req.StreetName, req.StreetNumber, req.PostalCode, req.City)
	if address == nil {
		return responseError(c, http.StatusConflict, "Failed to create address")
	}

	return responseSuccess(c, http.StatusCreated, "Address created successfully", address)
}

func (h *AddressHandler) GetHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid address ID")
	}

	address, err := h.svc.GetOneAddress(c.Request().Context(), predicate.Eq("address_id", id))
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Failed to get address")
	}
	if address == nil {
		return responseError(c, http.StatusNotFound, "Address not found")
	}

	return responseSuccess(c, http.StatusOK, "Address retrieved successfully", address)
}

func (h *AddressHandler) ListHandler(c echo.Context) error {
	take, _ := strconv.Atoi(c.QueryParam("take"))
	if city := c.QueryParam("city"); city != "" {
		addresses := h.svc.GetAddresses(c.Request().Context(), predicate.Eq("city", city), take)
		return responseSuccess(c, http.StatusOK, "Addresses listed successfully", addresses)
	}

	addresses, err := h.svc.GetAllAddresses(c.Request().Context())
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Failed to list addresses")
	}
	return responseSuccess(c, http.StatusOK, "Addresses listed successfully", addresses)
}

func (h *AddressHandler) UpdateHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid address ID")
	}

	var req service.UpdatedAddressDto
	if err := c.Bind(&req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body")
	}

	address := h.svc.UpdateAddress(c.Request().Context(), id, req)
	if address == nil {
		return responseError(c, http.StatusNotFound, "Failed to update address")
	}

	return responseSuccess(c, http.StatusOK, "Address updated successfully", address)
}

func (h *AddressHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid address ID")
	}

	if !h.svc.DeleteAddress(c.Request().Context(), predicate.Eq("address_id", id)) {
		return responseError(c, http.StatusNotFound, "Failed to delete address")
	}

	return responseSuccess(c, http.StatusOK, "Address deleted successfully", nil)
}
