package handler

import "github.com/labstack/echo/v4"

// The UI contract is intentionally coarse: success carries the data, failure
// carries only a generic message. No error taxonomy crosses this boundary.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func responseSuccess(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, apiResponse{Success: true, Message: message, Data: data})
}

func responseError(c echo.Context, status int, message string) error {
	return c.JSON(status, apiResponse{Success: false, Message: message})
}
