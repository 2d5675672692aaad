package handlers

import (
	"errors"
	"net/http"

	"bizhub/internal/adapter/http/dto/request"
	"bizhub/internal/adapter/http/dto/response"
	"bizhub/internal/usecase"
	"bizhub/internal/usecase/interfaces"
	"bizhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFieldValuePayload = pkg.NewDomainErrorSimple("INVALID_FIELD_VALUE_INPUT", "Invalid field value payload", http.StatusBadRequest)

// FieldValueHandler handles HTTP requests for configurable dropdown
// options.

type FieldValueHandler struct {
	usecase usecase.IFieldValueUseCase
}

func NewFieldValueHandler(uc usecase.IFieldValueUseCase) *FieldValueHandler {
	return &FieldValueHandler{usecase: uc}
}

func (h *FieldValueHandler) ListFieldValues(c *gin.Context) {
	values, err := h.usecase.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		appErr := mapFieldValueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFieldValues(values))
}

func (h *FieldValueHandler) CreateFieldValue(c *gin.Context) {
	var payload request.CreateFieldValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldValuePayload.HTTPStatus, errInvalidFieldValuePayload.ToHTTPError())
		return
	}

	value, err := h.usecase.Create(c.Request.Context(), usecase.CreateFieldValueInput{
		FieldType:    c.Param("type"),
		Value:        payload.Value,
		Label:        payload.Label,
		DisplayOrder: payload.DisplayOrder,
		IsActive:     payload.Active(),
	})
	if err != nil {
		appErr := mapFieldValueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFieldValue(value))
}

func (h *FieldValueHandler) UpdateFieldValue(c *gin.Context) {
	var payload request.UpdateFieldValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldValuePayload.HTTPStatus, errInvalidFieldValuePayload.ToHTTPError())
		return
	}

	value, err := h.usecase.Update(c.Request.Context(), c.Param("id"), interfaces.FieldValuePatch{
		Value:        payload.Value,
		Label:        payload.Label,
		DisplayOrder: payload.DisplayOrder,
		IsActive:     payload.IsActive,
	})
	if err != nil {
		appErr := mapFieldValueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFieldValue(value))
}

func (h *FieldValueHandler) DeleteFieldValue(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFieldValueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapFieldValueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFieldType), errors.Is(err, usecase.ErrInvalidFieldValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFieldValueExists):
		return pkg.NewDomainErrorSimple("FIELD_VALUE_EXISTS", "A value with this name already exists for this field", http.StatusConflict)
	case errors.Is(err, usecase.ErrFieldValueNotFound):
		return pkg.NewDomainErrorSimple("FIELD_VALUE_NOT_FOUND", "Field value not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
