package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bizhub/internal/adapter/http/dto/request"
	"bizhub/internal/adapter/http/dto/response"
	"bizhub/internal/usecase"
	"bizhub/internal/usecase/interfaces"
	"bizhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact payload", http.StatusBadRequest)

// ContactHandler handles HTTP requests for contacts.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var payload request.CreateContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	contact, err := h.usecase.Create(c.Request.Context(), usecase.CreateContactInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Mobile:    payload.Mobile,
		JobTitle:  payload.JobTitle,
		Notes:     payload.Notes,
	})
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContact(contact))
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	contacts, err := h.usecase.List(c.Request.Context(), interfaces.ContactFilter{
		Search:  c.Query("search"),
		SortBy:  c.Query("sort_by"),
		SortDir: c.Query("sort_dir"),
		Limit:   limit,
	})
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContacts(contacts))
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var payload request.UpdateContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	contact, err := h.usecase.Update(c.Request.Context(), c.Param("id"), interfaces.ContactPatch{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Mobile:    payload.Mobile,
		JobTitle:  payload.JobTitle,
		Notes:     payload.Notes,
	})
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactID), errors.Is(err, usecase.ErrInvalidContactName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
