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

var errInvalidOrganisationPayload = pkg.NewDomainErrorSimple("INVALID_ORGANISATION_INPUT", "Invalid organisation payload", http.StatusBadRequest)

// OrganisationHandler handles HTTP requests for organisations and their
// contact relationships.

type OrganisationHandler struct {
	usecase usecase.IOrganisationUseCase
}

func NewOrganisationHandler(uc usecase.IOrganisationUseCase) *OrganisationHandler {
	return &OrganisationHandler{usecase: uc}
}

func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	var payload request.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrganisationPayload.HTTPStatus, errInvalidOrganisationPayload.ToHTTPError())
		return
	}

	org, err := h.usecase.Create(c.Request.Context(), usecase.CreateOrganisationInput{
		Name:     payload.Name,
		Industry: payload.Industry,
		Website:  payload.Website,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
		City:     payload.City,
		Country:  payload.Country,
		Notes:    payload.Notes,
	})
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrganisation(org))
}

func (h *OrganisationHandler) ListOrganisations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	orgs, err := h.usecase.List(c.Request.Context(), interfaces.OrganisationFilter{
		Search:   c.Query("search"),
		Industry: c.Query("industry"),
		SortBy:   c.Query("sort_by"),
		SortDir:  c.Query("sort_dir"),
		Limit:    limit,
	})
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganisations(orgs))
}

func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	org, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganisation(org))
}

func (h *OrganisationHandler) UpdateOrganisation(c *gin.Context) {
	var payload request.UpdateOrganisationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrganisationPayload.HTTPStatus, errInvalidOrganisationPayload.ToHTTPError())
		return
	}

	org, err := h.usecase.Update(c.Request.Context(), c.Param("id"), interfaces.OrganisationPatch{
		Name:     payload.Name,
		Industry: payload.Industry,
		Website:  payload.Website,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Address:  payload.Address,
		City:     payload.City,
		Country:  payload.Country,
		Notes:    payload.Notes,
	})
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganisation(org))
}

func (h *OrganisationHandler) DeleteOrganisation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganisationHandler) ListOrganisationContacts(c *gin.Context) {
	rels, err := h.usecase.ListContacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganisationContacts(rels))
}

func (h *OrganisationHandler) LinkContact(c *gin.Context) {
	var payload request.LinkOrganisationContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrganisationPayload.HTTPStatus, errInvalidOrganisationPayload.ToHTTPError())
		return
	}

	rel, err := h.usecase.LinkContact(c.Request.Context(), c.Param("id"), usecase.LinkContactInput{
		ContactID: payload.ContactID,
		Role:      payload.Role,
		IsPrimary: payload.IsPrimary,
		Priority:  payload.Priority,
	})
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrganisationContact(rel))
}

func (h *OrganisationHandler) UpdateOrganisationContact(c *gin.Context) {
	var payload request.UpdateOrganisationContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrganisationPayload.HTTPStatus, errInvalidOrganisationPayload.ToHTTPError())
		return
	}

	rel, err := h.usecase.UpdateLink(c.Request.Context(), c.Param("id"), interfaces.OrganisationContactPatch{
		Role:      payload.Role,
		IsPrimary: payload.IsPrimary,
		Priority:  payload.Priority,
	})
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganisationContact(rel))
}

func (h *OrganisationHandler) UnlinkContact(c *gin.Context) {
	if err := h.usecase.UnlinkContact(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganisationHandler) SetPrimaryContact(c *gin.Context) {
	rel, err := h.usecase.SetPrimary(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrganisationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganisationContact(rel))
}

func mapOrganisationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrganisationID),
		errors.Is(err, usecase.ErrInvalidOrganisationName),
		errors.Is(err, usecase.ErrInvalidRelationshipID),
		errors.Is(err, usecase.ErrInvalidContactID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrganisationNotFound):
		return pkg.NewDomainErrorSimple("ORGANISATION_NOT_FOUND", "Organisation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrganisationContactNotFound):
		return pkg.NewDomainErrorSimple("RELATIONSHIP_NOT_FOUND", "Organisation contact not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
