package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bizhub/internal/adapter/http/dto/request"
	"bizhub/internal/adapter/http/dto/response"
	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase"
	"bizhub/internal/usecase/interfaces"
	"bizhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebsitePayload = pkg.NewDomainErrorSimple("INVALID_WEBSITE_INPUT", "Invalid website payload", http.StatusBadRequest)

// WebsiteHandler handles HTTP requests for websites.

type WebsiteHandler struct {
	usecase usecase.IWebsiteUseCase
}

func NewWebsiteHandler(uc usecase.IWebsiteUseCase) *WebsiteHandler {
	return &WebsiteHandler{usecase: uc}
}

func (h *WebsiteHandler) CreateWebsite(c *gin.Context) {
	var payload request.CreateWebsiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebsitePayload.HTTPStatus, errInvalidWebsitePayload.ToHTTPError())
		return
	}

	site, err := h.usecase.Create(c.Request.Context(), usecase.CreateWebsiteInput{
		Name:           payload.Name,
		Domain:         payload.Domain,
		Status:         entities.WebsiteStatus(payload.Status),
		OrganisationID: payload.OrganisationID,
		Notes:          payload.Notes,
	})
	if err != nil {
		appErr := mapWebsiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWebsite(site))
}

func (h *WebsiteHandler) ListWebsites(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	sites, err := h.usecase.List(c.Request.Context(), interfaces.WebsiteFilter{
		OrganisationID: c.Query("organisation_id"),
		Status:         c.Query("status"),
		SortBy:         c.Query("sort_by"),
		SortDir:        c.Query("sort_dir"),
		Limit:          limit,
	})
	if err != nil {
		appErr := mapWebsiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebsites(sites))
}

func (h *WebsiteHandler) GetWebsite(c *gin.Context) {
	site, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWebsiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebsite(site))
}

func (h *WebsiteHandler) UpdateWebsite(c *gin.Context) {
	var payload request.UpdateWebsiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebsitePayload.HTTPStatus, errInvalidWebsitePayload.ToHTTPError())
		return
	}

	patch := interfaces.WebsitePatch{
		Name:           payload.Name,
		Domain:         payload.Domain,
		OrganisationID: payload.OrganisationID,
		Notes:          payload.Notes,
	}
	if payload.Status != nil {
		status := entities.WebsiteStatus(*payload.Status)
		patch.Status = &status
	}

	site, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapWebsiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWebsite(site))
}

func (h *WebsiteHandler) DeleteWebsite(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWebsiteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapWebsiteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebsiteID),
		errors.Is(err, usecase.ErrInvalidWebsiteDomain),
		errors.Is(err, usecase.ErrInvalidWebsiteStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebsiteNotFound):
		return pkg.NewDomainErrorSimple("WEBSITE_NOT_FOUND", "Website not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrganisationNotFound):
		return pkg.NewDomainErrorSimple("ORGANISATION_NOT_FOUND", "Organisation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
