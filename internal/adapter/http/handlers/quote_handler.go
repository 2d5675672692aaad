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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	issue, expiry, err := payload.ParseDates()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	items := make([]entities.QuoteItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, entities.QuoteItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	quote, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuoteInput{
		Subject:        payload.Subject,
		OrganisationID: payload.OrganisationID,
		ContactID:      payload.ContactID,
		LeadID:         payload.LeadID,
		LeadName:       payload.LeadName,
		ProjectID:      payload.ProjectID,
		ProjectName:    payload.ProjectName,
		IssueDate:      issue,
		ExpiryDate:     expiry,
		Status:         entities.QuoteStatus(payload.Status),
		Items:          items,
		Notes:          payload.Notes,
		HTML:           payload.HTML,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	quotes, err := h.usecase.List(c.Request.Context(), interfaces.QuoteFilter{
		Status:         c.Query("status"),
		OrganisationID: c.Query("organisation_id"),
		SortBy:         c.Query("sort_by"),
		SortDir:        c.Query("sort_dir"),
		Limit:          limit,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	issue, err := payload.ParseIssueDate()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	expiry, err := payload.ParseExpiryDate()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in := usecase.UpdateQuoteInput{
		Subject:    payload.Subject,
		IssueDate:  issue,
		ExpiryDate: expiry,
		Notes:      payload.Notes,
		HTML:       payload.HTML,
	}
	if payload.Status != nil {
		status := entities.QuoteStatus(*payload.Status)
		in.Status = &status
	}
	if payload.Items != nil {
		items := make([]entities.QuoteItem, 0, len(*payload.Items))
		for _, it := range *payload.Items {
			items = append(items, entities.QuoteItem{
				ID:          it.ID,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		in.Items = &items
	}

	quote, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	quote, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) LinkOrganisation(c *gin.Context) {
	h.link(c, interfaces.QuoteLinkOrganisation)
}

func (h *QuoteHandler) LinkContact(c *gin.Context) {
	h.link(c, interfaces.QuoteLinkContact)
}

func (h *QuoteHandler) LinkLead(c *gin.Context) {
	h.link(c, interfaces.QuoteLinkLead)
}

func (h *QuoteHandler) LinkProject(c *gin.Context) {
	h.link(c, interfaces.QuoteLinkProject)
}

func (h *QuoteHandler) link(c *gin.Context, field interfaces.QuoteLinkField) {
	var payload request.QuoteLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Link(c.Request.Context(), c.Param("id"), field, payload.ID, payload.Name)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuoteSubject),
		errors.Is(err, usecase.ErrInvalidQuoteItems),
		errors.Is(err, usecase.ErrInvalidQuoteStatus),
		errors.Is(err, usecase.ErrInvalidQuoteDates),
		errors.Is(err, usecase.ErrInvalidQuoteLink):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteLinkNotFound):
		return pkg.NewDomainErrorSimple("LINK_TARGET_NOT_FOUND", "Link target not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
