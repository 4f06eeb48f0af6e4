package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fanvoyage/internal/adapter/http/dto/request"
	response "fanvoyage/internal/adapter/http/dto/response"
	"fanvoyage/internal/domain/entities"
	"fanvoyage/internal/usecase"
	"fanvoyage/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote generation and management.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GenerateQuote prices a package for a lead and persists the resulting quote.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var payload request.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolveTravelDates()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid travel dates", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	currency, err := payload.ResolveCurrency()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Unsupported currency", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.GenerateQuote(c.Request.Context(), usecase.GenerateQuoteInput{
		LeadID:          payload.LeadID,
		EventID:         payload.EventID,
		PackageID:       payload.PackageID,
		AddOnIDs:        payload.AddOnIDs,
		ItineraryDayIDs: payload.ItineraryDayIDs,
		Travelers:       payload.Travelers,
		TravelStart:     start,
		TravelEnd:       end,
		Notes:           payload.Notes,
		Currency:        currency,
		Actor:           payload.Actor,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteResult(res))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotesByLead returns every quote generated for a lead.
func (h *QuoteHandler) ListQuotesByLead(c *gin.Context) {
	quotes, err := h.usecase.ListByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromQuote(q))
	}
	c.JSON(http.StatusOK, out)
}

func (h *QuoteHandler) MarkViewed(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.MarkViewed)
}

func (h *QuoteHandler) Accept(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Accept)
}

func (h *QuoteHandler) Decline(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Decline)
}

func (h *QuoteHandler) Expire(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Expire)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	q, err := updater(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote overwrites stored quote fields; pricing is never recomputed.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.Travelers != nil {
		q.Travelers = *payload.Travelers
	}
	if payload.FinalPrice != nil {
		q.FinalPrice = *payload.FinalPrice
	}
	if payload.Subtotal != nil {
		q.Subtotal = *payload.Subtotal
	}
	status, ok := payload.ResolveStatus()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown quote status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if status != nil {
		q.Status = *status
	}
	if payload.Notes != nil {
		q.Notes = *payload.Notes
	}
	expiry, err := payload.ResolveExpiry()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid expiry date", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if expiry != nil {
		q.ExpiresAt = *expiry
	}

	updated, err := h.usecase.Update(c.Request.Context(), q)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("quote_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageEventMismatch):
		return pkg.NewDomainErrorSimple("PACKAGE_EVENT_MISMATCH", "Package does not belong to event", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
