package handlers

import (
	"errors"
	"net/http"

	request "fanvoyage/internal/adapter/http/dto/request"
	response "fanvoyage/internal/adapter/http/dto/response"
	"fanvoyage/internal/usecase"
	"fanvoyage/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles HTTP requests for lead capture and lifecycle.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), usecase.CreateLeadInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Company:  payload.Company,
		Position: payload.Position,
		Actor:    payload.Actor,
	})
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// UpdateLead applies a partial update; absent fields keep their stored values.
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), c.Param("lead_id"), payload.ToPatch())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// TransitionLeadStatus moves a lead through its lifecycle, recording history.
func (h *LeadHandler) TransitionLeadStatus(c *gin.Context) {
	var payload request.TransitionLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	status, ok := payload.ResolveStatus()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown lead status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	lead, err := h.usecase.TransitionStatus(c.Request.Context(), c.Param("lead_id"), status, payload.Actor, payload.Note)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	var transitionErr *usecase.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", transitionErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
