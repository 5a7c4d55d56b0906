package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kerem/campushub/internal/app/models/dto"
	"github.com/kerem/campushub/internal/app/services"
	"github.com/kerem/campushub/internal/middleware"
	"github.com/kerem/campushub/internal/pkg/helpers"
)

// EventController handles event management endpoints
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateEvent creates a new event
// @Summary Create an event
// @Description Creates an event owned by the authenticated admin
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	adminID, ok := middleware.GetPrincipalID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), adminID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("adminID", adminID).Msg("Event creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", event.ID).Int64("adminID", adminID).Msg("Event created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: event,
	})
}

// UpdateEvent updates an existing event
// @Summary Update an event
// @Description Updates an event. Only the admin who created the event may update it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event data"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Event belongs to another admin"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	adminID, ok := middleware.GetPrincipalID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), adminID, eventID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("eventID", eventID).Int64("adminID", adminID).Msg("Event update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: event,
	})
}

// DeleteEvent deletes an event and its registrations
// @Summary Delete an event
// @Description Deletes an event. Only the admin who created the event may delete it. Registrations for the event are removed as well.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 403 {object} dto.ErrorResponse "Event belongs to another admin"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	adminID, ok := middleware.GetPrincipalID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), adminID, eventID); err != nil {
		c.logger.Warn().Err(err).Int64("eventID", eventID).Int64("adminID", adminID).Msg("Event deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", eventID).Int64("adminID", adminID).Msg("Event deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Event deleted successfully"},
	})
}

// GetEvent returns a single event
// @Summary Get an event
// @Description Returns an event with its current registration count
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: event,
	})
}

// ListEvents returns events matching the query filters
// @Summary List events
// @Description Returns a paged list of events, optionally filtered by department or limited to upcoming ones
// @Tags events
// @Produce json
// @Param department query string false "Filter by department"
// @Param upcoming query bool false "Only events that have not started yet"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Events"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	page, size := helpers.GetPaginationParams(ctx)

	filter := dto.EventFilter{
		Department:   ctx.Query("department"),
		UpcomingOnly: ctx.Query("upcoming") == "true",
		Page:         page,
		Size:         size,
	}

	events, total, err := c.eventService.List(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list events")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      events,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
	})
}
