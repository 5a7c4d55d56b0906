package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kerem/campushub/internal/app/models/dto"
	"github.com/kerem/campushub/internal/app/services"
	"github.com/kerem/campushub/internal/middleware"
)

// RegistrationController handles event registration endpoints
type RegistrationController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register signs the logged-in student up for an event
// @Summary Register for an event
// @Description Registers the authenticated student for the event if it has free capacity and has not started yet
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 201 {object} dto.APIResponse{data=dto.RegistrationResponse} "Registration created"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered, event full, or event has taken place"
// @Router /events/{id}/registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	studentID, ok := middleware.GetPrincipalID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	registration, err := c.registrationService.Register(ctx.Request.Context(), studentID, eventID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("eventID", eventID).Int64("studentID", studentID).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.RegistrationResponse{
			ID:           registration.ID,
			EventID:      registration.EventID,
			RegisteredAt: registration.RegisteredAt,
		},
	})
}

// Withdraw cancels one of the logged-in student's registrations
// @Summary Withdraw a registration
// @Description Deletes a registration owned by the authenticated student
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration withdrawn"
// @Failure 403 {object} dto.ErrorResponse "Registration belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) Withdraw(ctx *gin.Context) {
	studentID, ok := middleware.GetPrincipalID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	registrationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.registrationService.Withdraw(ctx.Request.Context(), studentID, registrationID); err != nil {
		c.logger.Warn().Err(err).Int64("registrationID", registrationID).Int64("studentID", studentID).Msg("Withdrawal failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Registration withdrawn successfully"},
	})
}

// ListMine returns the logged-in student's registrations
// @Summary List own registrations
// @Description Returns the authenticated student's registrations, newest first
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse} "Registrations"
// @Router /me/registrations [get]
func (c *RegistrationController) ListMine(ctx *gin.Context) {
	studentID, ok := middleware.GetPrincipalID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	registrations, err := c.registrationService.ListForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to list registrations")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: registrations,
	})
}

// ListParticipants returns everyone registered for an event
// @Summary List event participants
// @Description Returns the registrations for an event with student details, oldest first
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ParticipantResponse} "Participants"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/registrations [get]
func (c *RegistrationController) ListParticipants(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	participants, err := c.registrationService.ListForEvent(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: participants,
	})
}
