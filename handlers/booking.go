package handlers

import (
	"context"
	"net/http"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/middleware"
	"letsheal/models"
	"letsheal/services/booking"
	"letsheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const forbiddenBooking = "You don't have permission to book appointments. Only customers can book."

// VerificationScheduler queues out-of-band checks for quirk-accepted bookings.
type VerificationScheduler interface {
	Schedule(ctx context.Context, sessionID string, res *booking.SubmitResult) error
}

type BookingHandler struct {
	api       booking.API
	submitter *booking.Submitter
	guard     booking.Guard
	verify    VerificationScheduler
	errs      errorResponder
}

func NewBookingHandler(api booking.API, submitter *booking.Submitter, guard booking.Guard, verify VerificationScheduler, store sessionRepo.Store) *BookingHandler {
	return &BookingHandler{
		api:       api,
		submitter: submitter,
		guard:     guard,
		verify:    verify,
		errs:      errorResponder{sessions: store},
	}
}

func sessionToken(c *gin.Context) string {
	if s := middleware.CurrentSession(c); s.Authenticated() {
		return s.AccessToken
	}
	return ""
}

// Options returns the therapist and the choices for the booking form.
func (h *BookingHandler) Options(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		h.errs.respond(c, booking.ErrMissingTherapist, "")
		return
	}
	opts, err := booking.LoadFormOptions(c.Request.Context(), h.api, sessionToken(c), id)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Submit books an appointment. Only one submission per session and therapist may
// be in flight.
func (h *BookingHandler) Submit(c *gin.Context) {
	var draft models.AppointmentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	sid := middleware.CurrentSessionID(c)
	therapistID := c.Param("id")

	release, err := h.guard.Acquire(ctx, booking.GuardKey(sid, therapistID))
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	defer release()

	res, err := h.submitter.Submit(ctx, draft, middleware.CurrentSession(c), therapistID)
	if err != nil {
		h.errs.respond(c, err, forbiddenBooking)
		return
	}

	if res.Quirk && h.verify != nil {
		if err := h.verify.Schedule(context.WithoutCancel(ctx), sid, res); err != nil {
			utils.GetLogger().Error("Failed to schedule booking verification", zap.Error(err))
		}
	}

	message := "Appointment booked successfully!"
	if res.TherapistName != "" {
		message = "Appointment booked successfully with " + res.TherapistName + "!"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    message,
		"booking":    res.Payload,
		"redirectTo": "/upcoming-appointments",
	})
}
