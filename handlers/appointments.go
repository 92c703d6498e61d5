package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/middleware"
	"letsheal/models"
	"letsheal/services/booking"
	"letsheal/services/listing"
	"letsheal/services/remote"

	"github.com/gin-gonic/gin"
)

// AppointmentAPI lists and cancels appointments.
type AppointmentAPI interface {
	CustomerAppointments(ctx context.Context, token string, h remote.History) ([]models.Appointment, error)
	TherapistAppointments(ctx context.Context, token string, h remote.History) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, token string, appointmentID int64) error
}

type AppointmentHandler struct {
	api  AppointmentAPI
	now  func() time.Time
	errs errorResponder
}

func NewAppointmentHandler(api AppointmentAPI, store sessionRepo.Store) *AppointmentHandler {
	return &AppointmentHandler{api: api, now: time.Now, errs: errorResponder{sessions: store}}
}

// List returns the caller's appointments, annotated with their cancellation state
// and filtered by the query's list state. ?history=prev selects past appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	state, err := bindListState(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	session := middleware.CurrentSession(c)
	history := remote.ParseHistory(c.Query("history"))

	var appts []models.Appointment
	if session.CurrentRole() == models.RoleTherapist {
		appts, err = h.api.TherapistAppointments(c.Request.Context(), session.AccessToken, history)
	} else {
		appts, err = h.api.CustomerAppointments(c.Request.Context(), session.AccessToken, history)
	}
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}

	views := booking.Annotate(appts, h.now().UTC())
	if session.CurrentRole() != models.RoleCustomer || history == remote.HistoryPrevious {
		for i := range views {
			views[i].CanCancel = false
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": listing.Apply(views, listing.AppointmentSchema, state),
		"total":        len(views),
	})
}

type cancelInput struct {
	CreatedAt string `json:"createdAt" form:"createdAt"`
}

// Cancel deletes a customer's appointment. When the client sends the booking's
// creation time the window is checked before calling the backend.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var in cancelInput
	if err := c.ShouldBindQuery(&in); err != nil {
		badRequest(c, err)
		return
	}
	if in.CreatedAt == "" && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
	}

	var createdAt *time.Time
	if in.CreatedAt != "" {
		t, ok := (models.Appointment{CreatedAt: in.CreatedAt}).CreatedTime()
		if !ok {
			badRequest(c, fmt.Errorf("createdAt %q is not a timestamp", in.CreatedAt))
			return
		}
		createdAt = &t
	}

	err := booking.Cancel(c.Request.Context(), h.api, middleware.CurrentSession(c), c.Param("id"), createdAt, h.now().UTC())
	if err != nil {
		h.errs.respond(c, err, "Only customers can cancel their appointments.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}
