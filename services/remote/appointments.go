package remote

import (
	"context"
	"net/http"

	"letsheal/models"
)

// History selects the upcoming or past appointment list.
type History string

const (
	HistoryCurrent  History = "current"
	HistoryPrevious History = "prev"
)

// ParseHistory maps a query value onto a History; anything but "previous"/"prev"
// is the current list.
func ParseHistory(s string) History {
	switch s {
	case "prev", "previous", "past":
		return HistoryPrevious
	default:
		return HistoryCurrent
	}
}

// TherapistProfile fetches the public therapist profile.
func (c *Client) TherapistProfile(ctx context.Context, token string, therapistID int64) (*models.TherapistProfile, error) {
	var out models.TherapistProfile
	if err := c.call(ctx, http.MethodGet, apiPath("view_therapist_profile/%d", therapistID), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Hospitals fetches the full hospital list.
func (c *Client) Hospitals(ctx context.Context, token string) ([]models.Hospital, error) {
	return listOf[models.Hospital](ctx, c, apiPath("view_hospital_list"), token)
}

// BookAppointment posts a booking and returns the raw answer. The caller decides
// what counts as success.
func (c *Client) BookAppointment(ctx context.Context, token string, therapistID int64, payload models.BookingPayload) (*Response, error) {
	return c.Do(ctx, http.MethodPost, apiPath("book_appointment/%d", therapistID), token, payload)
}

// CustomerAppointments lists the logged-in customer's appointments.
func (c *Client) CustomerAppointments(ctx context.Context, token string, h History) ([]models.Appointment, error) {
	return listOf[models.Appointment](ctx, c, apiPath("customer_appointment_%s_history", h), token)
}

// TherapistAppointments lists the logged-in therapist's appointments.
func (c *Client) TherapistAppointments(ctx context.Context, token string, h History) ([]models.Appointment, error) {
	return listOf[models.Appointment](ctx, c, apiPath("therapist_appointment_%s_history", h), token)
}

// CancelAppointment deletes an appointment. The backend is the authority on the
// cancellation window; its refusal comes back as a *ServerError.
func (c *Client) CancelAppointment(ctx context.Context, token string, appointmentID int64) error {
	return c.call(ctx, http.MethodDelete, apiPath("cancel_appointment/%d", appointmentID), token, nil, nil)
}
