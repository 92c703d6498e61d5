package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"letsheal/models"
)

// CancellationWindow is how long after booking a customer may self-cancel.
const CancellationWindow = 5 * time.Hour

// CanCancel reports whether an appointment created at createdAt may still be
// cancelled at now. Both times must be in the same zone.
func CanCancel(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= CancellationWindow
}

// HoursRemaining is the time left in the cancellation window, in hours. It is never
// negative and never more than the window itself.
func HoursRemaining(createdAt, now time.Time) float64 {
	left := CancellationWindow - now.Sub(createdAt)
	switch {
	case left < 0:
		return 0
	case left > CancellationWindow:
		return CancellationWindow.Hours()
	}
	return left.Hours()
}

// Annotate marks each appointment with its cancellation state. Appointments whose
// creation time is unknown are not cancellable.
func Annotate(appts []models.Appointment, now time.Time) []models.AppointmentView {
	out := make([]models.AppointmentView, 0, len(appts))
	for _, a := range appts {
		view := models.AppointmentView{Appointment: a}
		if created, ok := a.CreatedTime(); ok {
			view.CanCancel = CanCancel(created, now)
			view.HoursRemaining = math.Round(HoursRemaining(created, now)*10) / 10
		}
		out = append(out, view)
	}
	return out
}

// Cancel deletes an appointment on behalf of a customer. When createdAt is known the
// window is checked first and a closed window is refused without calling the
// backend; the backend still has the final word.
func Cancel(ctx context.Context, api CancelAPI, session *models.Session, appointmentID string, createdAt *time.Time, now time.Time) error {
	if !session.Authenticated() {
		return ErrUnauthenticated
	}
	id, err := models.ParseID(appointmentID)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"appointmentId": err.Error()}}
	}
	if createdAt != nil && !CanCancel(*createdAt, now) {
		return ErrCancellationClosed
	}
	if err := api.CancelAppointment(ctx, session.AccessToken, id); err != nil {
		if ctx.Err() != nil {
			return ErrAbandoned
		}
		return fmt.Errorf("cancel appointment %d: %w", id, err)
	}
	if ctx.Err() != nil {
		return ErrAbandoned
	}
	return nil
}
