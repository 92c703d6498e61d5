package booking

import (
	"context"

	"letsheal/models"
	"letsheal/services/remote"
)

// API is the slice of the remote client the booking flow needs.
type API interface {
	TherapistProfile(ctx context.Context, token string, therapistID int64) (*models.TherapistProfile, error)
	Hospitals(ctx context.Context, token string) ([]models.Hospital, error)
	BookAppointment(ctx context.Context, token string, therapistID int64, payload models.BookingPayload) (*remote.Response, error)
}

// CancelAPI deletes appointments on the backend.
type CancelAPI interface {
	CancelAppointment(ctx context.Context, token string, appointmentID int64) error
}

// Guard prevents two submissions for the same key from being in flight together.
type Guard interface {
	// Acquire returns ErrDuplicateSubmission when key is already held. The returned
	// release func must be called once the submission settles.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
