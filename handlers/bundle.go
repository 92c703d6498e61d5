package handlers

import (
	sessionRepo "letsheal/database/repository/session"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions sessionRepo.Store
	Handles  HandleResolver
	Cookie   CookieConfig

	Auth         *AuthHandler
	Booking      *BookingHandler
	Appointments *AppointmentHandler
	Admin        *AdminHandler
	Blog         *BlogHandler
	Therapists   *TherapistHandler

	MaxRequestsPerMin int
}

// HandleResolver maps a session handle to a session id.
type HandleResolver interface {
	SessionID(handle string) (string, error)
}
