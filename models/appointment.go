package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Booking form choices.
var (
	GenderChoices          = []string{"male", "female", "other"}
	ConsultancyTypeChoices = []string{"offline", "online"}
	AppointmentTypeChoices = []string{"new patient", "follow up"}
)

// AppointmentDraft is the in-progress booking form. It lives for one booking attempt.
type AppointmentDraft struct {
	PatientName     string     `json:"patientName"`
	Gender          string     `json:"gender"`
	Age             FlexString `json:"age"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	ConsultancyType string     `json:"consultancyType"`
	AppointmentType string     `json:"appointmentType"`
	HospitalID      FlexString `json:"hospitalId"`
}

// BookingPayload is the normalised body sent to /book_appointment/{therapistId}.
type BookingPayload struct {
	ConsultationType string `json:"consultation_type"`
	AppointmentType  string `json:"appointment_type"`
	AppointmentDate  string `json:"appointment_date"`
	AppointmentTime  string `json:"appointment_time"`
	Hospital         int64  `json:"hospital"`
	Customer         int64  `json:"customer"`
	Therapist        int64  `json:"therapist"`
}

// PartyRef is the customer or therapist side of an appointment. The backend sends
// either a bare id or a nested profile.
type PartyRef struct {
	ID    FlexID `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func (p *PartyRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '{' {
		var id FlexID
		if err := id.UnmarshalJSON(b); err != nil {
			return err
		}
		*p = PartyRef{ID: id}
		return nil
	}
	var raw struct {
		ID             FlexID `json:"id"`
		Name           string `json:"name"`
		CustomerName   string `json:"customer_name"`
		TherapistName  string `json:"therapist_name"`
		Image          string `json:"image"`
		CustomerImage  string `json:"customer_image"`
		TherapistImage string `json:"therapist_image"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = PartyRef{
		ID:    raw.ID,
		Name:  firstNonEmpty(raw.Name, raw.TherapistName, raw.CustomerName),
		Image: firstNonEmpty(raw.Image, raw.TherapistImage, raw.CustomerImage),
	}
	return nil
}

// Appointment is a server-owned booking as returned by the appointment history endpoints.
type Appointment struct {
	ID               FlexID   `json:"id"`
	ConsultationType string   `json:"consultation_type"`
	AppointmentType  string   `json:"appointment_type"`
	Date             string   `json:"appointment_date"` // YYYY-MM-DD
	Time             string   `json:"appointment_time"` // HH:MM[:SS]
	Hospital         Hospital `json:"hospital"`
	HospitalName     string   `json:"hospital_name"`
	HospitalAddress  string   `json:"hospital_address"`
	Status           string   `json:"appointment_status"`
	Customer         PartyRef `json:"customer"`
	Therapist        PartyRef `json:"therapist"`
	CreatedAt        string   `json:"created_at"`
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CreatedTime parses CreatedAt. Zone-less timestamps are read as UTC.
func (a Appointment) CreatedTime() (time.Time, bool) {
	s := strings.TrimSpace(a.CreatedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AppointmentView is an appointment annotated for display.
type AppointmentView struct {
	Appointment
	CanCancel      bool    `json:"canCancel"`
	HoursRemaining float64 `json:"hoursRemaining"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
