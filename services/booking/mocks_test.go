package booking

import (
	"context"
	"errors"
	"sync/atomic"

	"letsheal/models"
	"letsheal/services/remote"
)

var _ API = (*MockAPI)(nil)

// MockAPI is a func-field stand-in for the remote client.
type MockAPI struct {
	TherapistProfileFunc func(ctx context.Context, token string, therapistID int64) (*models.TherapistProfile, error)
	HospitalsFunc        func(ctx context.Context, token string) ([]models.Hospital, error)
	BookAppointmentFunc  func(ctx context.Context, token string, therapistID int64, payload models.BookingPayload) (*remote.Response, error)
	CancelFunc           func(ctx context.Context, token string, appointmentID int64) error

	ProfileCallCount   int32
	HospitalsCallCount int32
	BookCallCount      int32
	CancelCallCount    int32
}

func (m *MockAPI) TherapistProfile(ctx context.Context, token string, therapistID int64) (*models.TherapistProfile, error) {
	atomic.AddInt32(&m.ProfileCallCount, 1)
	if m.TherapistProfileFunc != nil {
		return m.TherapistProfileFunc(ctx, token, therapistID)
	}
	return &models.TherapistProfile{ID: models.FlexID(therapistID), Hospitals: []models.Hospital{{ID: 3, Name: "Central"}}}, nil
}

func (m *MockAPI) Hospitals(ctx context.Context, token string) ([]models.Hospital, error) {
	atomic.AddInt32(&m.HospitalsCallCount, 1)
	if m.HospitalsFunc != nil {
		return m.HospitalsFunc(ctx, token)
	}
	return nil, errors.New("HospitalsFunc not implemented in mock")
}

func (m *MockAPI) BookAppointment(ctx context.Context, token string, therapistID int64, payload models.BookingPayload) (*remote.Response, error) {
	atomic.AddInt32(&m.BookCallCount, 1)
	if m.BookAppointmentFunc != nil {
		return m.BookAppointmentFunc(ctx, token, therapistID, payload)
	}
	return &remote.Response{Status: 201, ContentType: "application/json", Body: []byte(`{"id":1}`)}, nil
}

func (m *MockAPI) CancelAppointment(ctx context.Context, token string, appointmentID int64) error {
	atomic.AddInt32(&m.CancelCallCount, 1)
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, token, appointmentID)
	}
	return nil
}

func customerSession() *models.Session {
	return &models.Session{
		Role:        models.RoleCustomer,
		AccessToken: "tok",
		Profile:     models.Profile{ID: 7, Name: "Ann"},
	}
}

func validDraft() models.AppointmentDraft {
	return models.AppointmentDraft{
		PatientName:     "Ann",
		Gender:          "female",
		Age:             "34",
		Date:            "2025-03-01",
		Time:            "10:30",
		ConsultancyType: "online",
		AppointmentType: "new patient",
		HospitalID:      "3",
	}
}
