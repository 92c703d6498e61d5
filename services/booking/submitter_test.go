package booking

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"letsheal/models"
	"letsheal/services/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func respond(status int, contentType, body string) func(context.Context, string, int64, models.BookingPayload) (*remote.Response, error) {
	return func(context.Context, string, int64, models.BookingPayload) (*remote.Response, error) {
		return &remote.Response{Status: status, ContentType: contentType, Body: []byte(body)}, nil
	}
}

func TestSubmitPreconditions(t *testing.T) {
	ctx := context.Background()
	api := &MockAPI{}
	s := NewSubmitter(api, nil)

	_, err := s.Submit(ctx, validDraft(), nil, "12")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.Submit(ctx, validDraft(), &models.Session{Role: models.RoleCustomer}, "12")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.Submit(ctx, validDraft(), customerSession(), "")
	assert.ErrorIs(t, err, ErrMissingTherapist)

	_, err = s.Submit(ctx, validDraft(), customerSession(), "abc")
	assert.ErrorIs(t, err, ErrMissingTherapist)

	d := validDraft()
	d.Age = "0"
	_, err = s.Submit(ctx, d, customerSession(), "12")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "age")

	assert.Zero(t, api.BookCallCount)
}

func TestSubmitBuildsNormalisedPayload(t *testing.T) {
	var got models.BookingPayload
	api := &MockAPI{BookAppointmentFunc: func(_ context.Context, token string, tid int64, p models.BookingPayload) (*remote.Response, error) {
		assert.Equal(t, "tok", token)
		assert.Equal(t, int64(12), tid)
		got = p
		return &remote.Response{Status: http.StatusCreated, ContentType: "application/json"}, nil
	}}

	d := validDraft()
	d.ConsultancyType = "Online"
	res, err := NewSubmitter(api, nil).Submit(context.Background(), d, customerSession(), "12")
	require.NoError(t, err)
	assert.False(t, res.Quirk)
	assert.Equal(t, models.BookingPayload{
		ConsultationType: "online",
		AppointmentType:  "new patient",
		AppointmentDate:  "2025-03-01",
		AppointmentTime:  "10:30",
		Hospital:         3,
		Customer:         7,
		Therapist:        12,
	}, got)
}

func TestSubmitHTMLServerErrorIsSuccess(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	api := &MockAPI{BookAppointmentFunc: respond(http.StatusInternalServerError, "text/html; charset=utf-8", "<html>IntegrityError</html>")}

	res, err := NewSubmitter(api, zap.New(core)).Submit(context.Background(), validDraft(), customerSession(), "12")
	require.NoError(t, err)
	assert.True(t, res.Quirk)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "<html>IntegrityError</html>", logs.All()[0].ContextMap()["body"])
}

func TestSubmitJSONServerErrorIsNotQuirk(t *testing.T) {
	api := &MockAPI{BookAppointmentFunc: respond(http.StatusInternalServerError, "application/json", `{"detail":"boom"}`)}

	_, err := NewSubmitter(api, nil).Submit(context.Background(), validDraft(), customerSession(), "12")
	var se *remote.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "boom", se.Message)
}

func TestSubmitServerMessagePassthrough(t *testing.T) {
	api := &MockAPI{BookAppointmentFunc: respond(http.StatusBadRequest, "application/json", `{"error":"Hospital selection is required"}`)}

	_, err := NewSubmitter(api, nil).Submit(context.Background(), validDraft(), customerSession(), "12")
	var se *remote.ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Hospital selection is required", se.Message)
	assert.Equal(t, http.StatusBadRequest, se.Status)
}

func TestSubmitAuthAndForbidden(t *testing.T) {
	api := &MockAPI{BookAppointmentFunc: respond(http.StatusUnauthorized, "application/json", `{}`)}
	_, err := NewSubmitter(api, nil).Submit(context.Background(), validDraft(), customerSession(), "12")
	assert.ErrorIs(t, err, remote.ErrAuthExpired)

	api.BookAppointmentFunc = respond(http.StatusForbidden, "application/json", `{}`)
	_, err = NewSubmitter(api, nil).Submit(context.Background(), validDraft(), customerSession(), "12")
	assert.ErrorIs(t, err, remote.ErrForbidden)
}

func TestSubmitNetworkError(t *testing.T) {
	api := &MockAPI{BookAppointmentFunc: func(context.Context, string, int64, models.BookingPayload) (*remote.Response, error) {
		return nil, &remote.NetworkError{Op: "POST", Err: errors.New("connection refused")}
	}}

	_, err := NewSubmitter(api, nil).Submit(context.Background(), validDraft(), customerSession(), "12")
	var ne *remote.NetworkError
	assert.ErrorAs(t, err, &ne)
}

func TestSubmitAbandonedDiscardsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	api := &MockAPI{BookAppointmentFunc: func(context.Context, string, int64, models.BookingPayload) (*remote.Response, error) {
		cancel()
		return &remote.Response{Status: http.StatusCreated, ContentType: "application/json"}, nil
	}}

	res, err := NewSubmitter(api, nil).Submit(ctx, validDraft(), customerSession(), "12")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrAbandoned)
}

func TestSubmitValidatesBeforeRemoteWork(t *testing.T) {
	api := &MockAPI{
		TherapistProfileFunc: func(context.Context, string, int64) (*models.TherapistProfile, error) {
			return nil, &remote.NetworkError{Op: "GET", Err: errors.New("connection refused")}
		},
	}
	d := validDraft()
	d.Gender = ""
	d.Time = " "

	_, err := NewSubmitter(api, nil).Submit(context.Background(), d, customerSession(), "12")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Gender is required", ve.Fields["gender"])
	assert.Equal(t, "Time is required", ve.Fields["time"])
	assert.Zero(t, api.ProfileCallCount)
	assert.Zero(t, api.HospitalsCallCount)
	assert.Zero(t, api.BookCallCount)
}

func TestSubmitRejectsHospitalOutsideTherapistSet(t *testing.T) {
	api := &MockAPI{
		TherapistProfileFunc: func(context.Context, string, int64) (*models.TherapistProfile, error) {
			return &models.TherapistProfile{ID: 12, HospitalIDs: []models.FlexID{5}}, nil
		},
		HospitalsFunc: func(context.Context, string) ([]models.Hospital, error) {
			return []models.Hospital{{ID: 3}, {ID: 5}}, nil
		},
	}

	_, err := NewSubmitter(api, nil).Submit(context.Background(), validDraft(), customerSession(), "12")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid hospital selection", ve.Fields["hospitalId"])
	assert.Zero(t, api.BookCallCount)
}
