package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"letsheal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestLoginSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var in LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ann@example.com", in.Email)
		writeJSON(w, http.StatusOK, `{"success":true,"role":"customer","access_token":"a","refresh_token":"r","data":{"id":7,"customer_name":"Ann"}}`)
	})

	out, err := c.Login(context.Background(), LoginRequest{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "customer", out.Role)
	assert.Equal(t, "a", out.AccessToken)
	assert.False(t, out.NeedsRoleSelection())
}

func TestLoginMultipleRoles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"email":"x@y.z","roles":["customer","therapist"],"message":"Multiple roles found."}`)
	})

	out, err := c.Login(context.Background(), LoginRequest{Email: "x@y.z", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, out.NeedsRoleSelection())
	assert.Equal(t, []string{"customer", "therapist"}, out.Roles)
}

func TestLoginRejectedPasswordIsServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":"Incorrect password"}`)
	})

	_, err := c.Login(context.Background(), LoginRequest{Email: "x@y.z", Password: "bad"})
	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Incorrect password", se.Message)
	assert.False(t, errors.Is(err, ErrAuthExpired))
}

func TestBearerTokenAndListEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/view_hospital_list/":
			writeJSON(w, http.StatusOK, `[{"id":1,"name":"North"},{"id":"2","name":"South"}]`)
		case "/api/customer_appointment_current_history/":
			writeJSON(w, http.StatusOK, `{"data":[{"id":9,"appointment_date":"2025-01-02","therapist":{"id":3,"therapist_name":"Dr. B"}}]}`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	hospitals, err := c.Hospitals(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	assert.Equal(t, models.FlexID(2), hospitals[1].ID)

	appts, err := c.CustomerAppointments(ctx, "tok", HistoryCurrent)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "Dr. B", appts[0].Therapist.Name)
}

func TestStatusMapping(t *testing.T) {
	status := http.StatusUnauthorized
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, `{"detail":"nope"}`)
	})
	ctx := context.Background()

	_, err := c.Customers(ctx, "tok")
	assert.ErrorIs(t, err, ErrAuthExpired)

	status = http.StatusForbidden
	err = c.DeleteCustomer(ctx, "tok", 4)
	assert.ErrorIs(t, err, ErrForbidden)

	status = http.StatusBadRequest
	err = c.CancelAppointment(ctx, "tok", 4)
	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "nope", se.Message)
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL, time.Second, nil)

	_, err := c.Hospitals(context.Background(), "tok")
	var ne *NetworkError
	assert.ErrorAs(t, err, &ne)
}

func TestCancelledContextIsNotANetworkError(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Do(ctx, http.MethodGet, "/api/view_hospital_list/", "", nil)
	assert.ErrorIs(t, err, context.Canceled)
	var ne *NetworkError
	assert.False(t, errors.As(err, &ne))
}

func TestBookAppointmentReturnsRawResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/book_appointment/12/", r.URL.Path)
		var p models.BookingPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, int64(3), p.Hospital)
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "<html>Traceback</html>")
	})

	resp, err := c.BookAppointment(context.Background(), "tok", 12, models.BookingPayload{Hospital: 3, Therapist: 12})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, "text/html", resp.ContentType)
	assert.False(t, resp.OK())
}

func TestRefreshAccessToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/token/refresh/", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"access":"new"}`)
	})

	tok, err := c.RefreshAccessToken(context.Background(), "r")
	require.NoError(t, err)
	assert.Equal(t, "new", tok)
}
