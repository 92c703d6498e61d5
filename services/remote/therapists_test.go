package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"letsheal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTherapistsSendsQueryAndReadsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search_therapist/", r.URL.Path)
		assert.Equal(t, "anx", r.URL.Query().Get("search"))
		assert.Equal(t, "Trauma", r.URL.Query().Get("specialty"))
		assert.False(t, r.URL.Query().Has("gender"))
		writeJSON(w, http.StatusOK, `{"therapists":[{"id":12,"therapist_name":"Dr. B","year_of_experience":7,"therapist_status":"Available","hospital":3}]}`)
	})

	got, err := c.SearchTherapists(context.Background(), "", TherapistQuery{Search: "anx", Specialty: "Trauma"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].Experience.String())
	assert.True(t, got[0].Active())
	require.Len(t, got[0].Hospitals, 1)
	assert.Equal(t, models.FlexID(3), got[0].Hospitals[0].ID)
}

func TestSearchTherapistsWithoutQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `[]`)
	})

	got, err := c.SearchTherapists(context.Background(), "tok", TherapistQuery{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHospitalCRUD(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/create_hospital/":
			var in models.HospitalInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, models.HospitalInput{Name: "East", Address: "1 Main St"}, in)
			writeJSON(w, http.StatusCreated, `{"id":9,"name":"East","address":"1 Main St"}`)
		case "PUT /api/update_hospital/9/":
			writeJSON(w, http.StatusOK, `{"id":9,"name":"East Wing","address":"1 Main St"}`)
		case "GET /api/view_specific_hospital_info/9/":
			writeJSON(w, http.StatusOK, `{"id":"9","name":"East Wing"}`)
		case "DELETE /api/delete_hospital/9/":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	created, err := c.CreateHospital(ctx, "tok", models.HospitalInput{Name: "East", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, models.FlexID(9), created.ID)

	updated, err := c.UpdateHospital(ctx, "tok", 9, models.HospitalInput{Name: "East Wing", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "East Wing", updated.Name)

	got, err := c.Hospital(ctx, "tok", 9)
	require.NoError(t, err)
	assert.Equal(t, models.FlexID(9), got.ID)

	require.NoError(t, c.DeleteHospital(ctx, "tok", 9))
}

func TestTherapistRequestHospitalShapes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[
			{"id":1,"name":"A","hospital":[1,2],"status":"pending"},
			{"id":2,"name":"B","hospital":{"id":3,"name":"Central"},"status":"approved"},
			{"id":3,"name":"C","hospital":"4","status":"declined"}]`)
	})

	reqs, err := c.TherapistRequests(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	known := []models.Hospital{{ID: 1, Name: "North"}}
	for i := range reqs {
		reqs[i].ResolveHospitals(known)
	}
	assert.Equal(t, "North, Hospital 2", reqs[0].HospitalNames())
	assert.Equal(t, "Central", reqs[1].HospitalNames())
	assert.Equal(t, "Hospital 4", reqs[2].HospitalNames())
}

func TestProcessTherapistRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/process_therapist_request/5/", r.URL.Path)
		var d models.RequestDecision
		require.NoError(t, json.NewDecoder(r.Body).Decode(&d))
		switch d.Action {
		case "approve":
			writeJSON(w, http.StatusOK, `{"success":true,"message":"Therapist approved"}`)
		case "decline":
			writeJSON(w, http.StatusOK, `{"success":false,"error":"Request already processed"}`)
		default:
			writeJSON(w, http.StatusBadRequest, `{"success":false,"error":"Invalid action"}`)
		}
	})
	ctx := context.Background()

	msg, err := c.ProcessTherapistRequest(ctx, "tok", 5, models.RequestDecision{Action: "approve"})
	require.NoError(t, err)
	assert.Equal(t, "Therapist approved", msg)

	_, err = c.ProcessTherapistRequest(ctx, "tok", 5, models.RequestDecision{Action: "decline"})
	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Request already processed", se.Message)

	_, err = c.ProcessTherapistRequest(ctx, "tok", 5, models.RequestDecision{Action: "hold"})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Invalid action", se.Message)
}
