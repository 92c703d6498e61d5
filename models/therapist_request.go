package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Therapist application states.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDeclined = "declined"
)

// TherapistRequest is an application to join the marketplace as a therapist.
type TherapistRequest struct {
	ID              FlexID     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           FlexString `json:"phone"`
	Specialization  string     `json:"specialization"`
	Qualification   string     `json:"qualification"`
	Experience      FlexString `json:"year_of_experience"`
	Gender          string     `json:"gender"`
	Hospitals       []Hospital `json:"hospitals"`
	HospitalName    string     `json:"hospital_name"`
	HospitalAddress string     `json:"hospital_address"`
	Status          string     `json:"status"`
	CreatedAt       string     `json:"created_at"`
}

// UnmarshalJSON reads the `hospital` field, which arrives as an id list, a single
// object or a bare id.
func (r *TherapistRequest) UnmarshalJSON(b []byte) error {
	type plain TherapistRequest
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var extra struct {
		Hospital json.RawMessage `json:"hospital"`
	}
	if err := json.Unmarshal(b, &extra); err != nil {
		return err
	}
	if len(p.Hospitals) == 0 {
		p.Hospitals = embeddedHospitals(extra.Hospital)
	}
	*r = TherapistRequest(p)
	return nil
}

// ResolveHospitals fills in hospital names from known. An id the list does not
// carry is named "Hospital <id>".
func (r *TherapistRequest) ResolveHospitals(known []Hospital) {
	byID := make(map[int64]Hospital, len(known))
	for _, h := range known {
		byID[int64(h.ID)] = h
	}
	for i, h := range r.Hospitals {
		if h.Name != "" {
			continue
		}
		if k, ok := byID[int64(h.ID)]; ok && k.Name != "" {
			r.Hospitals[i] = k
			continue
		}
		r.Hospitals[i].Name = fmt.Sprintf("Hospital %d", h.ID)
	}
}

// HospitalNames joins the request's hospital names, falling back to hospital_name.
func (r TherapistRequest) HospitalNames() string {
	names := make([]string, 0, len(r.Hospitals))
	for _, h := range r.Hospitals {
		if h.Name != "" {
			names = append(names, h.Name)
		}
	}
	if len(names) == 0 {
		return r.HospitalName
	}
	return strings.Join(names, ", ")
}

// RequestDecision is the admin's answer to a therapist application.
type RequestDecision struct {
	Action string `json:"action" binding:"required,oneof=approve decline"`
}
