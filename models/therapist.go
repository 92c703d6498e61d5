package models

import (
	"bytes"
	"encoding/json"
)

// TherapistProfile is the public therapist record from /view_therapist_profile.
//
// The backend has exposed the hospital association under several shapes over time;
// Hospitals holds whichever embedded form was present, HospitalIDs and
// TherapistHospital hold the id-only forms.
type TherapistProfile struct {
	ID                FlexID     `json:"id"`
	Name              string     `json:"therapist_name"`
	Email             string     `json:"therapist_email"`
	Phone             FlexString `json:"therapist_phone,omitempty"`
	Specialization    string     `json:"therapist_specialization"`
	Qualification     string     `json:"therapist_qualification"`
	Experience        FlexString `json:"year_of_experience,omitempty"`
	Gender            string     `json:"therapist_gender,omitempty"`
	Status            string     `json:"therapist_status,omitempty"`
	IsActive          *bool      `json:"is_active,omitempty"`
	Image             string     `json:"therapist_image"`
	HospitalName      string     `json:"hospital_name"`
	HospitalAddress   string     `json:"hospital_address"`
	Hospitals         []Hospital `json:"hospitals"`
	HospitalIDs       []FlexID   `json:"hospital_ids"`
	TherapistHospital FlexID     `json:"therapist_hospital"`
}

func (t *TherapistProfile) UnmarshalJSON(b []byte) error {
	type plain TherapistProfile
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var extra struct {
		Hospital            json.RawMessage `json:"hospital"`
		AssociatedHospitals []Hospital      `json:"associated_hospitals"`
	}
	if err := json.Unmarshal(b, &extra); err != nil {
		return err
	}
	if len(p.Hospitals) == 0 {
		p.Hospitals = embeddedHospitals(extra.Hospital)
	}
	if len(p.Hospitals) == 0 {
		p.Hospitals = extra.AssociatedHospitals
	}
	*t = TherapistProfile(p)
	return nil
}

// Therapist availability as the backend spells it.
const (
	TherapistAvailable   = "Available"
	TherapistUnavailable = "Unavailable"
)

// Active reports an available therapist, or one whose is_active flag is not false.
func (t TherapistProfile) Active() bool {
	return t.Status == TherapistAvailable || t.IsActive == nil || *t.IsActive
}

// Inactive reports a therapist marked unavailable. A therapist can be both Active
// and Inactive when is_active is unset and the status is Unavailable.
func (t TherapistProfile) Inactive() bool {
	return t.Status == TherapistUnavailable
}

// embeddedHospitals decodes the `hospital` field, which may be a list or a single object.
func embeddedHospitals(raw json.RawMessage) []Hospital {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '[':
		var list []Hospital
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	case '{':
		var h Hospital
		if err := json.Unmarshal(raw, &h); err == nil {
			return []Hospital{h}
		}
	default:
		var h Hospital
		if err := h.UnmarshalJSON(raw); err == nil && h.ID != 0 {
			return []Hospital{h}
		}
	}
	return nil
}
