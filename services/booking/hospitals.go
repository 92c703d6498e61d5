package booking

import (
	"context"

	"letsheal/models"
)

// HospitalSource lists every hospital known to the backend.
type HospitalSource interface {
	Hospitals(ctx context.Context, token string) ([]models.Hospital, error)
}

// OfferedHospitals returns the hospitals a therapist can be booked at. Embedded
// association data wins; otherwise the full list is filtered by hospital_ids, then
// by therapist_hospital. Only a therapist with no association data at all is
// offered the full list.
func OfferedHospitals(ctx context.Context, src HospitalSource, token string, t *models.TherapistProfile) ([]models.Hospital, error) {
	if len(t.Hospitals) > 0 {
		return usable(t.Hospitals), nil
	}

	all, err := src.Hospitals(ctx, token)
	if err != nil {
		return nil, err
	}

	switch {
	case t.HospitalIDs != nil:
		ids := make(map[int64]struct{}, len(t.HospitalIDs))
		for _, id := range t.HospitalIDs {
			ids[int64(id)] = struct{}{}
		}
		return filterHospitals(all, ids), nil
	case t.TherapistHospital != 0:
		return filterHospitals(all, map[int64]struct{}{int64(t.TherapistHospital): {}}), nil
	default:
		return usable(all), nil
	}
}

func filterHospitals(all []models.Hospital, ids map[int64]struct{}) []models.Hospital {
	out := []models.Hospital{}
	for _, h := range all {
		if _, ok := ids[int64(h.ID)]; ok {
			out = append(out, h)
		}
	}
	return out
}

// usable drops entries without an id; they cannot be booked.
func usable(hospitals []models.Hospital) []models.Hospital {
	out := make([]models.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if h.ID != 0 {
			out = append(out, h)
		}
	}
	return out
}

// FormOptions is everything the booking form needs for one therapist.
type FormOptions struct {
	Therapist          *models.TherapistProfile `json:"therapist"`
	Hospitals          []models.Hospital        `json:"hospitals"`
	SelectedHospitalID int64                    `json:"selectedHospitalId,omitempty"`
	Genders            []string                 `json:"genders"`
	ConsultancyTypes   []string                 `json:"consultancyTypes"`
	AppointmentTypes   []string                 `json:"appointmentTypes"`
	CanSubmit          bool                     `json:"canSubmit"`
}

// LoadFormOptions fetches the therapist and the hospitals offered for them. The first
// offered hospital is pre-selected.
func LoadFormOptions(ctx context.Context, api API, token string, therapistID int64) (*FormOptions, error) {
	therapist, err := api.TherapistProfile(ctx, token, therapistID)
	if err != nil {
		return nil, err
	}
	hospitals, err := OfferedHospitals(ctx, api, token, therapist)
	if err != nil {
		return nil, err
	}
	opts := &FormOptions{
		Therapist:        therapist,
		Hospitals:        hospitals,
		Genders:          models.GenderChoices,
		ConsultancyTypes: models.ConsultancyTypeChoices,
		AppointmentTypes: models.AppointmentTypeChoices,
		CanSubmit:        len(hospitals) > 0,
	}
	if len(hospitals) > 0 {
		opts.SelectedHospitalID = int64(hospitals[0].ID)
	}
	return opts, nil
}
