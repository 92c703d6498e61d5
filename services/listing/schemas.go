package listing

import (
	"strings"

	"letsheal/models"
)

// CustomerSchema drives the admin customer list. The category filter is the account
// status: active or inactive.
var CustomerSchema = Schema[models.Customer]{
	Fields: map[string]func(models.Customer) string{
		"id":            func(c models.Customer) string { return c.ID.String() },
		"customer_name": func(c models.Customer) string { return c.Name },
		"name":          func(c models.Customer) string { return c.Name },
		"email":         func(c models.Customer) string { return c.Email },
		"phone":         func(c models.Customer) string { return c.Phone.String() },
		"age":           func(c models.Customer) string { return c.Age.String() },
		"date_joined":   func(c models.Customer) string { return c.DateJoined },
	},
	SearchFields: []string{"name", "email", "phone"},
	MatchCategory: func(c models.Customer, status string) bool {
		switch strings.ToLower(status) {
		case "active":
			return c.Active()
		case "inactive":
			return !c.Active()
		default:
			return false
		}
	},
	DateField: "date_joined",
}

// BlogSchema drives the blog search.
var BlogSchema = Schema[models.Blog]{
	Fields: map[string]func(models.Blog) string{
		"id":         func(b models.Blog) string { return b.ID.String() },
		"title":      func(b models.Blog) string { return b.Title },
		"content":    func(b models.Blog) string { return b.Content },
		"author":     func(b models.Blog) string { return b.AuthorName },
		"created_at": func(b models.Blog) string { return b.CreatedAt },
	},
	SearchFields: []string{"title", "content", "author"},
	DateField:    "created_at",
}

// AppointmentSchema drives the appointment history lists. The category filter is
// the consultation type, compared without regard to case.
var AppointmentSchema = Schema[models.AppointmentView]{
	Fields: map[string]func(models.AppointmentView) string{
		"id":                func(a models.AppointmentView) string { return a.ID.String() },
		"therapist":         func(a models.AppointmentView) string { return a.Therapist.Name },
		"customer":          func(a models.AppointmentView) string { return a.Customer.Name },
		"consultation_type": func(a models.AppointmentView) string { return a.ConsultationType },
		"appointment_type":  func(a models.AppointmentView) string { return a.AppointmentType },
		"date":              func(a models.AppointmentView) string { return a.Date },
		"time":              func(a models.AppointmentView) string { return a.Time },
		"created_at":        func(a models.AppointmentView) string { return a.CreatedAt },
	},
	SearchFields:  []string{"therapist", "customer"},
	CategoryField: "consultation_type",
	MatchCategory: func(a models.AppointmentView, category string) bool {
		return strings.EqualFold(strings.TrimSpace(a.ConsultationType), category)
	},
	DateField: "date",
}

// TherapistSchema drives the admin therapist list. The category filter is the
// availability status: active or inactive.
var TherapistSchema = Schema[models.TherapistProfile]{
	Fields: map[string]func(models.TherapistProfile) string{
		"id":                 func(t models.TherapistProfile) string { return t.ID.String() },
		"therapist_name":     func(t models.TherapistProfile) string { return t.Name },
		"name":               func(t models.TherapistProfile) string { return t.Name },
		"email":              func(t models.TherapistProfile) string { return t.Email },
		"specialization":     func(t models.TherapistProfile) string { return t.Specialization },
		"hospital_name":      func(t models.TherapistProfile) string { return therapistHospitals(t) },
		"year_of_experience": func(t models.TherapistProfile) string { return t.Experience.String() },
		"status":             func(t models.TherapistProfile) string { return t.Status },
	},
	SearchFields: []string{"name", "email", "specialization", "hospital_name"},
	MatchCategory: func(t models.TherapistProfile, status string) bool {
		switch strings.ToLower(status) {
		case "active":
			return t.Active()
		case "inactive":
			return t.Inactive()
		default:
			return false
		}
	},
}

// DirectorySchema drives the public therapist directory. The category filter is a
// hospital name.
var DirectorySchema = Schema[models.TherapistProfile]{
	Fields:       TherapistSchema.Fields,
	SearchFields: []string{"name", "specialization", "hospital_name"},
	MatchCategory: func(t models.TherapistProfile, hospital string) bool {
		if strings.EqualFold(strings.TrimSpace(t.HospitalName), hospital) {
			return true
		}
		for _, h := range t.Hospitals {
			if strings.EqualFold(strings.TrimSpace(h.Name), hospital) {
				return true
			}
		}
		return false
	},
}

// DirectorySort maps the directory's sort choices onto a field and direction. Other
// values are returned unchanged.
func DirectorySort(state models.FilterState) models.FilterState {
	switch state.SortKey {
	case "name_asc":
		state.SortKey, state.SortDirection = "therapist_name", models.SortAsc
	case "name_desc":
		state.SortKey, state.SortDirection = "therapist_name", models.SortDesc
	}
	return state
}

func therapistHospitals(t models.TherapistProfile) string {
	names := make([]string, 0, len(t.Hospitals)+1)
	if t.HospitalName != "" {
		names = append(names, t.HospitalName)
	}
	for _, h := range t.Hospitals {
		if h.Name != "" && !strings.EqualFold(h.Name, t.HospitalName) {
			names = append(names, h.Name)
		}
	}
	return strings.Join(names, ", ")
}

// HospitalSchema drives the admin hospital list.
var HospitalSchema = Schema[models.Hospital]{
	Fields: map[string]func(models.Hospital) string{
		"id":      func(h models.Hospital) string { return h.ID.String() },
		"name":    func(h models.Hospital) string { return h.Name },
		"address": func(h models.Hospital) string { return h.Address },
	},
	SearchFields: []string{"name", "address"},
}

// TherapistRequestSchema drives the therapist application list. The category filter
// is the request status. Hospital names must be resolved before filtering.
var TherapistRequestSchema = Schema[models.TherapistRequest]{
	Fields: map[string]func(models.TherapistRequest) string{
		"id":                 func(r models.TherapistRequest) string { return r.ID.String() },
		"name":               func(r models.TherapistRequest) string { return r.Name },
		"email":              func(r models.TherapistRequest) string { return r.Email },
		"specialization":     func(r models.TherapistRequest) string { return r.Specialization },
		"hospitals":          func(r models.TherapistRequest) string { return r.HospitalNames() },
		"year_of_experience": func(r models.TherapistRequest) string { return r.Experience.String() },
		"status":             func(r models.TherapistRequest) string { return r.Status },
		"created_at":         func(r models.TherapistRequest) string { return r.CreatedAt },
	},
	SearchFields:  []string{"name", "email", "specialization", "hospitals"},
	CategoryField: "status",
	DateField:     "created_at",
}
