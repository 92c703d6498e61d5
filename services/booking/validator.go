package booking

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"letsheal/models"

	"github.com/go-playground/validator/v10"
)

// draftFields is the normalised draft the tag rules run against.
type draftFields struct {
	PatientName     string `json:"patientName" validate:"required"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	Age             string `json:"age" validate:"required,numeric"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	ConsultancyType string `json:"consultancyType" validate:"required,oneof=offline online"`
	AppointmentType string `json:"appointmentType" validate:"required,oneof='new patient' 'follow up'"`
	HospitalID      string `json:"hospitalId" validate:"required,numeric"`
}

var fieldLabels = map[string]string{
	"patientName":     "Patient name",
	"gender":          "Gender",
	"age":             "Age",
	"date":            "Date",
	"time":            "Time",
	"consultancyType": "Consultancy type",
	"appointmentType": "Appointment type",
	"hospitalId":      "Hospital selection",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// ValidationResult is the outcome of validating a draft.
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

// Err returns a *ValidationError for an invalid result and nil otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Fields: r.FieldErrors}
}

func normalise(d models.AppointmentDraft) draftFields {
	return draftFields{
		PatientName:     strings.TrimSpace(d.PatientName),
		Gender:          strings.ToLower(strings.TrimSpace(d.Gender)),
		Age:             strings.TrimSpace(d.Age.String()),
		Date:            strings.TrimSpace(d.Date),
		Time:            strings.TrimSpace(d.Time),
		ConsultancyType: strings.ToLower(strings.TrimSpace(d.ConsultancyType)),
		AppointmentType: strings.ToLower(strings.Join(strings.Fields(d.AppointmentType), " ")),
		HospitalID:      strings.TrimSpace(d.HospitalID.String()),
	}
}

// ValidateFields runs the checks that need no remote data: presence, the fixed
// choice sets and the age range. Hospital membership is left to Validate.
func ValidateFields(d models.AppointmentDraft) ValidationResult {
	_, errs := checkFields(d)
	return ValidationResult{Valid: len(errs) == 0, FieldErrors: errs}
}

// Validate checks every draft field and collects all failures. offered is the set of
// hospital ids currently offered for the therapist; a hospital outside it is invalid.
func Validate(d models.AppointmentDraft, offered map[int64]struct{}) ValidationResult {
	f, errs := checkFields(d)
	if _, failed := errs["hospitalId"]; !failed {
		id, _ := strconv.ParseInt(f.HospitalID, 10, 64)
		if _, ok := offered[id]; !ok {
			errs["hospitalId"] = "Invalid hospital selection"
		}
	}
	return ValidationResult{Valid: len(errs) == 0, FieldErrors: errs}
}

func checkFields(d models.AppointmentDraft) (draftFields, map[string]string) {
	f := normalise(d)
	errs := map[string]string{}

	var verrs validator.ValidationErrors
	if err := validate.Struct(f); errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}

	if _, failed := errs["age"]; !failed {
		if age, err := strconv.ParseFloat(f.Age, 64); err != nil || age < 1 || age > 120 {
			errs["age"] = "Please enter a valid age"
		}
	}
	return f, errs
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "numeric":
		if fe.Field() == "age" {
			return "Please enter a valid age"
		}
		return "Invalid hospital selection"
	case "oneof":
		return "Please select a valid " + strings.ToLower(label)
	default:
		return label + " is invalid"
	}
}
