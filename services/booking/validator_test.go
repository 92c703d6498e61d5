package booking

import (
	"testing"

	"letsheal/models"

	"github.com/stretchr/testify/assert"
)

var offered = map[int64]struct{}{3: {}, 5: {}}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	res := Validate(validDraft(), offered)
	assert.True(t, res.Valid)
	assert.Empty(t, res.FieldErrors)
	assert.NoError(t, res.Err())
}

func TestValidateReportsEachMissingField(t *testing.T) {
	fields := []string{"patientName", "gender", "age", "date", "time", "consultancyType", "appointmentType", "hospitalId"}
	blank := map[string]func(*models.AppointmentDraft){
		"patientName":     func(d *models.AppointmentDraft) { d.PatientName = "   " },
		"gender":          func(d *models.AppointmentDraft) { d.Gender = "" },
		"age":             func(d *models.AppointmentDraft) { d.Age = "" },
		"date":            func(d *models.AppointmentDraft) { d.Date = "" },
		"time":            func(d *models.AppointmentDraft) { d.Time = "" },
		"consultancyType": func(d *models.AppointmentDraft) { d.ConsultancyType = "" },
		"appointmentType": func(d *models.AppointmentDraft) { d.AppointmentType = "" },
		"hospitalId":      func(d *models.AppointmentDraft) { d.HospitalID = "" },
	}

	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			d := validDraft()
			blank[field](&d)
			res := Validate(d, offered)
			assert.False(t, res.Valid)
			assert.Len(t, res.FieldErrors, 1)
			assert.Contains(t, res.FieldErrors[field], "is required")
		})
	}

	t.Run("all at once", func(t *testing.T) {
		res := Validate(models.AppointmentDraft{}, offered)
		assert.False(t, res.Valid)
		assert.Len(t, res.FieldErrors, len(fields))
		assert.Equal(t, "Patient name is required", res.FieldErrors["patientName"])
		assert.Equal(t, "Hospital selection is required", res.FieldErrors["hospitalId"])
	})
}

func TestValidateAgeBoundaries(t *testing.T) {
	tests := []struct {
		age   models.FlexString
		valid bool
	}{
		{"0", false},
		{"1", true},
		{"120", true},
		{"121", false},
		{"-4", false},
		{"abc", false},
		{" 42 ", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.age), func(t *testing.T) {
			d := validDraft()
			d.Age = tt.age
			res := Validate(d, offered)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Equal(t, "Please enter a valid age", res.FieldErrors["age"])
			}
		})
	}
}

func TestValidateChoices(t *testing.T) {
	d := validDraft()
	d.Gender = "Female"
	d.ConsultancyType = "ONLINE"
	d.AppointmentType = "Follow  Up"
	assert.True(t, Validate(d, offered).Valid)

	d.Gender = "robot"
	d.ConsultancyType = "phone"
	d.AppointmentType = "urgent"
	res := Validate(d, offered)
	assert.False(t, res.Valid)
	assert.Equal(t, "Please select a valid gender", res.FieldErrors["gender"])
	assert.Contains(t, res.FieldErrors, "consultancyType")
	assert.Contains(t, res.FieldErrors, "appointmentType")
}

func TestValidateHospitalMustBeOffered(t *testing.T) {
	d := validDraft()
	d.HospitalID = "99"
	res := Validate(d, offered)
	assert.False(t, res.Valid)
	assert.Equal(t, "Invalid hospital selection", res.FieldErrors["hospitalId"])

	d.HospitalID = "5"
	assert.True(t, Validate(d, offered).Valid)

	assert.False(t, Validate(validDraft(), nil).Valid)
}

func TestValidateFieldsSkipsHospitalMembership(t *testing.T) {
	d := validDraft()
	d.HospitalID = "99"
	assert.True(t, ValidateFields(d).Valid)

	d.HospitalID = ""
	d.Age = "121"
	res := ValidateFields(d)
	assert.Equal(t, map[string]string{
		"hospitalId": "Hospital selection is required",
		"age":        "Please enter a valid age",
	}, res.FieldErrors)
}
