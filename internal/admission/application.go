// internal/admission/application.go
//
// Application model and the resolve → validate → normalize step of the
// admissions pipeline.
//
// Validation checks every field before control flow consults the result,
// so a submitter sees the full error set in one response.  Warnings
// (short names, a questionable optional email) never block persistence.

package admission

import (
	"time"

	"github.com/beautifulminds/website/internal/form"
)

// Application is the ephemeral, validated, normalized submission.  It
// lives for one request: populated by Prepare, written by the
// Repository, echoed in the response, then discarded.
type Application struct {
	FullName      string
	DateOfBirth   string // canonical YYYY-MM-DD
	Religion      string
	ClassInterest string
	Gender        string
	Address       string
	Nationality   string
	State         string
	City          string
	StudentPhone  string // canonical digits, optional
	StudentEmail  string // optional
	MotherName    string
	FatherName    string
	MotherPhone   string // canonical digits
	FatherPhone   string // canonical digits
	ParentEmail   string
	ParentAddress string

	ApplicationID string // external identifier, e.g. APP20260830X7K2M9
	IPAddress     string
}

// Prepare resolves aliases, validates every field, and normalizes the
// date and phone values.  The returned Application is fully populated
// only when res.OK(); on validation failure it is nil.
func Prepare(vals form.Values, now time.Time) (*Application, *form.Result) {
	f := vals.ResolveFields(Fields)
	res := form.NewResult()

	// Required names, with short-name warnings.
	if f["full_name"] == "" {
		res.Fail(keyFullName, "Student full name is required")
	} else if len(f["full_name"]) < 3 {
		res.Warn(keyFullName, "Student name seems very short")
	}
	if f["mother_name"] == "" {
		res.Fail(keyMotherName, "Mother's name is required")
	} else if len(f["mother_name"]) < 3 {
		res.Warn(keyMotherName, "Mother's name seems very short")
	}
	if f["father_name"] == "" {
		res.Fail(keyFatherName, "Father's name is required")
	} else if len(f["father_name"]) < 3 {
		res.Warn(keyFatherName, "Father's name seems very short")
	}

	// Required categorical fields.
	required := []struct{ column, key, msg string }{
		{"religion", keyReligion, "Religion is required"},
		{"gender", keyGender, "Gender is required"},
		{"class_interest", keyClassInterest, "Class of interest is required"},
		{"address", keyAddress, "Residential address is required"},
		{"nationality", keyNationality, "Nationality is required"},
		{"state", keyState, "State is required"},
		{"city", keyCity, "City is required"},
		{"parent_address", keyParentAddress, "Parent address is required"},
	}
	for _, req := range required {
		if f[req.column] == "" {
			res.Fail(req.key, req.msg)
		}
	}

	// Date of birth: required, multi-format parse, year range.
	dob := ""
	if f["date_of_birth"] == "" {
		res.Fail(keyDOB, "Date of birth is required")
	} else {
		var ok bool
		dob, ok = form.NormalizeDate(f["date_of_birth"], now)
		if !ok {
			res.Fail(keyDOB, "Please enter a valid date of birth (YYYY-MM-DD format preferred)")
		}
	}

	// Parent email: required with format check.
	if f["parent_email"] == "" {
		res.Fail(keyParentEmail, "Parent email address is required")
	} else if !form.ValidEmail(f["parent_email"]) {
		res.Fail(keyParentEmail, "Please enter a valid parent email address")
	}

	// Student email: optional, format problems warn only.
	if f["student_email"] != "" && !form.ValidEmail(f["student_email"]) {
		res.Warn(keyStudentEmail, "Student email format appears incorrect")
	}

	// Parent phones: required, canonical length is a hard rule.
	motherPhone := form.NormalizePhone(f["mother_phone"])
	fatherPhone := form.NormalizePhone(f["father_phone"])
	if f["mother_phone"] == "" {
		res.Fail(keyMotherPhone, "Mother's phone number is required")
	} else if !form.PhoneLengthOK(motherPhone) {
		res.Fail(keyMotherPhone, "Mother phone number must be 10-15 digits")
	}
	if f["father_phone"] == "" {
		res.Fail(keyFatherPhone, "Father's phone number is required")
	} else if !form.PhoneLengthOK(fatherPhone) {
		res.Fail(keyFatherPhone, "Father phone number must be 10-15 digits")
	}

	// Student phone: optional; a bad length only warns.
	studentPhone := form.NormalizePhone(f["student_phone"])
	if f["student_phone"] != "" && !form.PhoneLengthOK(studentPhone) {
		res.Warn(keyStudentPhone, "Student phone number may be invalid")
	}

	if !res.OK() {
		return nil, res
	}

	app := &Application{
		FullName:      form.Sanitize(f["full_name"]),
		DateOfBirth:   dob,
		Religion:      form.Sanitize(f["religion"]),
		ClassInterest: form.Sanitize(f["class_interest"]),
		Gender:        form.Sanitize(f["gender"]),
		Address:       form.Sanitize(f["address"]),
		Nationality:   form.Sanitize(f["nationality"]),
		State:         form.Sanitize(f["state"]),
		City:          form.Sanitize(f["city"]),
		StudentPhone:  studentPhone,
		StudentEmail:  form.Sanitize(f["student_email"]),
		MotherName:    form.Sanitize(f["mother_name"]),
		FatherName:    form.Sanitize(f["father_name"]),
		MotherPhone:   motherPhone,
		FatherPhone:   fatherPhone,
		ParentEmail:   form.Sanitize(f["parent_email"]),
		ParentAddress: form.Sanitize(f["parent_address"]),
	}
	return app, res
}

// ResponseData builds the success-payload echo.  Optional values appear
// only when present, matching what the front-end renders.
func (a *Application) ResponseData() map[string]any {
	data := map[string]any{
		"application_id": a.ApplicationID,
		"full_name":      a.FullName,
		"dob":            a.DateOfBirth,
		"religion":       a.Religion,
		"class_interest": a.ClassInterest,
		"gender":         a.Gender,
		"nationality":    a.Nationality,
		"state":          a.State,
		"city":           a.City,
		"address":        a.Address,
		"mother_name":    a.MotherName,
		"father_name":    a.FatherName,
		"mother_phone":   a.MotherPhone,
		"father_phone":   a.FatherPhone,
		"parent_email":   a.ParentEmail,
		"parent_address": a.ParentAddress,
	}
	if a.StudentPhone != "" {
		data["student_phone"] = a.StudentPhone
	}
	if a.StudentEmail != "" {
		data["student_email"] = a.StudentEmail
	}
	return data
}
