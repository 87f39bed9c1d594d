// internal/admission/fields.go
//
// Canonical field table for the admissions application form.
//
// Each entry maps one storage column to the ordered input aliases that
// may supply it.  Alias order encodes precedence: the camelCase names the
// HTML form actually posts come first, snake_case equivalents next, and
// generic catch-alls ("email", "phone") last so they never shadow a
// form-specific name.

package admission

import "github.com/beautifulminds/website/internal/form"

// Error and warning keys use the HTML-facing field names so the
// front-end can highlight the exact input.
const (
	keyFullName      = "fullName"
	keyDOB           = "dob"
	keyReligion      = "religion"
	keyGender        = "gender"
	keyClassInterest = "classInterest"
	keyAddress       = "address"
	keyNationality   = "nationality"
	keyState         = "state"
	keyCity          = "city"
	keyStudentPhone  = "studentPhone"
	keyStudentEmail  = "studentEmail"
	keyMotherName    = "motherName"
	keyFatherName    = "fatherName"
	keyMotherPhone   = "motherPhone"
	keyFatherPhone   = "fatherPhone"
	keyParentEmail   = "parentEmail"
	keyParentAddress = "parentAddress"
)

// Fields is the declarative alias table consumed by the generic resolver.
var Fields = []form.Field{
	{Column: "full_name", Aliases: []string{"fullName", "full_name", "name"}},
	{Column: "date_of_birth", Aliases: []string{"dob", "dateOfBirth", "birth_date", "birthdate"}},
	{Column: "religion", Aliases: []string{"religion"}},
	{Column: "class_interest", Aliases: []string{"classInterest", "class_interest", "class"}},
	{Column: "gender", Aliases: []string{"gender", "sex"}},
	{Column: "address", Aliases: []string{"address", "home_address"}},
	{Column: "nationality", Aliases: []string{"nationality", "country"}, Default: "Nigeria"},
	{Column: "state", Aliases: []string{"state", "province", "region"}},
	{Column: "city", Aliases: []string{"city", "town"}},
	{Column: "student_phone", Aliases: []string{"studentPhone", "student_phone", "phone"}},
	{Column: "student_email", Aliases: []string{"studentEmail", "student_email"}},
	{Column: "mother_name", Aliases: []string{"motherName", "mother_name", "mother"}},
	{Column: "father_name", Aliases: []string{"fatherName", "father_name", "father"}},
	{Column: "mother_phone", Aliases: []string{"motherPhone", "mother_phone", "mother_contact"}},
	{Column: "father_phone", Aliases: []string{"fatherPhone", "father_phone", "father_contact"}},
	{Column: "parent_email", Aliases: []string{"parentEmail", "parent_email", "email"}},
	{Column: "parent_address", Aliases: []string{"parentAddress", "parent_address"}},
}
