package validate

import "strings"

// Errors maps form field names to user-facing messages. Cross-field failures
// use synthetic keys such as "blood_pressure" and "general".
type Errors map[string]string

// add records the error under key when err is non-nil.
func (e Errors) add(key string, err error) {
	if err != nil {
		e[key] = err.Error()
	}
}

// PatientInput holds raw form values for creating or editing a record.
type PatientInput struct {
	FirstName      string
	LastName       string
	DateOfBirth    string
	Gender         string
	Phone          string
	Email          string
	Address        string
	MedicalHistory string
}

// Validate checks every field and returns the aggregated per-field errors.
func (in PatientInput) Validate() (bool, Errors) {
	errs := Errors{}
	errs.add("first_name", Name(in.FirstName, "First name"))
	errs.add("last_name", Name(in.LastName, "Last name"))
	errs.add("date_of_birth", DateOfBirth(in.DateOfBirth))
	errs.add("gender", Gender(in.Gender))
	errs.add("phone", Phone(in.Phone))
	errs.add("email", Email(in.Email))
	errs.add("address", TextLength(in.Address, 120, "Address"))
	errs.add("medical_history", TextLength(in.MedicalHistory, 5000, "Medical history"))
	return len(errs) == 0, errs
}

// Payload builds the request body for the record service. Optional fields are
// omitted when blank.
func (in PatientInput) Payload() map[string]any {
	body := map[string]any{
		"first_name":    strings.TrimSpace(in.FirstName),
		"last_name":     strings.TrimSpace(in.LastName),
		"date_of_birth": strings.TrimSpace(in.DateOfBirth),
		"gender":        in.Gender,
	}
	setIfPresent(body, "phone", in.Phone)
	setIfPresent(body, "email", in.Email)
	setIfPresent(body, "address", in.Address)
	setIfPresent(body, "medical_history", in.MedicalHistory)
	return body
}

// RegistrationInput holds raw form values for account creation.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
}

// Validate checks the registration form. Unlike the record form, email is
// mandatory here.
func (in RegistrationInput) Validate() (bool, Errors) {
	errs := Errors{}
	errs.add("username", Username(in.Username))
	if err := Email(in.Email); err != nil {
		errs.add("email", err)
	} else if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	}
	errs.add("password", Password(in.Password))
	return len(errs) == 0, errs
}

// Payload builds the registration request body.
func (in RegistrationInput) Payload() map[string]any {
	return map[string]any{
		"username": strings.TrimSpace(in.Username),
		"email":    strings.TrimSpace(in.Email),
		"password": in.Password,
	}
}

// LoginInput holds raw sign-in form values.
type LoginInput struct {
	Username string
	Password string
}

// Validate only checks presence; credential quality is the remote's concern.
func (in LoginInput) Validate() (bool, Errors) {
	errs := Errors{}
	errs.add("username", Required(in.Username, "Username"))
	errs.add("password", Required(in.Password, "Password"))
	return len(errs) == 0, errs
}

func setIfPresent(body map[string]any, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		body[key] = v
	}
}
