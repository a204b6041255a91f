package signup

import "github.com/radiancespa/siteforms/internal/wizard"

// FieldID names a single form input.
type FieldID string

const (
	FieldEmail           FieldID = "email"
	FieldUsername        FieldID = "username"
	FieldPassword        FieldID = "password"
	FieldConfirmPassword FieldID = "confirm_password"
)

// Signup wizard steps: identity/contact fields first, password fields second.
const (
	StepIdentity wizard.StepID = "identity"
	StepPassword wizard.StepID = "password"
)

// Steps returns the ordered signup step list.
func Steps() []wizard.StepID {
	return []wizard.StepID{StepIdentity, StepPassword}
}

// Form carries the signup field values as entered by the visitor.
type Form struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ToMap flattens the form for session persistence.
func (f Form) ToMap() map[string]string {
	return map[string]string{
		string(FieldEmail):           f.Email,
		string(FieldUsername):        f.Username,
		string(FieldPassword):        f.Password,
		string(FieldConfirmPassword): f.ConfirmPassword,
	}
}

// FormFromMap rebuilds a form from persisted session state.
func FormFromMap(m map[string]string) Form {
	return Form{
		Email:           m[string(FieldEmail)],
		Username:        m[string(FieldUsername)],
		Password:        m[string(FieldPassword)],
		ConfirmPassword: m[string(FieldConfirmPassword)],
	}
}

// ValidationResult reports which required fields failed validation. It is
// transient; rendering the failed fields (red borders in the original UI) is
// the caller's concern.
type ValidationResult struct {
	Valid        bool      `json:"valid"`
	FailedFields []FieldID `json:"failed_fields,omitempty"`
}

// ValidateRequiredFields fails every field whose value is the empty string.
// Values are deliberately not trimmed: whitespace counts as filled.
func ValidateRequiredFields(fields map[FieldID]string, required ...FieldID) ValidationResult {
	var failed []FieldID
	for _, id := range required {
		if fields[id] == "" {
			failed = append(failed, id)
		}
	}
	return ValidationResult{Valid: len(failed) == 0, FailedFields: failed}
}

// requiredForStep lists the fields gating each step's forward transition.
func requiredForStep(step wizard.StepID) []FieldID {
	switch step {
	case StepIdentity:
		return []FieldID{FieldEmail, FieldUsername}
	case StepPassword:
		return []FieldID{FieldPassword, FieldConfirmPassword}
	default:
		return nil
	}
}

func (f Form) fieldValues() map[FieldID]string {
	return map[FieldID]string{
		FieldEmail:           f.Email,
		FieldUsername:        f.Username,
		FieldPassword:        f.Password,
		FieldConfirmPassword: f.ConfirmPassword,
	}
}
