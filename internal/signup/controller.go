// Package signup implements the two-step signup wizard: step gating on
// required fields, duplicate-email detection against the user directory, and
// final submission semantics.
package signup

import (
	"github.com/radiancespa/siteforms/internal/directory"
	"github.com/radiancespa/siteforms/internal/wizard"
)

// BlockReason says why an advance attempt was refused.
type BlockReason string

const (
	BlockMissingFields  BlockReason = "missing-fields"
	BlockDuplicateEmail BlockReason = "duplicate-email"
)

// AdvanceOutcome is the result of one advance attempt. Blocked attempts are
// no-ops on wizard state.
type AdvanceOutcome struct {
	Advanced     bool          `json:"advanced"`
	Reason       BlockReason   `json:"reason,omitempty"`
	FailedFields []FieldID     `json:"failed_fields,omitempty"`
	Step         wizard.StepID `json:"step"`
	StepIndex    int           `json:"step_index"`
}

// Err maps a blocked outcome to its sentinel error, nil when advanced.
func (o AdvanceOutcome) Err() error {
	switch o.Reason {
	case BlockMissingFields:
		return ErrMissingFields
	case BlockDuplicateEmail:
		return directory.ErrDuplicateEmail
	default:
		return nil
	}
}

// SubmitStatus classifies a final-submission result.
type SubmitStatus string

const (
	SubmitSuccess          SubmitStatus = "success"
	SubmitPasswordMismatch SubmitStatus = "password-mismatch"
	SubmitDuplicateEmail   SubmitStatus = "duplicate-email"
)

// SubmitOutcome is the result of a final submission. Identity is set only on
// success.
type SubmitOutcome struct {
	Status   SubmitStatus
	Identity *directory.Identity
}

// Err maps a failed outcome to its sentinel error, nil on success.
func (o SubmitOutcome) Err() error {
	switch o.Status {
	case SubmitPasswordMismatch:
		return ErrPasswordMismatch
	case SubmitDuplicateEmail:
		return directory.ErrDuplicateEmail
	default:
		return nil
	}
}

// Controller wires the step wizard, field validation and the user directory
// into the concrete signup flow. It is rebuilt from session state on each
// request; all failure outcomes leave wizard and directory untouched.
type Controller struct {
	wizard *wizard.Wizard
	dir    directory.Directory
	form   Form
}

// NewController creates a signup controller positioned at the identity step.
func NewController(dir directory.Directory) *Controller {
	// the step list is a non-empty constant, so New cannot fail
	w, _ := wizard.New(Steps()...)
	return &Controller{wizard: w, dir: dir}
}

// Restore rehydrates wizard position and form values from session state.
func (c *Controller) Restore(stepIndex int, form Form) error {
	if err := c.wizard.Restore(stepIndex); err != nil {
		return err
	}
	c.form = form
	return nil
}

// Current returns the active step.
func (c *Controller) Current() wizard.StepID {
	return c.wizard.Current()
}

// StepIndex returns the active step's position.
func (c *Controller) StepIndex() int {
	return c.wizard.Index()
}

// Form returns the last field values the controller saw.
func (c *Controller) Form() Form {
	return c.form
}

// AttemptAdvance validates the current step's required fields and, on the
// identity step, refuses duplicate emails before moving forward.
//
// The ordering matters: an empty email must never be looked up in the
// directory, and a duplicate must never reach the password step.
func (c *Controller) AttemptAdvance(form Form) AdvanceOutcome {
	c.form = form

	step := c.wizard.Current()
	result := ValidateRequiredFields(form.fieldValues(), requiredForStep(step)...)
	if !result.Valid {
		return AdvanceOutcome{
			Reason:       BlockMissingFields,
			FailedFields: result.FailedFields,
			Step:         step,
			StepIndex:    c.wizard.Index(),
		}
	}

	if step == StepIdentity && c.dir.Exists(form.Email) {
		return AdvanceOutcome{
			Reason:    BlockDuplicateEmail,
			Step:      step,
			StepIndex: c.wizard.Index(),
		}
	}

	// Gating is complete, so the wizard guard is a pass-through. At the
	// final step there is no next step and the attempt reports Advanced
	// false with no reason.
	advanced := c.wizard.Advance(func() bool { return true })
	return AdvanceOutcome{
		Advanced:  advanced,
		Step:      c.wizard.Current(),
		StepIndex: c.wizard.Index(),
	}
}

// AttemptRetreat moves one step back. Backward navigation is never gated.
func (c *Controller) AttemptRetreat() bool {
	return c.wizard.Retreat()
}

// Submit performs the final registration: exact password comparison, a
// defense-in-depth duplicate re-check (step-0 gating can be bypassed by
// submitting directly), then registration and a reset to the first step.
func (c *Controller) Submit(form Form) SubmitOutcome {
	c.form = form

	if form.Password != form.ConfirmPassword {
		return SubmitOutcome{Status: SubmitPasswordMismatch}
	}

	if c.dir.Exists(form.Email) {
		return SubmitOutcome{Status: SubmitDuplicateEmail}
	}

	identity := directory.Identity{
		Email:    form.Email,
		Username: form.Username,
		Password: form.Password,
	}
	if err := c.dir.Register(identity); err != nil {
		// Register re-checks under its own lock; a failure here means the
		// email was taken after all and must surface, never register silently.
		return SubmitOutcome{Status: SubmitDuplicateEmail}
	}

	c.wizard.Reset()
	c.form = Form{}
	return SubmitOutcome{Status: SubmitSuccess, Identity: &identity}
}
