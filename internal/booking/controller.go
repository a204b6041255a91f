// Package booking implements the appointment wizard: a three-step peer of
// the signup flow with required-field gating per step and no duplicate check.
package booking

import (
	"context"
	"fmt"

	"github.com/radiancespa/siteforms/internal/wizard"
)

// FieldID names a single appointment form input.
type FieldID string

const (
	FieldService       FieldID = "service"
	FieldPreferredDate FieldID = "preferred_date"
	FieldPreferredTime FieldID = "preferred_time"
	FieldName          FieldID = "name"
	FieldPhone         FieldID = "phone"
)

// Appointment wizard steps.
const (
	StepService  wizard.StepID = "service"
	StepSchedule wizard.StepID = "schedule"
	StepDetails  wizard.StepID = "details"
)

// Steps returns the ordered appointment step list.
func Steps() []wizard.StepID {
	return []wizard.StepID{StepService, StepSchedule, StepDetails}
}

func requiredForStep(step wizard.StepID) []FieldID {
	switch step {
	case StepService:
		return []FieldID{FieldService}
	case StepSchedule:
		return []FieldID{FieldPreferredDate, FieldPreferredTime}
	case StepDetails:
		return []FieldID{FieldName, FieldPhone}
	default:
		return nil
	}
}

func (f Form) fieldValues() map[FieldID]string {
	return map[FieldID]string{
		FieldService:       f.Service,
		FieldPreferredDate: f.PreferredDate,
		FieldPreferredTime: f.PreferredTime,
		FieldName:          f.Name,
		FieldPhone:         f.Phone,
	}
}

// missingFields returns the step's required fields whose value is the empty
// string. Values are not trimmed, same emptiness rule as signup.
func missingFields(step wizard.StepID, form Form) []FieldID {
	values := form.fieldValues()
	var failed []FieldID
	for _, id := range requiredForStep(step) {
		if values[id] == "" {
			failed = append(failed, id)
		}
	}
	return failed
}

// AdvanceOutcome is the result of one advance attempt.
type AdvanceOutcome struct {
	Advanced     bool          `json:"advanced"`
	FailedFields []FieldID     `json:"failed_fields,omitempty"`
	Step         wizard.StepID `json:"step"`
	StepIndex    int           `json:"step_index"`
}

// SubmitOutcome is the result of a final submission.
type SubmitOutcome struct {
	FailedFields []FieldID
	Appointment  *Appointment
}

// Controller drives the appointment wizard.
type Controller struct {
	wizard *wizard.Wizard
	repo   Repository
	form   Form
}

// NewController creates an appointment controller at the service step.
func NewController(repo Repository) *Controller {
	// the step list is a non-empty constant, so New cannot fail
	w, _ := wizard.New(Steps()...)
	return &Controller{wizard: w, repo: repo}
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

// AttemptAdvance moves forward when the current step's required fields are
// filled. Blocked attempts leave the wizard untouched.
func (c *Controller) AttemptAdvance(form Form) AdvanceOutcome {
	c.form = form

	step := c.wizard.Current()
	if failed := missingFields(step, form); len(failed) > 0 {
		return AdvanceOutcome{
			FailedFields: failed,
			Step:         step,
			StepIndex:    c.wizard.Index(),
		}
	}

	advanced := c.wizard.Advance(func() bool { return true })
	return AdvanceOutcome{
		Advanced:  advanced,
		Step:      c.wizard.Current(),
		StepIndex: c.wizard.Index(),
	}
}

// AttemptRetreat moves one step back, never gated.
func (c *Controller) AttemptRetreat() bool {
	return c.wizard.Retreat()
}

// Submit validates the final step's fields, records the appointment and
// resets the wizard. Failed submissions are no-ops.
func (c *Controller) Submit(ctx context.Context, form Form) (SubmitOutcome, error) {
	c.form = form

	if failed := missingFields(StepDetails, form); len(failed) > 0 {
		return SubmitOutcome{FailedFields: failed}, nil
	}

	appt, err := c.repo.Create(ctx, form)
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("booking: create appointment: %w", err)
	}

	c.wizard.Reset()
	c.form = Form{}
	return SubmitOutcome{Appointment: appt}, nil
}
