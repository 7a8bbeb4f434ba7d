package intake

import (
	"errors"
	"strings"
)

type ProcessType string

const (
	ProcessTypeNone    ProcessType = ""
	ProcessTypeNew     ProcessType = "new"
	ProcessTypeOngoing ProcessType = "ongoing"
)

// Steps of the "new" branch carrying sub-list validation.
const (
	stepTattoos   = 4
	stepTravels   = 5
	stepRelatives = 6
)

var (
	ErrNoProcessSelected = errors.New("no process type selected")
	ErrFinalStep         = errors.New("already at the final step")

	ErrTattooIncomplete   = errors.New("every tattoo entry needs a location")
	ErrTravelIncomplete   = errors.New("every travel entry needs start date, end date, country and reason")
	ErrRelativeIncomplete = errors.New("every relative entry needs relationship, full name and residency status")
)

// TotalSteps is a pure function of the process type: 7 for either branch,
// 1 while nothing is selected.
func TotalSteps(pt ProcessType) int {
	switch pt {
	case ProcessTypeNew, ProcessTypeOngoing:
		return 7
	default:
		return 1
	}
}

// Wizard sequences a user through the branching intake form. It owns the
// Record exclusively; persistence is the caller's concern.
type Wizard struct {
	ProcessType ProcessType
	Step        int
	Record      Record
}

// SelectProcess resets the record to defaults, keeps only the chosen type and
// enters step 1 of that branch.
func (w *Wizard) SelectProcess(pt ProcessType) {
	w.ProcessType = pt
	w.Step = 1
	w.Record = Record{}
}

// ValidateStep runs the step-local validation for the current step. Sub-list
// completeness is only enforced on the "new" branch.
func (w *Wizard) ValidateStep() error {
	if w.ProcessType != ProcessTypeNew {
		return nil
	}
	switch w.Step {
	case stepTattoos:
		if !w.Record.HasTattoos {
			return nil
		}
		for _, t := range w.Record.Tattoos {
			if strings.TrimSpace(t.Location) == "" {
				return ErrTattooIncomplete
			}
		}
	case stepTravels:
		if !w.Record.HasTraveledLastFiveYears {
			return nil
		}
		for _, t := range w.Record.Travels {
			if strings.TrimSpace(t.StartDate) == "" ||
				strings.TrimSpace(t.EndDate) == "" ||
				strings.TrimSpace(t.Country) == "" ||
				strings.TrimSpace(t.Reason) == "" {
				return ErrTravelIncomplete
			}
		}
	case stepRelatives:
		if !w.Record.HasRelativesInCountry {
			return nil
		}
		for _, r := range w.Record.Relatives {
			if strings.TrimSpace(r.Relationship) == "" ||
				strings.TrimSpace(r.FullName) == "" ||
				strings.TrimSpace(r.ResidencyStatus) == "" {
				return ErrRelativeIncomplete
			}
		}
	}
	return nil
}

// Next validates the current step and advances. At the final step it reports
// ErrFinalStep; submission is a separate operation.
func (w *Wizard) Next() error {
	if w.ProcessType == ProcessTypeNone {
		return ErrNoProcessSelected
	}
	if err := w.ValidateStep(); err != nil {
		return err
	}
	if w.Step >= TotalSteps(w.ProcessType) {
		return ErrFinalStep
	}
	w.Step++
	return nil
}

// Previous decrements the step, floored at 1. No validation runs.
func (w *Wizard) Previous() {
	if w.Step > 1 {
		w.Step--
	}
}

// OnFinalStep reports whether the wizard sits on its last step.
func (w *Wizard) OnFinalStep() bool {
	return w.Step >= TotalSteps(w.ProcessType)
}

// SplitFullName derives first and last name from a full name when no explicit
// last name was given: first token is the first name, the remainder the last.
func SplitFullName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
