package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --------------------- TotalSteps ---------------------
func TestTotalSteps(t *testing.T) {
	assert.Equal(t, 7, TotalSteps(ProcessTypeNew))
	assert.Equal(t, 7, TotalSteps(ProcessTypeOngoing))
	assert.Equal(t, 1, TotalSteps(ProcessTypeNone))
	assert.Equal(t, 1, TotalSteps(ProcessType("bogus")))
}

// --------------------- SelectProcess ---------------------
func TestSelectProcess_ResetsRecordAndStep(t *testing.T) {
	w := Wizard{
		ProcessType: ProcessTypeOngoing,
		Step:        5,
		Record:      Record{FullName: "Old Name", ExpedientNumber: "X-1"},
	}

	w.SelectProcess(ProcessTypeNew)

	assert.Equal(t, ProcessTypeNew, w.ProcessType)
	assert.Equal(t, 1, w.Step)
	assert.Equal(t, Record{}, w.Record)
}

// --------------------- Next / Previous ---------------------
func TestNext_NoProcessSelected(t *testing.T) {
	w := Wizard{}
	assert.ErrorIs(t, w.Next(), ErrNoProcessSelected)
	assert.Equal(t, 0, w.Step)
}

func TestNext_AdvancesToFinalStep(t *testing.T) {
	w := Wizard{ProcessType: ProcessTypeOngoing, Step: 1}

	for i := 2; i <= 7; i++ {
		assert.NoError(t, w.Next())
		assert.Equal(t, i, w.Step)
	}

	assert.True(t, w.OnFinalStep())
	assert.ErrorIs(t, w.Next(), ErrFinalStep)
	assert.Equal(t, 7, w.Step)
}

func TestPrevious_FlooredAtOne(t *testing.T) {
	w := Wizard{ProcessType: ProcessTypeNew, Step: 2}

	w.Previous()
	assert.Equal(t, 1, w.Step)

	w.Previous()
	assert.Equal(t, 1, w.Step)
}

func TestPrevious_SkipsValidation(t *testing.T) {
	// Step back from the tattoo step with an incomplete entry: allowed.
	w := Wizard{
		ProcessType: ProcessTypeNew,
		Step:        4,
		Record: Record{
			HasTattoos: true,
			Tattoos:    []TattooEntry{{ID: "a"}},
		},
	}

	w.Previous()
	assert.Equal(t, 3, w.Step)
}

// --------------------- ValidateStep ---------------------
func TestValidateStep_OngoingNeverValidates(t *testing.T) {
	w := Wizard{
		ProcessType: ProcessTypeOngoing,
		Step:        4,
		Record: Record{
			HasTattoos: true,
			Tattoos:    []TattooEntry{{ID: "a"}}, // would fail on the new branch
		},
	}
	assert.NoError(t, w.ValidateStep())
}

func TestValidateStep_Tattoos(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{
			name:   "flag off ignores incomplete entries",
			record: Record{HasTattoos: false, Tattoos: []TattooEntry{{ID: "a"}}},
		},
		{
			name:   "flag on with empty list passes",
			record: Record{HasTattoos: true},
		},
		{
			name: "complete entries pass",
			record: Record{HasTattoos: true, Tattoos: []TattooEntry{
				{ID: "a", Location: "left arm"},
				{ID: "b", Location: "back"},
			}},
		},
		{
			name: "blank location fails",
			record: Record{HasTattoos: true, Tattoos: []TattooEntry{
				{ID: "a", Location: "left arm"},
				{ID: "b", Location: "   "},
			}},
			wantErr: ErrTattooIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Wizard{ProcessType: ProcessTypeNew, Step: 4, Record: tt.record}
			err := w.ValidateStep()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStep_Travels(t *testing.T) {
	complete := TravelEntry{ID: "a", StartDate: "2021-01-01", EndDate: "2021-02-01", Country: "France", Reason: "tourism"}

	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{
			name:   "flag off skips",
			record: Record{Travels: []TravelEntry{{ID: "a"}}},
		},
		{
			name:   "complete entry passes",
			record: Record{HasTraveledLastFiveYears: true, Travels: []TravelEntry{complete}},
		},
		{
			name: "missing country fails",
			record: Record{HasTraveledLastFiveYears: true, Travels: []TravelEntry{
				{ID: "a", StartDate: "2021-01-01", EndDate: "2021-02-01", Reason: "tourism"},
			}},
			wantErr: ErrTravelIncomplete,
		},
		{
			name: "missing reason fails",
			record: Record{HasTraveledLastFiveYears: true, Travels: []TravelEntry{
				{ID: "a", StartDate: "2021-01-01", EndDate: "2021-02-01", Country: "France"},
			}},
			wantErr: ErrTravelIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Wizard{ProcessType: ProcessTypeNew, Step: 5, Record: tt.record}
			err := w.ValidateStep()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStep_Relatives(t *testing.T) {
	w := Wizard{ProcessType: ProcessTypeNew, Step: 6, Record: Record{
		HasRelativesInCountry: true,
		Relatives: []RelativeEntry{
			{ID: "a", Relationship: "brother", FullName: "Juan Perez", ResidencyStatus: "resident"},
			{ID: "b", Relationship: "aunt", FullName: "Ana Perez"},
		},
	}}
	assert.ErrorIs(t, w.ValidateStep(), ErrRelativeIncomplete)

	w.Record.Relatives[1].ResidencyStatus = "citizen"
	assert.NoError(t, w.ValidateStep())
}

func TestNext_BlockedByStepValidation(t *testing.T) {
	w := Wizard{
		ProcessType: ProcessTypeNew,
		Step:        4,
		Record:      Record{HasTattoos: true, Tattoos: []TattooEntry{{ID: "a"}}},
	}

	assert.ErrorIs(t, w.Next(), ErrTattooIncomplete)
	assert.Equal(t, 4, w.Step)
}

// --------------------- SplitFullName ---------------------
func TestSplitFullName(t *testing.T) {
	tests := []struct {
		in          string
		first, last string
	}{
		{"Maria Garcia Lopez", "Maria", "Garcia Lopez"},
		{"Maria", "Maria", ""},
		{"  Maria   Garcia  ", "Maria", "Garcia"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tt := range tests {
		first, last := SplitFullName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}
