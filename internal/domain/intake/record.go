package intake

import "github.com/google/uuid"

// Sub-list names accepted by the entry operations.
const (
	ListTattoos   = "tattoos"
	ListTravels   = "travels"
	ListRelatives = "relatives"
)

// TattooEntry, TravelEntry and RelativeEntry carry a locally generated id used
// only for list-editing identity. It is never persisted as a remote key.
type TattooEntry struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}

type TravelEntry struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Country   string `json:"country"`
	Reason    string `json:"reason"`
}

type RelativeEntry struct {
	ID              string `json:"id"`
	Relationship    string `json:"relationship"`
	FullName        string `json:"full_name"`
	ResidencyStatus string `json:"residency_status"`
}

// Record holds every field of both intake variants as a flat superset. Fields
// irrelevant to the selected process type stay present but are ignored at
// submission time.
type Record struct {
	// Personal data (both variants)
	FullName       string `json:"full_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passport_number"`
	PassportExpiry string `json:"passport_expiry"`

	// Address (both variants)
	Province   string `json:"province"`
	City       string `json:"city"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`

	// New-process fields
	EntryDate                string          `json:"entry_date"`
	EntryPort                string          `json:"entry_port"`
	VisaType                 string          `json:"visa_type"`
	HasTattoos               bool            `json:"has_tattoos"`
	Tattoos                  []TattooEntry   `json:"tattoos"`
	HasTraveledLastFiveYears bool            `json:"has_traveled_last_five_years"`
	Travels                  []TravelEntry   `json:"travels"`
	HasRelativesInCountry    bool            `json:"has_relatives_in_country"`
	Relatives                []RelativeEntry `json:"relatives"`

	// Ongoing-process fields
	ExpedientNumber  string `json:"expedient_number"`
	CurrentStage     string `json:"current_stage"`
	ProcessStartDate string `json:"process_start_date"`
	Notes            string `json:"notes"`

	AcceptTerms bool `json:"accept_terms"`
}

func newEntryID() string {
	return uuid.New().String()
}

// AddEntry appends a blank entry to the named sub-list and returns its id.
// Unknown list names report ok=false.
func (r *Record) AddEntry(list string) (id string, ok bool) {
	id = newEntryID()
	switch list {
	case ListTattoos:
		r.Tattoos = append(r.Tattoos, TattooEntry{ID: id})
	case ListTravels:
		r.Travels = append(r.Travels, TravelEntry{ID: id})
	case ListRelatives:
		r.Relatives = append(r.Relatives, RelativeEntry{ID: id})
	default:
		return "", false
	}
	return id, true
}

// UpdateEntry replaces exactly one field of the entry with the given id.
// Unknown ids and unknown field names are silently ignored.
func (r *Record) UpdateEntry(list, id, field, value string) {
	switch list {
	case ListTattoos:
		for i := range r.Tattoos {
			if r.Tattoos[i].ID != id {
				continue
			}
			if field == "location" {
				r.Tattoos[i].Location = value
			}
			return
		}
	case ListTravels:
		for i := range r.Travels {
			if r.Travels[i].ID != id {
				continue
			}
			switch field {
			case "start_date":
				r.Travels[i].StartDate = value
			case "end_date":
				r.Travels[i].EndDate = value
			case "country":
				r.Travels[i].Country = value
			case "reason":
				r.Travels[i].Reason = value
			}
			return
		}
	case ListRelatives:
		for i := range r.Relatives {
			if r.Relatives[i].ID != id {
				continue
			}
			switch field {
			case "relationship":
				r.Relatives[i].Relationship = value
			case "full_name":
				r.Relatives[i].FullName = value
			case "residency_status":
				r.Relatives[i].ResidencyStatus = value
			}
			return
		}
	}
}

// RemoveEntry filters out the entry with the given id. No-op when missing.
func (r *Record) RemoveEntry(list, id string) {
	switch list {
	case ListTattoos:
		kept := r.Tattoos[:0]
		for _, e := range r.Tattoos {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		r.Tattoos = kept
	case ListTravels:
		kept := r.Travels[:0]
		for _, e := range r.Travels {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		r.Travels = kept
	case ListRelatives:
		kept := r.Relatives[:0]
		for _, e := range r.Relatives {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		r.Relatives = kept
	}
}
