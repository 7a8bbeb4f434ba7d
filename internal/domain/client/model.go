package client

import (
	"gorm.io/gorm"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusOnHold   ClientStatus = "on_hold"
	ClientStatusFinished ClientStatus = "finished"
)

// Client is the base identity row created for every intake, regardless of
// process type. Completed marks a finished intake and feeds the duplicate
// guard.
type Client struct {
	gorm.Model
	UserID         uint         `json:"user_id" gorm:"index"`
	FullName       string       `json:"full_name" gorm:"size:150;not null"`
	LastName       string       `json:"last_name" gorm:"size:100"`
	Email          string       `json:"email" gorm:"size:100"`
	Phone          string       `json:"phone" gorm:"size:30"`
	BirthDate      string       `json:"birth_date" gorm:"size:20"`
	Nationality    string       `json:"nationality" gorm:"size:60"`
	PassportNumber string       `json:"passport_number" gorm:"size:40"`
	ProcessType    string       `json:"process_type" gorm:"size:20"`
	Completed      bool         `json:"completed" gorm:"default:false;index"`
	Status         ClientStatus `json:"status" gorm:"size:20;default:'active'"`
}

// NewProcessDetail is the extended-detail row for clients starting a
// residence process from scratch.
type NewProcessDetail struct {
	gorm.Model
	ClientID                 uint   `json:"client_id" gorm:"index;not null"`
	PassportExpiry           string `json:"passport_expiry" gorm:"size:20"`
	Province                 string `json:"province" gorm:"size:80"`
	City                     string `json:"city" gorm:"size:80"`
	Address                  string `json:"address" gorm:"size:200"`
	PostalCode               string `json:"postal_code" gorm:"size:20"`
	EntryDate                string `json:"entry_date" gorm:"size:20"`
	EntryPort                string `json:"entry_port" gorm:"size:80"`
	VisaType                 string `json:"visa_type" gorm:"size:60"`
	HasTattoos               bool   `json:"has_tattoos"`
	HasTraveledLastFiveYears bool   `json:"has_traveled_last_five_years"`
	HasRelativesInCountry    bool   `json:"has_relatives_in_country"`
}

// OngoingProcessDetail registers the current state of a process started
// outside the platform.
type OngoingProcessDetail struct {
	gorm.Model
	ClientID         uint   `json:"client_id" gorm:"index;not null"`
	FirstName        string `json:"first_name" gorm:"size:80"`
	LastName         string `json:"last_name" gorm:"size:100"`
	ExpedientNumber  string `json:"expedient_number" gorm:"size:60"`
	CurrentStage     string `json:"current_stage" gorm:"size:60"`
	ProcessStartDate string `json:"process_start_date" gorm:"size:20"`
	Notes            string `json:"notes" gorm:"type:text"`
}

// Tattoo, Travel and Relative rows are bulk-inserted from the wizard's
// sub-lists at submission time.
type Tattoo struct {
	gorm.Model
	ClientID uint   `json:"client_id" gorm:"index;not null"`
	Location string `json:"location" gorm:"size:120"`
}

type Travel struct {
	gorm.Model
	ClientID  uint   `json:"client_id" gorm:"index;not null"`
	StartDate string `json:"start_date" gorm:"size:20"`
	EndDate   string `json:"end_date" gorm:"size:20"`
	Country   string `json:"country" gorm:"size:60"`
	Reason    string `json:"reason" gorm:"size:200"`
}

type Relative struct {
	gorm.Model
	ClientID        uint   `json:"client_id" gorm:"index;not null"`
	Relationship    string `json:"relationship" gorm:"size:60"`
	FullName        string `json:"full_name" gorm:"size:150"`
	ResidencyStatus string `json:"residency_status" gorm:"size:60"`
}
