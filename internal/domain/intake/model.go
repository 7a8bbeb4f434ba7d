package intake

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionState string

const (
	SessionStateSelection SessionState = "selection"
	SessionStateActive    SessionState = "active"
	SessionStateBlocked   SessionState = "blocked"
	SessionStateSubmitted SessionState = "submitted"
	SessionStateFailed    SessionState = "failed"
)

// Session is the durable wizard instance of one user filling the intake form.
// The form record is stored as a JSON snapshot so partially filled drafts
// survive restarts and device switches.
type Session struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index"`
	ProcessType string         `json:"process_type" gorm:"size:20"`
	Step        int            `json:"step" gorm:"default:1"`
	State       SessionState   `json:"state" gorm:"size:20;default:'selection'"`
	Record      datatypes.JSON `json:"record"`
	LastError   string         `json:"last_error" gorm:"type:text"`
	ClientID    *uint          `json:"client_id"`
}

// DecodeRecord unmarshals the stored form snapshot. An empty column yields a
// zero record.
func (s *Session) DecodeRecord() (Record, error) {
	var r Record
	if len(s.Record) == 0 {
		return r, nil
	}
	err := json.Unmarshal(s.Record, &r)
	return r, err
}

// EncodeRecord stores the form snapshot back onto the session.
func (s *Session) EncodeRecord(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	s.Record = datatypes.JSON(data)
	return nil
}
