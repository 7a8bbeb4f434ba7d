package intake

type SelectProcessInput struct {
	ProcessType string `json:"process_type" binding:"required,oneof=new ongoing"`
}

type AddEntryInput struct {
	List string `json:"list" binding:"required,oneof=tattoos travels relatives"`
}

type UpdateEntryInput struct {
	List  string `json:"list" binding:"required,oneof=tattoos travels relatives"`
	ID    string `json:"id" binding:"required"`
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type RemoveEntryInput struct {
	List string `json:"list" binding:"required,oneof=tattoos travels relatives"`
	ID   string `json:"id" binding:"required"`
}

// SessionView is what the wizard front end renders: the draft plus the
// derived step/progress state.
type SessionView struct {
	ID          uint         `json:"id"`
	ProcessType string       `json:"process_type"`
	Step        int          `json:"step"`
	TotalSteps  int          `json:"total_steps"`
	Progress    int          `json:"progress"`
	State       SessionState `json:"state"`
	Record      Record       `json:"record"`
	LastError   string       `json:"last_error,omitempty"`
}
