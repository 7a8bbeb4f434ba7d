package client

type UpdateClientInput struct {
	FullName *string `json:"full_name"`
	LastName *string `json:"last_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status" binding:"omitempty,oneof=active on_hold finished"`
}

// Detail bundles the base row with its process-specific extension and the
// sub-list rows for the admin view.
type Detail struct {
	Client    Client                `json:"client"`
	New       *NewProcessDetail     `json:"new_process,omitempty"`
	Ongoing   *OngoingProcessDetail `json:"ongoing_process,omitempty"`
	Tattoos   []Tattoo              `json:"tattoos,omitempty"`
	Travels   []Travel              `json:"travels,omitempty"`
	Relatives []Relative            `json:"relatives,omitempty"`
}
