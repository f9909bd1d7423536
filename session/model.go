package session

// Identity is the authenticated user as reported by the gvero backend.
// JSON tags follow the backend wire format.
type Identity struct {
	ID             int64  `json:"id"`
	DisplayName    string `json:"nome"`
	Email          string `json:"email"`
	Role           string `json:"tipo"`
	OrganizationID int64  `json:"empresa_id,omitempty"`
}

// Clone returns a copy of the identity, or nil for a nil receiver.
func (id *Identity) Clone() *Identity {
	if id == nil {
		return nil
	}
	clone := *id
	return &clone
}
