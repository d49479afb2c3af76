package models

// UserProfile is the single registered identity. Password holds a bcrypt
// hash, never the plain text; it is serialized only so the profile survives
// a restart under the "user" store key. Handlers must return Public()
// copies, not the raw profile.
type UserProfile struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
}

// Public returns a copy safe to serialize in API responses: the credential
// hash is dropped (omitempty keeps it out of the JSON entirely).
func (p UserProfile) Public() UserProfile {
	p.Password = ""
	return p
}
