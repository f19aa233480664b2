package auth

const (
	FirestoreUsersCollection = "users"
)

// Principal is the authenticated identity attached to a request. IsAdmin is
// resolved by reading the principal's own document in the users collection on
// session verification, and gates every mutating repository operation.
type Principal struct {
	ID      string `json:"id" mapstructure:"id"`
	Email   string `json:"email" mapstructure:"email"`
	IsAdmin bool   `json:"isAdmin" mapstructure:"isAdmin"`
}

// CreateSessionRequest is the parameter struct for the CreateSession function.
type CreateSessionRequest struct {
	Token string `json:"token"`
}
