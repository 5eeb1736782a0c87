package models

// Customer is owned by the remote store and resolved by exact email match
// within the current user's customer set before every invoice write.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
