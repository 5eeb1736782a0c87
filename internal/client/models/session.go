package models

// Session is the authenticated identity for the current run. It is persisted
// as JSON under the "currentUser" settings key and destroyed on logout.
type Session struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
