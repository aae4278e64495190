package domain

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Hash  string `json:"passwordHash"`
	Role  string `json:"role"` // USER | ADMIN
}

// Session binds a browser sid cookie to a user id. A session with an empty
// UserID is logged out but still known.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}
