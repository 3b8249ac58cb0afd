package models

// Identity is the already-verified caller identity supplied by the session
// middleware. The core never validates credentials itself.
type Identity struct {
	Email    string `json:"userEmail"`
	Username string `json:"username"`
}
