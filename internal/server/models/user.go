package models

// User is an account row. PasswordHash is a bcrypt digest; the plaintext
// password never leaves the service layer.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash []byte
}
