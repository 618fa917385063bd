package core

// Ports define interfaces for external dependencies

// UserStorage defines user-related database operations.
// Implementations return ErrUserNotFound for absent records and
// ErrUserExists for unique email violations.
type UserStorage interface {
	CreateUser(u *User) error
	GetUserByID(id string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateUser(u *User) error
	DeleteUser(id string) error
	CountUsers() (int, error)
	ListUsers(offset, limit int) ([]*User, error)
}

// SessionCodec issues and verifies the stateless session tokens carried in
// the session cookie. Verify returns the subject user id encoded in the
// token; any malformed, tampered or expired token fails verification.
type SessionCodec interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// PasswordHandler hashes plaintext passwords and verifies candidates
// against a stored hash in constant time.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}
