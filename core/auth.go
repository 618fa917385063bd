package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// AuthService implements the account operations: sign-up, sign-in, profile
// retrieval/update/delete and the admin user listing. It composes the
// password hasher, the session codec and the user store.
type AuthService struct {
	db        UserStorage
	passwords PasswordHandler
	codec     SessionCodec
}

func NewAuthService(db UserStorage, passwords PasswordHandler, codec SessionCodec) *AuthService {
	return &AuthService{
		db:        db,
		passwords: passwords,
		codec:     codec,
	}
}

// SignUpInput contains the data needed to register a new user
type SignUpInput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"isAdmin"`
}

// SignUp registers a new user with email and password and issues the first
// session token.
func (s *AuthService) SignUp(input SignUpInput) (*User, string, error) {
	if input.Email == "" || input.FirstName == "" || input.LastName == "" || input.Password == "" {
		return nil, "", ErrFieldsRequired
	}

	// Step 1: Check if the email is already registered
	existingUser, err := s.db.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrUserExists
	}

	// Step 2: Hash the password
	hashedPassword, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the user
	user := &User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  hashedPassword,
		IsAdmin:   input.IsAdmin,
	}

	if err := s.db.CreateUser(user); err != nil {
		return nil, "", err
	}

	// Step 4: Issue a session token for the new user
	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn authenticates a user with email and password. Unknown email and
// wrong password collapse into the same generic failure so the response
// never reveals which field was wrong.
func (s *AuthService) SignIn(input SignInInput) (*User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", ErrFieldsRequired
	}

	user, err := s.db.GetUserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := s.passwords.Verify(input.Password, user.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Profile returns the account record for the authenticated user.
func (s *AuthService) Profile(userID string) (*User, error) {
	user, err := s.db.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput carries the partial fields of a profile update. Empty
// fields are left unchanged.
type UpdateProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// UpdateProfile applies a partial update to the authenticated user's record.
// A new password is hashed before it crosses the store boundary.
func (s *AuthService) UpdateProfile(userID string, input UpdateProfileInput) (*User, error) {
	user, err := s.db.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Password != "" {
		hashedPassword, err := s.passwords.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashedPassword
	}

	if err := s.db.UpdateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the authenticated user's record.
func (s *AuthService) DeleteAccount(userID string) error {
	if _, err := s.db.GetUserByID(userID); err != nil {
		return err
	}
	return s.db.DeleteUser(userID)
}

// ListUsers returns one page of the user listing along with the total user
// count and the number of pages at the given page size.
func (s *AuthService) ListUsers(page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	count, err := s.db.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.db.ListUsers((page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &UserPage{
		UsersCount: count,
		Users:      users,
		PageCount:  (count + limit - 1) / limit,
	}, nil
}

// DefaultPageSize is the page size of the user listing when the request
// does not specify one.
const DefaultPageSize = 4
