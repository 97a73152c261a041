package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxNameLen = 50

// emailPattern is the minimal local@domain.tld shape accepted for accounts.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// User is an account holder. The password is kept only as a bcrypt hash and
// never serialized.
type User struct {
	Entity
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}

// NewUser validates all fields and constructs a User. The caller supplies
// the already-hashed password; plaintext never reaches the domain layer.
func NewUser(firstName, lastName, email, passwordHash string, isAdmin bool) (*User, error) {
	if err := validateName("first_name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("last_name", lastName); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, invalid("password", "is required")
	}
	return &User{
		Entity:       NewEntity(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}, nil
}

// UserUpdate carries the fields of a partial user update. Nil fields are
// left untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
}

// Apply validates the fields present in u and merges them into the user.
// On any validation failure the user is left unchanged.
func (usr *User) Apply(u UserUpdate) error {
	if u.FirstName != nil {
		if err := validateName("first_name", *u.FirstName); err != nil {
			return err
		}
	}
	if u.LastName != nil {
		if err := validateName("last_name", *u.LastName); err != nil {
			return err
		}
	}
	if u.Email != nil {
		if err := ValidateEmail(*u.Email); err != nil {
			return err
		}
	}
	if u.PasswordHash != nil && *u.PasswordHash == "" {
		return invalid("password", "is required")
	}

	if u.FirstName != nil {
		usr.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		usr.LastName = *u.LastName
	}
	if u.Email != nil {
		usr.Email = *u.Email
	}
	if u.PasswordHash != nil {
		usr.PasswordHash = *u.PasswordHash
	}
	if u.IsAdmin != nil {
		usr.IsAdmin = *u.IsAdmin
	}
	usr.Touch()
	return nil
}

func validateName(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return invalid(field, "is required")
	}
	if utf8.RuneCountInString(s) > maxNameLen {
		return invalid(field, "must be at most 50 characters")
	}
	return nil
}

// ValidateEmail checks the account email shape shared by construction,
// update, and registration paths.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return invalid("email", "must be a valid email address")
	}
	return nil
}
