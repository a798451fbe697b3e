package user

import "time"

// User entity. Currently used for auth only; account management lives
// outside this service.
type User struct {
	id           int64
	loginID      string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
}

func ReconstructUser(id int64, loginID, email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		loginID:      loginID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) LoginID() string      { return u.loginID }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
