package entity

import "time"

// User is the identity record stored under /usuarios/{uid} in the document tree.
// The UID is a one-way sanitized transform of the email and must stay
// reconstructible from the email alone.
type User struct {
	UID        string `json:"uid"`
	Email      string `json:"email"`
	Nome       string `json:"nome"`
	Verificado bool   `json:"verificado"`

	// Role is absent for regular users; EffectiveRole resolves the default.
	Role Role `json:"role,omitempty"`

	// PasswordHash is the bcrypt hash of the credential. It never leaves the
	// persistence boundary in API responses.
	PasswordHash string `json:"passwordHash,omitempty"`

	VerificationCode      string     `json:"verificationCode,omitempty"`
	VerificationExpiresAt *time.Time `json:"verificationExpiresAt,omitempty"`
	ResetCode             string     `json:"resetCode,omitempty"`
	ResetExpiresAt        *time.Time `json:"resetExpiresAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// EffectiveRole resolves the stored role, treating an absent role as RoleUser.
func (u *User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleUser
	}

	return u.Role
}

// Sanitized returns a copy safe for API responses: credential hash and
// one-time codes stripped.
func (u *User) Sanitized() *User {
	out := *u
	out.PasswordHash = ""
	out.VerificationCode = ""
	out.VerificationExpiresAt = nil
	out.ResetCode = ""
	out.ResetExpiresAt = nil

	return &out
}

// Actor is the identity asserted by the caller of a lifecycle command.
// The engine gates transitions on Actor.Role as presented; it does not
// re-read the role from storage.
type Actor struct {
	UID   string
	Nome  string
	Email string
	Role  Role
}

// Profile is the per-user attribute document (photo, theme preference)
// kept in the attribute store, decoupled from the identity record.
type Profile struct {
	Photo     string    `json:"photo,omitempty" firestore:"photo,omitempty"`
	Theme     string    `json:"theme,omitempty" firestore:"theme,omitempty"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
