package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account known to the platform. Credentials are held by
// the external identity provider.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	Active      bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile holds display metadata for a user. Exactly one per user.
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName *string   `json:"display_name,omitempty"`
	Bio         string    `json:"bio"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Website     *string   `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Name returns the display name, or the username when none is set.
func (p *Profile) Name(u *User) string {
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return u.Username
}

// AccountInput carries the fields needed to provision an account.
type AccountInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	DisplayName *string `json:"display_name"`
	Bio         string  `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	Website     *string `json:"website"`
}

// NewAccount builds a user together with its empty profile. Every code path
// that creates a user must go through here so the pair always exists.
func NewAccount(in AccountInput, now time.Time) (*User, *Profile) {
	now = now.UTC()
	u := &User{
		ID:          uuid.New().String(),
		Username:    in.Username,
		Email:       in.Email,
		IsStaff:     in.IsStaff,
		IsSuperuser: in.IsSuperuser,
		Active:      true,
		CreatedAt:   now,
	}
	p := &Profile{
		UserID:    u.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u, p
}

// NoSession is the session identifier used when the provider supplied none.
const NoSession = "nosession"

// Identity is the caller as reported by the identity/session provider.
type Identity struct {
	UserID    string
	SessionID string
}

// Authenticated reports whether the caller is a known user.
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// Session returns the session identifier, substituting NoSession.
func (i Identity) Session() string {
	if i.SessionID == "" {
		return NoSession
	}
	return i.SessionID
}

// PublicProfile is what anyone may see about a user.
type PublicProfile struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Website     *string   `json:"website,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// NewPublicProfile combines a user with their profile.
func NewPublicProfile(u *User, p *Profile) *PublicProfile {
	return &PublicProfile{
		Username:    u.Username,
		DisplayName: p.Name(u),
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		Website:     p.Website,
		JoinedAt:    u.CreatedAt,
	}
}
