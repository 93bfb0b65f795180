// Package sessions manages the refresh sessions behind the admin area.
// There are no user accounts in this system; every session belongs to the
// one configured admin, and the subject it was minted for is stored so a
// refresh token can be rejected if it was ever issued for anything else.
package sessions

import "time"

// Session is one admin refresh session. The refresh token is the lookup
// key; the session is dead once ExpiresAt passes, whether or not the
// backing store has purged it yet.
type Session struct {
	RefreshToken string    `bson:"refreshToken" json:"refreshToken"`
	Subject      string    `bson:"subject" json:"subject"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt    time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
