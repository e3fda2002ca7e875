package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session représente une session authentifiée. La source primaire est
// Redis, la collection sessions sert de repli quand Redis est absent.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Token     string             `bson:"token" json:"token"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role      string             `bson:"role" json:"role"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
}

// IsExpired indique si la session a dépassé sa date d'expiration
func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
