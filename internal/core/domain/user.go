package domain

import "time"

// User models an account holder. Exactly one user is "current" at a time,
// owned by the session service.
type User struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Name             string    `json:"name" bson:"name"`
	Email            string    `json:"email" bson:"email"`
	Company          string    `json:"company" bson:"company"`
	Tier             Tier      `json:"tier" bson:"tier"`
	SubscriptionDate time.Time `json:"subscription_date" bson:"subscription_date"`
	PasswordHash     string    `json:"-" bson:"password_hash"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
