package models

import "time"

// User is a shadow record for the external user-management service; the ID
// is the subject claim of the JWT that service issues.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique" json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
