package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPhotoURL is assigned to users that did not provide a photo.
const DefaultPhotoURL = "default-profile.jpg"

// Gender values accepted for a user profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	FirstName    string    `json:"first_name" db:"first_name"` // Required first name
	LastName     *string   `json:"last_name" db:"last_name"`   // Optional last name
	Email        string    `json:"email" db:"email"`           // Unique lower-cased email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	Age          *int      `json:"age" db:"age"`               // Optional age, 7..100
	Gender       *string   `json:"gender" db:"gender"`         // Optional gender
	PhotoURL     string    `json:"photo_url" db:"photo_url"`   // Photo URL or placeholder
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// NewUser holds validated signup data ready to be persisted.
type NewUser struct {
	FirstName    string
	LastName     *string
	Email        string
	PasswordHash string
	Age          *int
	Gender       *string
	PhotoURL     string
}

// ProfileUpdate holds validated profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Age       *int
	Gender    *string
	PhotoURL  *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Age == nil && u.Gender == nil && u.PhotoURL == nil
}

// UserSummary is the public projection of a user shown in feeds and listings
// swagger:model UserSummary
type UserSummary struct {
	// example: 3f1c6f0e-6b8e-4a55-9d44-2d1b9f1f3a10
	UserID uuid.UUID `json:"userId"`

	// example: Jane
	FirstName string `json:"firstName"`

	// example: Doe
	LastName *string `json:"lastName,omitempty"`

	// example: 27
	Age *int `json:"age,omitempty"`

	// example: female
	Gender *string `json:"gender,omitempty"`

	// example: https://example.com/jane.jpg
	PhotoURL string `json:"photoUrl"`
}

// Profile is the caller's own view of their account
// swagger:model Profile
type Profile struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  *string   `json:"lastName,omitempty"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	PhotoURL  string    `json:"photoUrl"`
}

// Summary projects the user into its public view.
func (u *UserDB) Summary() UserSummary {
	return UserSummary{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Gender:    u.Gender,
		PhotoURL:  u.PhotoURL,
	}
}

// Profile projects the user into the owner's view.
func (u *UserDB) Profile() Profile {
	return Profile{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Age:       u.Age,
		Gender:    u.Gender,
		PhotoURL:  u.PhotoURL,
	}
}
