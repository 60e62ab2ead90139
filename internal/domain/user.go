package domain

import "time"

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User Model (consumed only by auth)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"` // Unique login key
	Password  string    `gorm:"size:100;not null" json:"-"`                 // Bcrypt hash, never serialized
	Name      string    `gorm:"size:100;not null" json:"name"`
	Role      string    `gorm:"size:10;default:USER" json:"role"` // ADMIN or USER
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the user shape returned to clients (no credential fields)
type Profile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
