package domain

import "time"

// Supplier Model (standalone, no relations exercised elsewhere)
type Supplier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	PinCode       string    `gorm:"size:10" json:"pinCode"`
	ContactPerson string    `gorm:"size:100" json:"contactPerson"`
	ContactNumber string    `gorm:"size:15;not null" json:"contactNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
