package domain

import "time"

// Customer Model
type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	PinCode       string    `gorm:"size:10" json:"pinCode"`
	ContactNumber string    `gorm:"size:15;not null;index" json:"contactNumber"` // POS lookup key
	Bills         []Bill    `gorm:"foreignKey:CustomerID" json:"bills,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
