package domain

import "time"

// ProductCategory Model. Name uniqueness is enforced by an explicit
// existence check in the handler, not by a database constraint.
type ProductCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Product Model. StockQty is set directly via the stock endpoint and is
// never decremented on sale by the server.
type Product struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	CategoryID       uint             `gorm:"not null;index" json:"categoryId"`
	Category         *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CompanyName      string           `gorm:"size:100;not null" json:"companyName"`
	ItemCode         string           `gorm:"size:50;not null;index" json:"itemCode"`
	ItemName         string           `gorm:"size:150;not null" json:"itemName"`
	TechnicalName    string           `gorm:"size:150" json:"technicalName"`
	StockQty         int              `gorm:"not null;default:0" json:"stockQty"`
	SubItemContainer bool             `gorm:"default:false" json:"subItemContainer"` // Unused downstream
	BillItems        []BillItem       `gorm:"foreignKey:ProductID" json:"billItems,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// LowStockThreshold marks products that appear on the low-stock report.
const LowStockThreshold = 10
