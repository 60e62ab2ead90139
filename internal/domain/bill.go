package domain

import "time"

// Payment methods
const (
	PaymentCash   = "CASH"
	PaymentCredit = "CREDIT"
)

// Sale statuses
const (
	SalePaid   = "PAID"
	SaleVoid   = "VOID"
	SaleRefund = "REFUND"
)

// Sync statuses (stored verbatim, never transitioned server-side)
const (
	SyncPending = "PENDING"
	SyncSuccess = "SUCCESS"
	SyncFailed  = "FAILED"
)

// Bill Model. TotalAmount is supplied by the client and stored verbatim;
// the server does not recompute it from the items.
type Bill struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	InvoiceNo     string     `gorm:"size:50;not null;index" json:"invoiceNo"`
	Date          time.Time  `gorm:"not null;index" json:"date"`
	CustomerID    *uint      `gorm:"index" json:"customerId"` // Nullable, cash sales need no customer
	Customer      *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PaymentMethod string     `gorm:"size:10;not null" json:"paymentMethod"` // CASH or CREDIT
	SaleStatus    string     `gorm:"size:10;not null" json:"saleStatus"`    // PAID, VOID or REFUND
	SyncStatus    string     `gorm:"size:10;default:PENDING" json:"syncStatus"`
	TotalAmount   float64    `gorm:"not null" json:"totalAmount"`
	BillItems     []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"billItems"` // Item set fully owned by the bill
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BillItem Model. Total is trusted as-given (quantity x price is computed
// by the client, not re-validated here).
type BillItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	BillID    uint     `gorm:"not null;index" json:"billId"`
	Bill      *Bill    `gorm:"foreignKey:BillID" json:"bill,omitempty"`
	ProductID uint     `gorm:"not null;index" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"not null" json:"price"`
	Total     float64  `gorm:"not null" json:"total"`
}
