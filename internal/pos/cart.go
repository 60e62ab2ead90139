// Package pos holds the point-of-sale cart: an in-memory, ordered list of
// product lines that is aggregated into a single bill-create request when
// the sale completes. Stock limits are checked against the product snapshot
// captured when the line was added, not against live stock.
package pos

import (
	"errors"
	"time"

	"github.com/choukseaaryan/seed-store/internal/api"
	"github.com/choukseaaryan/seed-store/internal/domain"
)

var (
	// ErrOutOfStock rejects adding a product with no known stock
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrStockExceeded rejects a quantity above the snapshot stock
	ErrStockExceeded = errors.New("quantity exceeds available stock")
	// ErrInvalidQuantity rejects quantities below one
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptyCart rejects completing a sale with nothing in the cart
	ErrEmptyCart = errors.New("cart is empty")
)

// ProductSnapshot freezes the product fields the cart needs at add time
type ProductSnapshot struct {
	ProductID uint
	ItemName  string
	Price     float64
	StockQty  int
}

// Line is one product entry in the cart
type Line struct {
	Product  ProductSnapshot
	Quantity int
}

// Total is quantity x unit price for this line
func (l Line) Total() float64 {
	return float64(l.Quantity) * l.Product.Price
}

// Cart aggregates lines plus the sale context (customer, payment method)
// until the sale completes
type Cart struct {
	lines         []Line
	customerID    *uint
	paymentMethod string
}

// New returns an empty cart with the default payment method
func New() *Cart {
	return &Cart{paymentMethod: domain.PaymentCash}
}

// SetCustomer attaches an optional customer to the sale
func (c *Cart) SetCustomer(id *uint) {
	c.customerID = id
}

// SetPaymentMethod switches between CASH and CREDIT
func (c *Cart) SetPaymentMethod(method string) {
	c.paymentMethod = method
}

// Add puts one unit of the product in the cart. Adding a product already
// present increments its line, capped at the stock snapshot taken when the
// line was created. Products with no stock are rejected outright.
func (c *Cart) Add(p ProductSnapshot) error {
	if p.StockQty <= 0 {
		return ErrOutOfStock
	}
	for i := range c.lines {
		if c.lines[i].Product.ProductID == p.ProductID {
			if c.lines[i].Quantity+1 > c.lines[i].Product.StockQty {
				return ErrStockExceeded
			}
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
	return nil
}

// SetQuantity updates a line to an explicit quantity within the snapshot
// stock. Unknown products are ignored.
func (c *Cart) SetQuantity(productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].Product.ProductID == productID {
			if quantity > c.lines[i].Product.StockQty {
				return ErrStockExceeded
			}
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Remove drops the product's line from the cart
func (c *Cart) Remove(productID uint) {
	for i := range c.lines {
		if c.lines[i].Product.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart content in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct product lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total sums quantity x price over all lines
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// Checkout builds the aggregate bill-create request for the current cart
// and resets cart, customer and payment method to their empty defaults.
// Nothing is persisted here; the caller fires the request.
func (c *Cart) Checkout(invoiceNo string, date time.Time) (*api.CreateBillRequest, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}
	items := make([]api.BillItemInput, len(c.lines))
	for i, l := range c.lines {
		items[i] = api.BillItemInput{
			ProductID: l.Product.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
			Total:     l.Total(),
		}
	}
	req := &api.CreateBillRequest{
		InvoiceNo:     invoiceNo,
		Date:          date,
		CustomerID:    c.customerID,
		PaymentMethod: c.paymentMethod,
		SaleStatus:    domain.SalePaid,
		SyncStatus:    domain.SyncPending,
		TotalAmount:   c.Total(),
		BillItems:     items,
	}
	// Reset to empty defaults for the next sale
	c.lines = nil
	c.customerID = nil
	c.paymentMethod = domain.PaymentCash
	return req, nil
}
