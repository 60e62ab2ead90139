package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/choukseaaryan/seed-store/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillItemCRUD(t *testing.T) {
	r, conn := setupRouter(t)
	f := newBillFixture(t, conn)
	bill := domain.Bill{
		InvoiceNo: "INV-5001", Date: time.Now(),
		PaymentMethod: domain.PaymentCash, SaleStatus: domain.SalePaid,
		SyncStatus: domain.SyncPending, TotalAmount: 0,
	}
	require.NoError(t, conn.Create(&bill).Error)

	w := doJSON(t, r, http.MethodPost, "/bill-items", gin.H{
		"billId":    bill.ID,
		"productId": f.wheat.ID,
		"quantity":  3,
		"price":     100.0,
		"total":     300.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.BillItem
	decode(t, w, &created)
	require.NotZero(t, created.ID)

	// findOne includes both sides of the relation
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/bill-items/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.BillItem
	decode(t, w, &fetched)
	require.NotNil(t, fetched.Product)
	require.NotNil(t, fetched.Bill)
	assert.Equal(t, "Wheat Seeds", fetched.Product.ItemName)
	assert.Equal(t, "INV-5001", fetched.Bill.InvoiceNo)

	// Partial update leaves the untouched fields alone; the total is never
	// recomputed from quantity x price
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/bill-items/%d", created.ID), gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	var updated domain.BillItem
	decode(t, w, &updated)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 300.0, updated.Total)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/bill-items/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/bill-items/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
