package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/choukseaaryan/seed-store/internal/domain"
	"github.com/choukseaaryan/seed-store/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCustomers(t *testing.T, conn *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, conn.Create(&domain.Customer{
			Name:          fmt.Sprintf("Customer %02d", i),
			ContactNumber: fmt.Sprintf("90000000%02d", i),
		}).Error)
	}
}

func listCustomers(t *testing.T, r *gin.Engine, qs string) query.Result[domain.Customer] {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/customers"+qs, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res query.Result[domain.Customer]
	decode(t, w, &res)
	return res
}

func TestCustomerListPaginationContract(t *testing.T) {
	r, conn := setupRouter(t)
	seedCustomers(t, conn, 25)

	res := listCustomers(t, r, "?page=2&limit=10")
	assert.Len(t, res.Data, 10)
	assert.EqualValues(t, 25, res.Meta.Total)
	assert.Equal(t, 2, res.Meta.CurrentPage)
	assert.Equal(t, 3, res.Meta.LastPage) // ceil(25/10)
	assert.Equal(t, 10, res.Meta.PerPage)

	// Last page holds the remainder
	res = listCustomers(t, r, "?page=3&limit=10")
	assert.Len(t, res.Data, 5)

	// Beyond the last page the data is empty but the meta still answers
	res = listCustomers(t, r, "?page=9&limit=10")
	assert.Empty(t, res.Data)
	assert.Equal(t, 9, res.Meta.CurrentPage)
}

func TestCustomerListClampsPageAndLimit(t *testing.T) {
	r, conn := setupRouter(t)
	seedCustomers(t, conn, 5)

	// limit above the cap is clamped to 100
	res := listCustomers(t, r, "?limit=500")
	assert.Equal(t, 100, res.Meta.PerPage)

	// page and limit below their minimums are clamped up
	res = listCustomers(t, r, "?page=0&limit=0")
	assert.Equal(t, 1, res.Meta.CurrentPage)
	assert.Equal(t, 1, res.Meta.PerPage)
	assert.Len(t, res.Data, 1)
}

func TestCustomerListSearchAndSort(t *testing.T) {
	r, conn := setupRouter(t)
	require.NoError(t, conn.Create(&domain.Customer{Name: "John Doe", ContactNumber: "9876543210"}).Error)
	require.NoError(t, conn.Create(&domain.Customer{Name: "Jane Roe", ContactNumber: "9123456780"}).Error)
	require.NoError(t, conn.Create(&domain.Customer{Name: "Bob Stone", ContactNumber: "9000000001"}).Error)

	// Case-insensitive search across the text fields
	res := listCustomers(t, r, "?search=JOHN")
	require.Len(t, res.Data, 1)
	assert.Equal(t, "John Doe", res.Data[0].Name)

	// Search matches the contact number too
	res = listCustomers(t, r, "?search=9123")
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Jane Roe", res.Data[0].Name)

	// Empty search is ignored
	res = listCustomers(t, r, "?search=")
	assert.Len(t, res.Data, 3)

	// Explicit descending sort
	res = listCustomers(t, r, "?sortBy=name&sortOrder=desc")
	require.Len(t, res.Data, 3)
	assert.Equal(t, "John Doe", res.Data[0].Name)

	// An unknown sort field falls back to the default order, not an error
	res = listCustomers(t, r, "?sortBy=evil_column")
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Bob Stone", res.Data[0].Name)
}

func TestCustomerCRUD(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"name": "John", "contactNumber": "9876543210", "address": "123 Main St", "pinCode": "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Customer
	decode(t, w, &created)
	require.NotZero(t, created.ID)

	// Missing required fields fail validation before the service runs
	w = doJSON(t, r, http.MethodPost, "/customers", gin.H{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Partial update touches only the sent fields
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/customers/%d", created.ID), gin.H{"address": "456 Oak Ave"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated domain.Customer
	decode(t, w, &updated)
	assert.Equal(t, "456 Oak Ave", updated.Address)
	assert.Equal(t, "John", updated.Name)
	assert.Equal(t, "9876543210", updated.ContactNumber)

	// PUT aliases the same partial-update handler
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/customers/%d", created.ID), gin.H{"name": "Johnny"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/customers/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/customers/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
