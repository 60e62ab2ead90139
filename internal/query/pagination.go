// Package query implements the pagination contract shared by every list
// endpoint: {page, limit, search, sortBy, sortOrder} in, {data, meta} out.
package query

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination carries the list query parameters
type Pagination struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"` // asc or desc
}

// Fields declares, per resource, which columns the search touches and which
// client sort keys are honored. Unknown sort keys fall back to DefaultSort
// instead of reaching the database verbatim.
type Fields struct {
	Searchable  []string          // columns for the case-insensitive OR search
	Sortable    map[string]string // client sortBy key -> column
	DefaultSort string            // order clause used when sortBy is absent or unknown
}

// Meta describes one page of a paginated response
type Meta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	LastPage    int   `json:"lastPage"`
	PerPage     int   `json:"perPage"`
}

// Result is the response envelope of every list endpoint
type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Bind reads the pagination parameters from the request query, applying
// defaults and clamping limit to [1,100] and page to >= 1.
func Bind(c *gin.Context) Pagination {
	p := Pagination{Page: 1, Limit: DefaultLimit, SortOrder: "asc"}
	_ = c.ShouldBindQuery(&p) // Missing keys keep the defaults
	return p.clamped()
}

func (p Pagination) clamped() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if strings.ToLower(p.SortOrder) == "desc" {
		p.SortOrder = "desc"
	} else {
		p.SortOrder = "asc"
	}
	return p
}

// Offset computes the row offset for the requested page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SearchScope builds the case-insensitive OR search across the given
// columns. An empty search term leaves the query untouched.
func (p Pagination) SearchScope(columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Search == "" || len(columns) == 0 {
			return db
		}
		needle := "%" + strings.ToLower(p.Search) + "%"
		var clauses []string
		var args []any
		for _, col := range columns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, needle)
		}
		// Parenthesized so the OR group composes with other conditions
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// OrderClause resolves the requested sort against the allowlist, falling
// back to the resource default when sortBy is absent or unknown.
func (p Pagination) OrderClause(f Fields) string {
	if p.SortBy != "" {
		if col, ok := f.Sortable[p.SortBy]; ok {
			return col + " " + p.SortOrder
		}
	}
	return f.DefaultSort
}

// NewMeta computes the response meta, with lastPage = ceil(total/limit)
func NewMeta(total int64, p Pagination) Meta {
	lastPage := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{Total: total, CurrentPage: p.Page, LastPage: lastPage, PerPage: p.Limit}
}

// Paginate runs the count plus page query over db (which carries the model,
// any preloads and extra conditions) and wraps the rows in the contract
// envelope. Instantiated once per resource with its declared Fields.
func Paginate[T any](db *gorm.DB, p Pagination, f Fields) (*Result[T], error) {
	q := db.Scopes(p.SearchScope(f.Searchable...))
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	data := make([]T, 0, p.Limit)
	if err := q.Order(p.OrderClause(f)).Limit(p.Limit).Offset(p.Offset()).Find(&data).Error; err != nil {
		return nil, err
	}
	return &Result[T]{Data: data, Meta: NewMeta(total, p)}, nil
}
