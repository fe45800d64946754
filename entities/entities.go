package entities

import "github.com/shopspring/decimal"

// Page is one fixed-size slice of a sorted result set.
type Page struct {
	Items      any `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func NewPage(items any, total, page, pageSize int) Page {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ProductListing is the flattened list row with joined category and brand
// names. The names are null when the product references a missing row.
type ProductListing struct {
	Id       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category *string         `json:"category"`
	Brand    *string         `json:"brand"`
}

type UserData struct {
	Id   int
	Name string
	Role string
}
