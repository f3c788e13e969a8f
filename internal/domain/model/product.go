package model

import "time"

// Product is a catalog entry. Quantity and Sold are the shared stock counters
// mutated as a side effect of checkout.
type Product struct {
	ID               string
	Name             string
	Slug             string
	Description      string
	Price            float64
	CategoryID       string
	Quantity         int
	Sold             int
	Photo            []byte
	PhotoContentType string
	Shipping         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InventoryTally reports the outcome of a batched stock adjustment: how many
// per-unit decrements were applied and which product references matched no
// row.
type InventoryTally struct {
	Applied int
	Missed  []string
}
