package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Product mirrors the products table. InStock is stored as an int column
// (0/1) even though clients send it as a boolean toggle — see
// product.NormalizeInStock.
type Product struct {
	ID               gocql.UUID `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Price            float64    `json:"price"`
	OriginalPrice    *float64   `json:"original_price,omitempty"`
	Category         string     `json:"category"`
	InStock          int        `json:"in_stock"`
	Lengths          []string   `json:"lengths,omitempty"`
	LaceSizes        []string   `json:"lace_sizes,omitempty"`
	Densities        []string   `json:"densities,omitempty"`
	ShippingFee      float64    `json:"shipping_fee"`
	DeliveryEstimate string     `json:"delivery_estimate"`
	ImageURLs        []string   `json:"image_urls"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
