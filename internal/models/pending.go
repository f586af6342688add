package models

import "time"

// Checkout kinds stored in a PendingCheckout. A single-product buy-now and a
// full-cart checkout write different session keys on the storefront, so the
// record keeps track of which one it was.
const (
	CheckoutKindSingle = "single"
	CheckoutKindCart   = "cart"
)

// PendingCheckout is the snapshot written before redirecting the browser to
// the payment gateway and read back after the gateway returns with a
// reference. Losing it before the success page loads loses the contact and
// shipping details for the confirmation emails.
type PendingCheckout struct {
	Reference        string      `json:"reference"`
	Kind             string      `json:"kind"`
	CustomerName     string      `json:"customerName"`
	CustomerEmail    string      `json:"customerEmail"`
	CustomerPhone    string      `json:"customerPhone"`
	Address          string      `json:"address"`
	City             string      `json:"city"`
	State            string      `json:"state"`
	Items            []OrderLine `json:"items"`
	Subtotal         float64     `json:"subtotal"`
	ShippingFee      float64     `json:"shippingFee"`
	Total            float64     `json:"total"`
	DeliveryEstimate string      `json:"deliveryEstimate"`
	CreatedAt        time.Time   `json:"createdAt"`
}
