package models

// VariantSelection holds the options a customer picked for a wig before
// adding it to the cart.
type VariantSelection struct {
	Length   string `json:"length,omitempty"`
	LaceSize string `json:"laceSize,omitempty"`
	Density  string `json:"density,omitempty"`
}

// CartItem is browser-side state round-tripped through the storefront.
// Price is captured at add time and reconciled against the live product
// snapshot when the cart syncs (stock and price may have changed).
type CartItem struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Price     float64          `json:"price"`
	Quantity  int              `json:"quantity"`
	Variant   VariantSelection `json:"variant"`
	InStock   bool             `json:"inStock"`
	ImageURL  string           `json:"imageUrl,omitempty"`
}
