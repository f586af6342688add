package models

// OrderLine is one purchased item as it appears in the confirmation emails.
type OrderLine struct {
	Name     string           `json:"name"`
	Quantity int              `json:"quantity"`
	Price    float64          `json:"price"`
	Variant  VariantSelection `json:"variant"`
}

// OrderSummary is the typed structure both email templates render from.
// There is no durable order table: "creating an order" means sending the
// merchant and customer emails built from this value.
type OrderSummary struct {
	OrderID          string      `json:"orderId"`
	Reference        string      `json:"reference"`
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
}
