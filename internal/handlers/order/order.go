package order

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/pending"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/utils"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/validate"
)

// sendEmail is a hook so tests can capture sends instead of dialing SMTP.
var sendEmail = utils.SendHTMLEmail

// orderInput carries everything the confirmation emails need. Cart
// checkouts send Items; single-product checkouts send the product fields
// with variant selections instead.
type orderInput struct {
	OrderID          string             `json:"orderId"`
	Reference        string             `json:"reference"`
	CustomerName     string             `json:"customerName" binding:"required"`
	CustomerEmail    string             `json:"customerEmail" binding:"required"`
	CustomerPhone    string             `json:"customerPhone" binding:"required"`
	Address          string             `json:"address"`
	City             string             `json:"city"`
	State            string             `json:"state"`
	Amount           float64            `json:"amount"`
	ShippingFee      float64            `json:"shippingFee"`
	DeliveryEstimate string             `json:"deliveryEstimate"`
	Items            []models.OrderLine `json:"items"`

	// Single-product checkout
	ProductName string `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Length      string  `json:"length"`
	LaceSize    string  `json:"laceSize"`
	Density     string  `json:"density"`
}

func (in orderInput) toSummary() models.OrderSummary {
	items := in.Items
	if len(items) == 0 && in.ProductName != "" {
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		items = []models.OrderLine{{
			Name:     in.ProductName,
			Quantity: qty,
			Price:    in.Price,
			Variant: models.VariantSelection{
				Length:   in.Length,
				LaceSize: in.LaceSize,
				Density:  in.Density,
			},
		}}
	}

	subtotal := in.Amount
	if subtotal == 0 {
		for _, l := range items {
			subtotal += l.Price * float64(l.Quantity)
		}
	}

	orderID := in.OrderID
	if orderID == "" {
		orderID = in.Reference
	}

	return models.OrderSummary{
		OrderID:          orderID,
		Reference:        in.Reference,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		CustomerPhone:    in.CustomerPhone,
		Address:          in.Address,
		City:             in.City,
		State:            in.State,
		Items:            items,
		Subtotal:         subtotal,
		ShippingFee:      in.ShippingFee,
		Total:            subtotal + in.ShippingFee,
		DeliveryEstimate: in.DeliveryEstimate,
	}
}

// CreateOrder sends the merchant notification and the customer confirmation.
// There is no order table: these two emails are the order record. Partial
// failure is not modeled — if the second send fails the call reports an
// error even though the first email may already be out.
func CreateOrder(c *gin.Context) {
	var in orderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validate.Email(in.CustomerEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer email"})
		return
	}
	if !validate.NigerianPhone(in.CustomerPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Nigerian phone number"})
		return
	}
	if len(in.Items) == 0 && in.ProductName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
		return
	}

	summary := in.toSummary()

	merchantHTML, err := utils.RenderMerchantEmail(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Merchant email rendering failed: " + err.Error()})
		return
	}
	customerHTML, err := utils.RenderCustomerEmail(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Customer email rendering failed: " + err.Error()})
		return
	}

	merchantTo := os.Getenv("MERCHANT_EMAIL")
	if merchantTo == "" {
		merchantTo = "orders@universeofhair.ng"
	}

	if err := sendEmail(merchantTo, "🛒 New order "+summary.OrderID, merchantHTML); err != nil {
		log.Println("❌ Merchant notification failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order email delivery failed: " + err.Error()})
		return
	}
	if err := sendEmail(summary.CustomerEmail, "Your Universe of Hair order "+summary.OrderID, customerHTML); err != nil {
		log.Println("❌ Customer confirmation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order email delivery failed: " + err.Error()})
		return
	}

	log.Printf("📧 Order emails sent for %s (%s)", summary.OrderID, summary.CustomerEmail)

	// The snapshot has served its purpose once the emails are out
	if in.Reference != "" && database.Redis != nil {
		store := pending.NewStore(pending.RedisStorage{Client: database.Redis})
		if err := store.Clear(context.Background(), in.Reference); err != nil {
			log.Printf("⚠️ Pending checkout cleanup failed for %s: %v", in.Reference, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order created", "orderId": summary.OrderID})
}
