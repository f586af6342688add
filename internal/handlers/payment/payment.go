package payment

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/services"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/utils"
)

// newGateway is a hook so tests can point the handlers at a local server.
var newGateway = services.NewPaystackClient

type initializeInput struct {
	Email     string                 `json:"email"`
	Amount    float64                `json:"amount"` // major units (naira)
	Reference string                 `json:"reference"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// requestOrigin derives the storefront origin for the gateway's redirect
// URLs from the incoming request.
func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

// InitializePayment proxies the gateway's initialize-transaction call and
// returns the authorization URL the browser should redirect to.
func InitializePayment(c *gin.Context) {
	var in initializeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if in.Email == "" || in.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and amount are required"})
		return
	}

	reference := in.Reference
	if reference == "" {
		reference = utils.MintReference()
	}

	origin := requestOrigin(c)
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["cancel_action"] = origin + "/payment/cancel"

	// Kobo on the wire, integer rounding at the ×100 step
	kobo := int64(math.Round(in.Amount * 100))

	result, err := newGateway().Initialize(context.Background(), services.InitializeParams{
		Email:       in.Email,
		Amount:      kobo,
		Reference:   reference,
		CallbackURL: origin + "/payment/success",
		Metadata:    metadata,
	})
	if err != nil {
		log.Println("❌ Payment initialization failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Printf("💳 Payment initialized: %s (₦%.2f) for %s", result.Reference, in.Amount, in.Email)

	c.JSON(http.StatusOK, gin.H{
		"authorization_url": result.AuthorizationURL,
		"access_code":       result.AccessCode,
		"reference":         result.Reference,
	})
}

// VerifyPayment proxies the gateway's verify-transaction call. Success means
// the envelope status is true AND the transaction status is exactly
// "success"; everything else comes back verified:false with the gateway's
// message. No idempotency guard: verifying twice calls the gateway twice.
func VerifyPayment(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing reference"})
		return
	}

	result, err := newGateway().Verify(context.Background(), reference)
	if err != nil {
		log.Println("❌ Payment verification failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"verified": false, "error": err.Error()})
		return
	}

	if !result.Succeeded() {
		message := result.Message
		if result.Status != "" {
			message = fmt.Sprintf("Transaction %s: %s", result.Status, result.Message)
		}
		c.JSON(http.StatusOK, gin.H{"verified": false, "reference": reference, "message": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified":  true,
		"reference": result.Reference,
		"amount":    float64(result.Amount) / 100, // back to major units
		"currency":  result.Currency,
		"paidAt":    result.PaidAt,
		"channel":   result.Channel,
		"customer":  gin.H{"email": result.Customer.Email},
		"metadata":  result.Metadata,
	})
}
