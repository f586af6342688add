package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/database"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/pending"
)

// pendingStore builds the bridge over Redis. Overridable in tests.
var pendingStore = func() *pending.Store {
	return pending.NewStore(pending.RedisStorage{Client: database.Redis})
}

// StorePendingCheckout writes the checkout snapshot before the browser
// leaves for the gateway.
func StorePendingCheckout(c *gin.Context) {
	reference := c.Param("reference")

	var pc models.PendingCheckout
	if err := c.ShouldBindJSON(&pc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pc.Reference = reference
	if pc.Kind == "" {
		pc.Kind = models.CheckoutKindCart
	}

	if err := pendingStore().Save(context.Background(), pc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Pending checkout save failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reference": reference})
}

// LoadPendingCheckout is read by the success page after the gateway
// redirects back with a reference.
func LoadPendingCheckout(c *gin.Context) {
	pc, err := pendingStore().Load(context.Background(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, pending.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No pending checkout for this reference"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pc)
}

// ClearPendingCheckout drops the snapshot, normally after the confirmation
// emails went out.
func ClearPendingCheckout(c *gin.Context) {
	if err := pendingStore().Clear(context.Background(), c.Param("reference")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
