package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

func orderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", CreateOrder)
	return r
}

func captureEmails(t *testing.T) *[]sentMail {
	t.Helper()
	var sent []sentMail
	old := sendEmail
	sendEmail = func(to, subject, html string) error {
		sent = append(sent, sentMail{to: to, subject: subject, body: html})
		return nil
	}
	t.Cleanup(func() { sendEmail = old })
	return &sent
}

func postOrder(t *testing.T, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	orderRouter().ServeHTTP(w, req)
	return w
}

func cartOrder() map[string]interface{} {
	return map[string]interface{}{
		"orderId":          "UOH-1-abcdef",
		"reference":        "UOH-1-abcdef",
		"customerName":     "Ada Obi",
		"customerEmail":    "ada@universeofhair.ng",
		"customerPhone":    "08031234567",
		"address":          "12 Allen Avenue",
		"city":             "Ikeja",
		"state":            "Lagos",
		"amount":           135000,
		"shippingFee":      2500,
		"deliveryEstimate": "3-5 business days",
		"items": []map[string]interface{}{
			{"name": "Luxe Bone Straight", "quantity": 1, "price": 135000,
				"variant": map[string]string{"length": "22\"", "laceSize": "5x5", "density": "180%"}},
		},
	}
}

func TestCreateOrderSendsBothEmails(t *testing.T) {
	sent := captureEmails(t)

	w := postOrder(t, cartOrder())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, *sent, 2)
	merchant, customer := (*sent)[0], (*sent)[1]

	assert.NotEqual(t, merchant.to, customer.to)
	assert.Equal(t, "ada@universeofhair.ng", customer.to)

	// Merchant sees contact details, customer copy carries none of them
	assert.Contains(t, merchant.body, "08031234567")
	assert.Contains(t, merchant.body, "12 Allen Avenue")
	assert.NotContains(t, customer.body, "08031234567")
	assert.NotContains(t, customer.body, "12 Allen Avenue")

	// Both carry the order contents and the 135000 + 2500 total
	for _, m := range *sent {
		assert.Contains(t, m.body, "Luxe Bone Straight")
		assert.Contains(t, m.body, "₦137,500.00")
	}
}

func TestCreateOrderSingleProductVariant(t *testing.T) {
	sent := captureEmails(t)

	body := map[string]interface{}{
		"orderId":       "UOH-2-bbbbbb",
		"customerName":  "Ngozi Eze",
		"customerEmail": "ngozi@example.com",
		"customerPhone": "+2347012345678",
		"productName":   "Deep Wave Frontal",
		"price":         98000,
		"quantity":      1,
		"length":        "18\"",
		"laceSize":      "13x4",
		"density":       "200%",
		"shippingFee":   3000,
	}
	w := postOrder(t, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, *sent, 2)
	assert.Contains(t, (*sent)[1].body, "Deep Wave Frontal")
	assert.Contains(t, (*sent)[1].body, "13x4")
	assert.Contains(t, (*sent)[1].body, "₦101,000.00")
}

func TestCreateOrderEscapesHTMLInCustomerFields(t *testing.T) {
	sent := captureEmails(t)

	body := cartOrder()
	body["customerName"] = `<script>alert("x")</script>`
	w := postOrder(t, body)
	require.Equal(t, http.StatusOK, w.Code)

	for _, m := range *sent {
		assert.NotContains(t, m.body, `<script>alert`)
	}
}

func TestCreateOrderRejectsBadPhone(t *testing.T) {
	sent := captureEmails(t)

	body := cartOrder()
	body["customerPhone"] = "12345"
	w := postOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, *sent)
}

func TestCreateOrderRejectsEmptyOrder(t *testing.T) {
	sent := captureEmails(t)

	body := cartOrder()
	delete(body, "items")
	w := postOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, *sent)
}

func TestCreateOrderFailedSendIsAnError(t *testing.T) {
	calls := 0
	old := sendEmail
	sendEmail = func(to, subject, html string) error {
		calls++
		if calls == 2 {
			return errors.New("smtp 421 service not available")
		}
		return nil
	}
	t.Cleanup(func() { sendEmail = old })

	w := postOrder(t, cartOrder())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "delivery failed"))
	// The merchant email already went out; the API cannot distinguish
	// "both failed" from "one succeeded" — partial failure is not modeled.
	assert.Equal(t, 2, calls)
}
