package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
)

// Naira formats a major-unit amount for display, e.g. ₦137,525.00.
func Naira(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "₦" + b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

func variantLabel(v models.VariantSelection) string {
	var parts []string
	if v.Length != "" {
		parts = append(parts, v.Length)
	}
	if v.LaceSize != "" {
		parts = append(parts, v.LaceSize)
	}
	if v.Density != "" {
		parts = append(parts, v.Density)
	}
	return strings.Join(parts, " / ")
}

var emailFuncs = template.FuncMap{
	"naira":   Naira,
	"variant": variantLabel,
	"line": func(l models.OrderLine) float64 {
		return l.Price * float64(l.Quantity)
	},
}

const itemsTableTmpl = `
{{define "items"}}
<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
	<thead>
		<tr style="background-color: #f0f0f0;">
			<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Item</th>
			<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Options</th>
			<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Qty</th>
			<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Price</th>
			<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
		</tr>
	</thead>
	<tbody>
	{{range .Items}}
		<tr>
			<td style="padding: 10px; border: 1px solid #ddd;">{{.Name}}</td>
			<td style="padding: 10px; border: 1px solid #ddd;">{{variant .Variant}}</td>
			<td style="padding: 10px; border: 1px solid #ddd;">{{.Quantity}}</td>
			<td style="padding: 10px; border: 1px solid #ddd;">{{naira .Price}}</td>
			<td style="padding: 10px; border: 1px solid #ddd;">{{naira (line .)}}</td>
		</tr>
	{{end}}
	</tbody>
	<tfoot>
		<tr>
			<td colspan="4" style="padding: 10px; text-align: right;">Subtotal:</td>
			<td style="padding: 10px;">{{naira .Subtotal}}</td>
		</tr>
		<tr>
			<td colspan="4" style="padding: 10px; text-align: right;">Shipping:</td>
			<td style="padding: 10px;">{{naira .ShippingFee}}</td>
		</tr>
		<tr>
			<td colspan="4" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
			<td style="padding: 10px; font-weight: bold;">{{naira .Total}}</td>
		</tr>
	</tfoot>
</table>
{{end}}`

const merchantEmailTmpl = `
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>New order {{.OrderID}}</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">🛒 New order {{.OrderID}}</h2>
		<p>Payment reference: <strong>{{.Reference}}</strong></p>

		<h3>Customer</h3>
		<p>
			{{.CustomerName}}<br>
			{{.CustomerEmail}}<br>
			{{.CustomerPhone}}<br>
			{{.Address}}, {{.City}}, {{.State}}
		</p>

		<h3>Order details</h3>
		{{template "items" .}}

		<p style="color: #555;">Estimated delivery: {{.DeliveryEstimate}}</p>
	</div>
</body>
</html>`

const customerEmailTmpl = `
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thank you for your order! 💜</h2>
		<p>Hello {{.CustomerName}},</p>
		<p>Your order <strong>{{.OrderID}}</strong> has been confirmed.</p>

		<h3>Order details</h3>
		{{template "items" .}}

		<p style="color: #555;">Estimated delivery: {{.DeliveryEstimate}}</p>

		<p style="margin-top: 30px; color: #555;">
			With love,<br>
			<strong>The Universe of Hair team</strong>
		</p>
	</div>
</body>
</html>`

var (
	merchantEmail = template.Must(
		template.Must(template.New("merchant").Funcs(emailFuncs).Parse(itemsTableTmpl)).Parse(merchantEmailTmpl))
	customerEmail = template.Must(
		template.Must(template.New("customer").Funcs(emailFuncs).Parse(itemsTableTmpl)).Parse(customerEmailTmpl))
)

// RenderMerchantEmail builds the merchant notification, including the
// customer's contact details.
func RenderMerchantEmail(order models.OrderSummary) (string, error) {
	var buf bytes.Buffer
	if err := merchantEmail.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderCustomerEmail builds the customer confirmation. No merchant-only
// fields appear here.
func RenderCustomerEmail(order models.OrderSummary) (string, error) {
	var buf bytes.Buffer
	if err := customerEmail.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}
