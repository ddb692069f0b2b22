package models

import "time"

// PaymentMode enumerates the supported payment options.
type PaymentMode string

const (
	PaymentModeCOD    PaymentMode = "cod"
	PaymentModeOnline PaymentMode = "online"
)

// CheckoutSession is the ephemeral "buy now" handoff between the product
// page and the billing page. It lives only in the one-shot handoff store and
// is consumed exactly once when the billing view opens.
type CheckoutSession struct {
	Token     string    `json:"token"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderTotals is the computed cost breakdown for a checkout session.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	TaxRate  float64 `json:"tax_rate"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	// TotalDisplay is the cent-rounded figure shown to the customer,
	// e.g. "$64.78".
	TotalDisplay string `json:"total_display"`
}

// BillingForm is the checkout form surface. Validation messages are keyed by
// the JSON field names.
type BillingForm struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,loose_phone"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	ZipCode     string `json:"zip_code" validate:"required"`
	Country     string `json:"country"`
	PaymentMode string `json:"payment_mode" validate:"omitempty,oneof=cod online"`
}

// FullName joins the customer name fields.
func (f BillingForm) FullName() string {
	return f.FirstName + " " + f.LastName
}

// ShippingAddress concatenates the address fields in the upstream's expected
// single-line format.
func (f BillingForm) ShippingAddress() string {
	return f.Address + ", " + f.City + ", " + f.State + " " + f.ZipCode + ", " + f.Country
}

// CustomerInfo is the customer snapshot carried on a confirmation.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderConfirmation is the one-shot payload handed to the thank-you view
// after a successful submission. It is never persisted beyond that single
// transition.
type OrderConfirmation struct {
	OrderNumber string       `json:"order_number"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	Totals      OrderTotals  `json:"totals"`
	Customer    CustomerInfo `json:"customer"`
	PaymentMode PaymentMode  `json:"payment_mode"`
	OrderDate   time.Time    `json:"order_date"`
}
