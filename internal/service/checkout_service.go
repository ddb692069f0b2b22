package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// Checkout state stages. Handoff is consumed when the billing view opens;
// billing survives failed submissions; confirmation is consumed by the
// thank-you view.
const (
	stageHandoff      = "handoff"
	stageBilling      = "billing"
	stageConfirmation = "confirmation"
)

// HandoffStore holds ephemeral checkout state keyed by stage and token.
// Take must be atomic get-and-delete so state is consumed exactly once.
type HandoffStore interface {
	Put(ctx context.Context, stage, token string, value interface{}) error
	Take(ctx context.Context, stage, token string, dest interface{}) (bool, error)
	Peek(ctx context.Context, stage, token string, dest interface{}) (bool, error)
	Delete(ctx context.Context, stage, token string) error
}

// OrderPlacer submits orders to the upstream.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req storeapi.CreateOrderRequest) (*storeapi.CreateOrderResponse, error)
}

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// OrderRejectedError carries the upstream's message for a rejected order so
// the customer sees why the submission failed.
type OrderRejectedError struct {
	Message string
}

func (e *OrderRejectedError) Error() string {
	if e.Message == "" {
		return utils.ErrOrderRejected.Error()
	}
	return e.Message
}

func (e *OrderRejectedError) Unwrap() error {
	return utils.ErrOrderRejected
}

// CheckoutService drives the buy-now flow: session creation on the product
// page, the billing view, order submission, and the one-shot confirmation.
type CheckoutService struct {
	store    HandoffStore
	orders   OrderPlacer
	catalog  *CatalogService
	validate *validator.Validate
	taxRate  float64
}

func NewCheckoutService(store HandoffStore, orders OrderPlacer, catalog *CatalogService, taxRate float64) *CheckoutService {
	return &CheckoutService{
		store:    store,
		orders:   orders,
		catalog:  catalog,
		validate: newFormValidator(),
		taxRate:  taxRate,
	}
}

// BeginCheckout resolves the product, verifies it can be bought, and stages a
// handoff session. The returned token is the only reference to the session.
func (s *CheckoutService) BeginCheckout(ctx context.Context, identifier string, quantity int) (*models.CheckoutSession, error) {
	if quantity < 1 {
		return nil, utils.ErrInvalidQuantity
	}

	detail, err := s.catalog.GetProduct(ctx, identifier)
	if err != nil {
		return nil, err
	}
	product := detail.Product
	if !product.IsInStock {
		return nil, utils.ErrProductOutOfStock
	}
	if quantity > product.StockQuantity {
		return nil, utils.ErrInvalidQuantity
	}

	token, err := utils.GenerateToken("chk")
	if err != nil {
		return nil, err
	}

	session := models.CheckoutSession{
		Token:     token,
		Product:   product,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	if err := s.store.Put(ctx, stageHandoff, token, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// BillingView is the billing page payload.
type BillingView struct {
	Session models.CheckoutSession `json:"session"`
	Totals  models.OrderTotals     `json:"totals"`
}

// OpenBilling consumes the handoff and stages the session for submission. A
// reload after the handoff was consumed still finds the staged billing copy;
// only when both are gone has the session expired and the caller is sent back
// to the shop.
func (s *CheckoutService) OpenBilling(ctx context.Context, token string) (*BillingView, error) {
	var session models.CheckoutSession

	found, err := s.store.Take(ctx, stageHandoff, token, &session)
	if err != nil {
		return nil, err
	}
	if found {
		if err := s.store.Put(ctx, stageBilling, token, session); err != nil {
			return nil, err
		}
		return &BillingView{Session: session, Totals: s.totals(session)}, nil
	}

	found, err = s.store.Peek(ctx, stageBilling, token, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrCheckoutExpired
	}
	return &BillingView{Session: session, Totals: s.totals(session)}, nil
}

// SubmitOrder validates the billing form and places the order upstream. On
// success the billing state is replaced by a one-shot confirmation under the
// same token; on any failure the billing state is kept so the customer can
// retry without losing the session.
func (s *CheckoutService) SubmitOrder(ctx context.Context, token string, form models.BillingForm) (*models.OrderConfirmation, error) {
	if fields := s.validateForm(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var session models.CheckoutSession
	found, err := s.store.Peek(ctx, stageBilling, token, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrCheckoutExpired
	}

	totals := s.totals(session)
	paymentMode := models.PaymentMode(form.PaymentMode)
	if paymentMode == "" {
		paymentMode = models.PaymentModeCOD
	}

	req := storeapi.CreateOrderRequest{
		Name:            form.FullName(),
		Email:           form.Email,
		Phone:           form.Phone,
		ShippingAddress: form.ShippingAddress(),
		TotalAmount:     utils.Round2(totals.Total),
		OrderData:       fmt.Sprintf("Product: %s, Quantity: %d, Payment: %s", session.Product.Name, session.Quantity, paymentMode),
		OrderStatus:     "pending",
	}

	resp, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("token", token).Msg("Order submission failed")
		return nil, &OrderRejectedError{}
	}
	if !resp.Success {
		log.Warn().Str("token", token).Str("message", resp.Message).Msg("Order rejected by upstream")
		return nil, &OrderRejectedError{Message: resp.Message}
	}

	orderNumber := firstNonEmpty(string(resp.OrderNumber), string(resp.OrderID))
	if orderNumber == "" {
		orderNumber = utils.GenerateOrderNumber()
	}

	confirmation := models.OrderConfirmation{
		OrderNumber: orderNumber,
		ProductName: session.Product.Name,
		Quantity:    session.Quantity,
		Totals:      totals,
		Customer: models.CustomerInfo{
			Name:    form.FullName(),
			Email:   form.Email,
			Phone:   form.Phone,
			Address: form.ShippingAddress(),
		},
		PaymentMode: paymentMode,
		OrderDate:   time.Now(),
	}

	if err := s.store.Put(ctx, stageConfirmation, token, confirmation); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, stageBilling, token); err != nil {
		log.Warn().Err(err).Str("token", token).Msg("Failed to clear billing state")
	}
	return &confirmation, nil
}

// TakeConfirmation consumes the one-shot confirmation for the thank-you
// view. A second call for the same token misses.
func (s *CheckoutService) TakeConfirmation(ctx context.Context, token string) (*models.OrderConfirmation, error) {
	var confirmation models.OrderConfirmation
	found, err := s.store.Take(ctx, stageConfirmation, token, &confirmation)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, utils.ErrCheckoutExpired
	}
	return &confirmation, nil
}

func (s *CheckoutService) totals(session models.CheckoutSession) models.OrderTotals {
	subtotal := session.Product.Price * float64(session.Quantity)
	tax := subtotal * s.taxRate
	total := subtotal + tax
	return models.OrderTotals{
		Subtotal:     subtotal,
		TaxRate:      s.taxRate,
		Tax:          tax,
		Total:        total,
		TotalDisplay: utils.FormatUSD(utils.Round2(total)),
	}
}

var nonDigits = regexp.MustCompile(`\D`)

// newFormValidator builds the validator with JSON field names and the
// loose_phone rule: any formatting is stripped and the remaining digits must
// be a plausible international number.
func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("loose_phone", func(fl validator.FieldLevel) bool {
		digits := nonDigits.ReplaceAllString(fl.Field().String(), "")
		if len(digits) == 0 || len(digits) > 16 {
			return false
		}
		return digits[0] != '0'
	})
	return v
}

func (s *CheckoutService) validateForm(form models.BillingForm) map[string]string {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Invalid form submission"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

// fieldMessage maps a failed rule to the message the storefront shows.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "first_name":
		return "First name is required"
	case "last_name":
		return "Last name is required"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "phone":
		if fe.Tag() == "required" {
			return "Phone number is required"
		}
		return "Please enter a valid phone number"
	case "address":
		return "Address is required"
	case "city":
		return "City is required"
	case "state":
		return "State is required"
	case "zip_code":
		return "ZIP code is required"
	case "payment_mode":
		return "Invalid payment mode"
	case "name":
		return "Name is required"
	case "subject":
		return "Subject is required"
	case "message":
		return "Message is required"
	case "type":
		return "Invalid inquiry type"
	}
	return "This field is invalid"
}
