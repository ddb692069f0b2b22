package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// memStore is an in-memory HandoffStore with the same consume-once Take
// semantics as the redis implementation.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) key(stage, token string) string { return stage + ":" + token }

func (m *memStore) Put(_ context.Context, stage, token string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[m.key(stage, token)] = b
	return nil
}

func (m *memStore) Take(_ context.Context, stage, token string, dest interface{}) (bool, error) {
	b, ok := m.data[m.key(stage, token)]
	if !ok {
		return false, nil
	}
	delete(m.data, m.key(stage, token))
	return true, json.Unmarshal(b, dest)
}

func (m *memStore) Peek(_ context.Context, stage, token string, dest interface{}) (bool, error) {
	b, ok := m.data[m.key(stage, token)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *memStore) Delete(_ context.Context, stage, token string) error {
	delete(m.data, m.key(stage, token))
	return nil
}

type fakePlacer struct {
	resp  *storeapi.CreateOrderResponse
	err   error
	calls int
	last  storeapi.CreateOrderRequest
}

func (f *fakePlacer) CreateOrder(_ context.Context, req storeapi.CreateOrderRequest) (*storeapi.CreateOrderResponse, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestCheckout(t *testing.T, placer *fakePlacer) (*CheckoutService, *memStore) {
	t.Helper()
	source := &fakeSource{payloads: payloadsFor(t, catalogJSON)}
	catalog := NewCatalogService(source, &fakeRelay{})
	store := newMemStore()
	return NewCheckoutService(store, placer, catalog, 0.08), store
}

func validForm() models.BillingForm {
	return models.BillingForm{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "+1 (555) 123-4567",
		Address:     "1 Analytical Way",
		City:        "London",
		State:       "LDN",
		ZipCode:     "E1 6AN",
		Country:     "United Kingdom",
		PaymentMode: "cod",
	}
}

func startSession(t *testing.T, svc *CheckoutService, identifier string, qty int) string {
	t.Helper()
	session, err := svc.BeginCheckout(context.Background(), identifier, qty)
	require.NoError(t, err)
	_, err = svc.OpenBilling(context.Background(), session.Token)
	require.NoError(t, err)
	return session.Token
}

func TestBeginCheckoutRejectsBadQuantity(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakePlacer{})
	_, err := svc.BeginCheckout(context.Background(), "gold-nfc-card", 0)
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)
}

func TestBeginCheckoutUnknownProduct(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakePlacer{})
	_, err := svc.BeginCheckout(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestOpenBillingConsumesHandoffButSurvivesReload(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakePlacer{})
	session, err := svc.BeginCheckout(context.Background(), "black-nfc-card", 2)
	require.NoError(t, err)

	first, err := svc.OpenBilling(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Session.Quantity)

	// reload hits the staged billing copy
	second, err := svc.OpenBilling(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, first.Session.Product.ID, second.Session.Product.ID)
}

func TestOpenBillingUnknownTokenExpires(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakePlacer{})
	_, err := svc.OpenBilling(context.Background(), "chk_missing")
	assert.ErrorIs(t, err, utils.ErrCheckoutExpired)
}

func TestSubmitOrderValidationShortCircuits(t *testing.T) {
	placer := &fakePlacer{}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 1)

	form := validForm()
	form.Email = ""
	_, err := svc.SubmitOrder(context.Background(), token, form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email is required", verr.Fields["email"])
	assert.Equal(t, 0, placer.calls, "no upstream call on a rejected form")
}

func TestSubmitOrderValidationMessages(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakePlacer{})
	token := startSession(t, svc, "black-nfc-card", 1)

	form := models.BillingForm{Email: "not-an-email", Phone: "000"}
	_, err := svc.SubmitOrder(context.Background(), token, form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "First name is required", verr.Fields["first_name"])
	assert.Equal(t, "Last name is required", verr.Fields["last_name"])
	assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])
	assert.Equal(t, "Please enter a valid phone number", verr.Fields["phone"])
	assert.Equal(t, "ZIP code is required", verr.Fields["zip_code"])
}

func TestSubmitOrderTotals(t *testing.T) {
	placer := &fakePlacer{resp: &storeapi.CreateOrderResponse{Success: true, OrderNumber: "ORD-1001"}}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 2)

	confirmation, err := svc.SubmitOrder(context.Background(), token, validForm())
	require.NoError(t, err)

	// 2 x 29.99 = 59.98, plus 8% tax
	assert.InDelta(t, 59.98, confirmation.Totals.Subtotal, 0.0001)
	assert.InDelta(t, 64.7784, confirmation.Totals.Total, 0.0001)
	assert.Equal(t, "$64.78", confirmation.Totals.TotalDisplay)
	assert.Equal(t, 64.78, placer.last.TotalAmount)
	assert.Equal(t, "ORD-1001", confirmation.OrderNumber)
	assert.Equal(t, "Ada Lovelace", placer.last.Name)
	assert.Equal(t, "1 Analytical Way, London, LDN E1 6AN, United Kingdom", placer.last.ShippingAddress)
	assert.Equal(t, "Product: Black NFC Card, Quantity: 2, Payment: cod", placer.last.OrderData)
	assert.Equal(t, "pending", placer.last.OrderStatus)
}

func TestSubmitOrderSynthesizesOrderNumber(t *testing.T) {
	placer := &fakePlacer{resp: &storeapi.CreateOrderResponse{Success: true}}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 1)

	confirmation, err := svc.SubmitOrder(context.Background(), token, validForm())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(confirmation.OrderNumber, "NFC"), "fallback numbers carry the NFC prefix")
	assert.Len(t, confirmation.OrderNumber, len("NFC")+4+6)
}

func TestSubmitOrderFailureKeepsBillingState(t *testing.T) {
	placer := &fakePlacer{err: errors.New("upstream down")}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 1)

	_, err := svc.SubmitOrder(context.Background(), token, validForm())
	assert.ErrorIs(t, err, utils.ErrOrderRejected)

	// the session is still there for a retry
	view, err := svc.OpenBilling(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Session.Quantity)
}

func TestSubmitOrderUpstreamRejection(t *testing.T) {
	placer := &fakePlacer{resp: &storeapi.CreateOrderResponse{Success: false, Message: "out of stock"}}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 1)

	_, err := svc.SubmitOrder(context.Background(), token, validForm())
	assert.ErrorIs(t, err, utils.ErrOrderRejected)

	var rejected *OrderRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "out of stock", rejected.Message)
}

func TestConfirmationIsOneShot(t *testing.T) {
	placer := &fakePlacer{resp: &storeapi.CreateOrderResponse{Success: true, OrderNumber: "ORD-7"}}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 1)

	_, err := svc.SubmitOrder(context.Background(), token, validForm())
	require.NoError(t, err)

	first, err := svc.TakeConfirmation(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ORD-7", first.OrderNumber)

	_, err = svc.TakeConfirmation(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrCheckoutExpired)
}

func TestSubmitOrderClearsBillingAfterSuccess(t *testing.T) {
	placer := &fakePlacer{resp: &storeapi.CreateOrderResponse{Success: true, OrderNumber: "ORD-9"}}
	svc, _ := newTestCheckout(t, placer)
	token := startSession(t, svc, "black-nfc-card", 1)

	_, err := svc.SubmitOrder(context.Background(), token, validForm())
	require.NoError(t, err)

	_, err = svc.OpenBilling(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrCheckoutExpired)
}
