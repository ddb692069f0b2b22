package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

type fakeSupportAPI struct {
	submitted []storeapi.ContactRequest
	submitErr error
	faqs      map[string][]storeapi.FAQPayload
	faqErr    error
	order     *storeapi.OrderPayload
	orderErr  error
}

func (f *fakeSupportAPI) SubmitContact(_ context.Context, req storeapi.ContactRequest) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return nil
}

func (f *fakeSupportAPI) ListContactMessages(_ context.Context, _ storeapi.ContactFilters) ([]storeapi.ContactMessagePayload, error) {
	return nil, nil
}

func (f *fakeSupportAPI) ListFAQs(_ context.Context) (map[string][]storeapi.FAQPayload, error) {
	if f.faqErr != nil {
		return nil, f.faqErr
	}
	return f.faqs, nil
}

func (f *fakeSupportAPI) GetOrder(_ context.Context, _ string) (*storeapi.OrderPayload, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.order, nil
}

func TestSubmitContactValidates(t *testing.T) {
	api := &fakeSupportAPI{}
	svc := NewSupportService(api)

	err := svc.SubmitContact(context.Background(), models.ContactForm{Email: "bad"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name is required", verr.Fields["name"])
	assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])
	assert.Equal(t, "Subject is required", verr.Fields["subject"])
	assert.Equal(t, "Message is required", verr.Fields["message"])
	assert.Empty(t, api.submitted)
}

func TestSubmitContactDefaultsType(t *testing.T) {
	api := &fakeSupportAPI{}
	svc := NewSupportService(api)

	err := svc.SubmitContact(context.Background(), models.ContactForm{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Bulk order",
		Message: "Do you offer team pricing?",
	})

	require.NoError(t, err)
	require.Len(t, api.submitted, 1)
	assert.Equal(t, "general", api.submitted[0].Type)
}

func TestListFAQsSortsAndFiltersInactive(t *testing.T) {
	inactive := storeapi.FlexBool(false)
	api := &fakeSupportAPI{faqs: map[string][]storeapi.FAQPayload{
		"Shipping": {
			{ID: "2", Question: "Second", SortOrder: 2},
			{ID: "1", Question: "First", SortOrder: 1},
			{ID: "3", Question: "Hidden", SortOrder: 0, IsActive: &inactive},
		},
	}}
	svc := NewSupportService(api)

	faqs := svc.ListFAQs(context.Background())

	require.Len(t, faqs["Shipping"], 2)
	assert.Equal(t, "First", faqs["Shipping"][0].Question)
	assert.Equal(t, "Second", faqs["Shipping"][1].Question)
}

func TestListFAQsDegradesToEmpty(t *testing.T) {
	svc := NewSupportService(&fakeSupportAPI{faqErr: errors.New("boom")})
	faqs := svc.ListFAQs(context.Background())
	assert.NotNil(t, faqs)
	assert.Empty(t, faqs)
}

func TestTrackOrder(t *testing.T) {
	api := &fakeSupportAPI{order: &storeapi.OrderPayload{
		ID:          "ORD-9",
		Status:      "shipped",
		TotalAmount: 53.99,
		CreatedAt:   "2025-08-01 10:00:00",
	}}
	svc := NewSupportService(api)

	status, err := svc.TrackOrder(context.Background(), "ORD-9")
	require.NoError(t, err)
	assert.Equal(t, "shipped", status.Status)
	assert.Equal(t, 53.99, status.TotalAmount)
}

func TestTrackOrderNotFound(t *testing.T) {
	svc := NewSupportService(&fakeSupportAPI{orderErr: errors.New("404")})
	_, err := svc.TrackOrder(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
}
