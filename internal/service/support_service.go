package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// SupportAPI covers the upstream support surface: contact messages, FAQs,
// and order tracking.
type SupportAPI interface {
	SubmitContact(ctx context.Context, req storeapi.ContactRequest) error
	ListContactMessages(ctx context.Context, f storeapi.ContactFilters) ([]storeapi.ContactMessagePayload, error)
	ListFAQs(ctx context.Context) (map[string][]storeapi.FAQPayload, error)
	GetOrder(ctx context.Context, id string) (*storeapi.OrderPayload, error)
}

// SupportService handles contact form submissions, the FAQ page, and order
// tracking lookups.
type SupportService struct {
	api      SupportAPI
	validate *validator.Validate
}

func NewSupportService(api SupportAPI) *SupportService {
	return &SupportService{
		api:      api,
		validate: newFormValidator(),
	}
}

// SubmitContact validates and forwards a contact form submission.
func (s *SupportService) SubmitContact(ctx context.Context, form models.ContactForm) error {
	if fields := s.validateContact(form); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	msgType := form.Type
	if msgType == "" {
		msgType = "general"
	}

	return s.api.SubmitContact(ctx, storeapi.ContactRequest{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
		Type:    msgType,
	})
}

// ListContactMessages returns stored contact messages for the admin view.
func (s *SupportService) ListContactMessages(ctx context.Context, f storeapi.ContactFilters) ([]models.ContactMessage, error) {
	payloads, err := s.api.ListContactMessages(ctx, f)
	if err != nil {
		return nil, err
	}
	messages := make([]models.ContactMessage, 0, len(payloads))
	for _, p := range payloads {
		messages = append(messages, models.ContactMessage{
			ID:        string(p.ID),
			Name:      p.Name,
			Email:     p.Email,
			Phone:     p.Phone,
			Subject:   p.Subject,
			Message:   p.Message,
			Type:      p.Type,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return messages, nil
}

// ListFAQs returns active FAQ entries grouped by category, ordered within
// each group. An unavailable upstream degrades to an empty FAQ page.
func (s *SupportService) ListFAQs(ctx context.Context) map[string][]models.FAQ {
	grouped, err := s.api.ListFAQs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("FAQ listing unavailable")
		return map[string][]models.FAQ{}
	}

	result := make(map[string][]models.FAQ, len(grouped))
	for category, payloads := range grouped {
		faqs := make([]models.FAQ, 0, len(payloads))
		for _, p := range payloads {
			if p.IsActive != nil && !bool(*p.IsActive) {
				continue
			}
			faqs = append(faqs, models.FAQ{
				ID:        string(p.ID),
				Question:  p.Question,
				Answer:    p.Answer,
				Category:  category,
				SortOrder: int(p.SortOrder),
			})
		}
		sort.SliceStable(faqs, func(i, j int) bool {
			return faqs[i].SortOrder < faqs[j].SortOrder
		})
		if len(faqs) > 0 {
			result[category] = faqs
		}
	}
	return result
}

// TrackOrder looks up an order by its number.
func (s *SupportService) TrackOrder(ctx context.Context, orderNumber string) (*models.OrderStatus, error) {
	order, err := s.api.GetOrder(ctx, orderNumber)
	if err != nil {
		log.Warn().Err(err).Str("order_number", orderNumber).Msg("Order lookup failed")
		return nil, utils.ErrOrderNotFound
	}
	return &models.OrderStatus{
		OrderNumber: string(order.ID),
		Status:      order.Status,
		TotalAmount: float64(order.TotalAmount),
		PlacedAt:    order.CreatedAt,
	}, nil
}

func (s *SupportService) validateContact(form models.ContactForm) map[string]string {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "Invalid form submission"}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}
