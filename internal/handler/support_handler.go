package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
	"github.com/tapnex/store_api/pkg/storeapi"
)

// SupportHandler serves the contact form, FAQ page, and order tracking.
type SupportHandler struct {
	support *service.SupportService
}

func NewSupportHandler(support *service.SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

// SubmitContact handles POST /contact.
func (h *SupportHandler) SubmitContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid contact payload")
		return
	}

	if err := h.support.SubmitContact(c.Request.Context(), form); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationFailed(c, verr.Fields)
			return
		}
		utils.Error(c, http.StatusBadGateway, "CONTACT_FAILED", "Message could not be sent, please try again")
		return
	}
	utils.Success(c, http.StatusCreated, "Message sent", nil)
}

// ListFAQs handles GET /faqs.
func (h *SupportHandler) ListFAQs(c *gin.Context) {
	faqs := h.support.ListFAQs(c.Request.Context())
	utils.Success(c, http.StatusOK, "FAQs retrieved", faqs)
}

// TrackOrder handles GET /orders/:orderNumber.
func (h *SupportHandler) TrackOrder(c *gin.Context) {
	status, err := h.support.TrackOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}
	utils.Success(c, http.StatusOK, "Order retrieved", status)
}

// ListContactMessages handles GET /admin/contact-messages.
func (h *SupportHandler) ListContactMessages(c *gin.Context) {
	filters := storeapi.ContactFilters{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	messages, err := h.support.ListContactMessages(c.Request.Context(), filters)
	if err != nil {
		utils.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Could not load contact messages")
		return
	}
	utils.Success(c, http.StatusOK, "Contact messages retrieved", messages)
}
