package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnex/store_api/internal/models"
	"github.com/tapnex/store_api/internal/service"
	"github.com/tapnex/store_api/internal/utils"
)

// shopPath is where expired checkout flows are redirected.
const shopPath = "/shop"

// CheckoutHandler drives the buy-now flow over HTTP. Expired or consumed
// sessions redirect to the shop with 303 See Other rather than erroring, so a
// bookmarked or replayed checkout URL lands somewhere useful.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type beginCheckoutRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// BeginCheckout handles POST /checkout/session: the buy-now click.
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	var req beginCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	session, err := h.checkout.BeginCheckout(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrProductOutOfStock):
			utils.Error(c, http.StatusConflict, "OUT_OF_STOCK", "Product is out of stock")
		case errors.Is(err, utils.ErrInvalidQuantity):
			utils.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "Requested quantity is not available")
		default:
			utils.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Could not start checkout")
		}
		return
	}

	utils.Success(c, http.StatusCreated, "Checkout session created", gin.H{
		"token":    session.Token,
		"product":  session.Product,
		"quantity": session.Quantity,
	})
}

// OpenBilling handles GET /checkout/session/:token: the billing page load.
func (h *CheckoutHandler) OpenBilling(c *gin.Context) {
	view, err := h.checkout.OpenBilling(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, utils.ErrCheckoutExpired) {
			c.Redirect(http.StatusSeeOther, shopPath)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Could not load checkout session")
		return
	}
	utils.Success(c, http.StatusOK, "Checkout session retrieved", view)
}

// SubmitOrder handles POST /checkout/session/:token/order.
func (h *CheckoutHandler) SubmitOrder(c *gin.Context) {
	var form models.BillingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid billing payload")
		return
	}

	token := c.Param("token")
	confirmation, err := h.checkout.SubmitOrder(c.Request.Context(), token, form)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.ValidationFailed(c, verr.Fields)
		case errors.Is(err, utils.ErrCheckoutExpired):
			c.Redirect(http.StatusSeeOther, shopPath)
		case errors.Is(err, utils.ErrOrderRejected):
			message := "Order could not be placed, please try again"
			var rejected *service.OrderRejectedError
			if errors.As(err, &rejected) && rejected.Message != "" {
				message = rejected.Message
			}
			utils.Error(c, http.StatusBadGateway, "ORDER_REJECTED", message)
		default:
			utils.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Could not place order")
		}
		return
	}

	utils.Success(c, http.StatusCreated, "Order placed", gin.H{
		"order_number":     confirmation.OrderNumber,
		"confirmation_url": "/v1/checkout/confirmation/" + token,
	})
}

// Confirmation handles GET /checkout/confirmation/:token. The payload is
// consumed on read; a refresh redirects to the shop.
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	confirmation, err := h.checkout.TakeConfirmation(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, utils.ErrCheckoutExpired) {
			c.Redirect(http.StatusSeeOther, shopPath)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Could not load confirmation")
		return
	}
	utils.Success(c, http.StatusOK, "Order confirmation retrieved", confirmation)
}
