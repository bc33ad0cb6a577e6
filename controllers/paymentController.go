package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rahatfaruk/pha12-meals-track-server/helper"
	middleware "github.com/rahatfaruk/pha12-meals-track-server/middlewares"
	"github.com/rahatfaruk/pha12-meals-track-server/models"
)

// CreatePaymentIntent asks the provider for a charge intent and hands
// the client secret back. No idempotency key is sent; a duplicate
// request allocates a duplicate intent.
func (c *Controller) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var body struct {
		Price float64 `json:"price" validate:"gte=0"`
	}
	if !c.decodeBody(w, r, &body) {
		return
	}

	// major units to minor units by truncation: fractional cents are
	// silently dropped (19.999 charges 1999), matching the historical
	// behavior this API promises
	amount := int64(body.Price * 100)

	clientSecret, err := c.payments.CreateIntent(ctx, amount, "usd")
	if err != nil {
		c.logger.Error("payment intent creation failed", "error", err)
		writeMessage(w, http.StatusBadGateway, "payment provider error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// StorePaymentInfo appends a completed purchase to the payment log,
// attributed to the verified claim regardless of the body email.
func (c *Controller) StorePaymentInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	var payment models.Payment
	if !c.decodeBody(w, r, &payment) {
		return
	}
	payment.Email = middleware.EmailFromContext(r)

	insertedID, err := c.store.InsertPayment(ctx, &payment)
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": insertedID})
}

// MyPayments pages through the requester's payment history.
func (c *Controller) MyPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := handlerContext(r)
	defer cancel()

	email := mux.Vars(r)["email"]
	page := helper.ParsePagination(r)

	payments, total, err := c.store.PaymentsByEmail(ctx, email, page.Skip(), int64(page.Limit))
	if err != nil {
		c.storeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"payments":   payments,
		"totalPages": helper.TotalPages(total, page.Limit),
	})
}
