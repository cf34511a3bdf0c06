// file: internals/features/finance/checkout/controller/webhook_controller.go
package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"

	service "bootcampku_backend/internals/features/finance/checkout/service"
)

/* =======================================================================
   Webhook Reconciler (HTTP layer)

   State machine per event masuk:
     Unverified → Verify (signature, hard gate) → Dispatch (hanya
     checkout.session.completed) → Resolve course → Increment +
     Persist enrollment (satu transaksi) → Notify (best-effort) → Ack.

   Selalu balas {received:true} untuk event yang sudah terverifikasi
   supaya provider tidak retry event yang sebenarnya beres.
======================================================================= */

type WebhookController struct {
	Reconciler    *service.Reconciler
	WebhookSecret string
}

func NewWebhookController(rec *service.Reconciler, webhookSecret string) *WebhookController {
	return &WebhookController{Reconciler: rec, WebhookSecret: webhookSecret}
}

func (h *WebhookController) RegisterRoutes(r fiber.Router) {
	r.Post("/stripe/webhook", h.HandleStripeWebhook)
}

func (h *WebhookController) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()

	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing Stripe signature",
		})
	}

	// Hard authenticity gate: tanpa secret, event tidak bisa dipalsukan
	event, err := webhook.ConstructEvent(payload, signature, h.WebhookSecret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Webhook Error: " + err.Error(),
		})
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		// event lain di-ack dan diabaikan
		return c.JSON(fiber.Map{"received": true})
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		// signature sudah valid; payload yang tidak bisa diparse adalah
		// masalah di sisi kita, bukan request salah dari provider
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing payment",
		})
	}

	completed := service.CompletedEvent{
		EventID:     event.ID,
		EventType:   string(event.Type),
		SessionID:   sess.ID,
		AmountTotal: sess.AmountTotal,
		Metadata:    sess.Metadata,
		RawPayload:  payload,
		Signature:   signature,
	}
	if sess.PaymentIntent != nil {
		completed.PaymentID = sess.PaymentIntent.ID
	}

	if _, err := h.Reconciler.Process(c.UserContext(), completed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing payment",
		})
	}

	return c.JSON(fiber.Map{"received": true})
}
