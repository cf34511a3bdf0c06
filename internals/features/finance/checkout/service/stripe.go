package service

import (
	"context"
	"errors"
	"strings"

	stripe "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

/* =========================================================
   Stripe Client
========================================================= */

// InitStripe harus dipanggil saat bootstrap app.
func InitStripe(secretKey string) {
	stripe.Key = secretKey
}

/* =========================================================
   Gateway abstraction
   Client di-inject ke controller (bukan singleton modul)
   supaya bisa diganti fake di test.
========================================================= */

// CheckoutSession: potret session di sisi provider.
// Metadata di-echo verbatim oleh provider saat event completion.
type CheckoutSession struct {
	ID          string
	URL         string
	AmountTotal int64 // minor units
	Metadata    map[string]string
}

type CreateSessionInput struct {
	CourseID      string
	CourseTitle   string
	UnitAmount    int64 // harga dalam minor units (price * 100, truncate)
	CustomerEmail string
	StudentName   string
}

type Gateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*CheckoutSession, error)
}

/* =========================================================
   Stripe implementation
========================================================= */

type StripeGateway struct {
	BaseURL string // untuk success / cancel redirect
}

func NewStripeGateway(baseURL string) *StripeGateway {
	return &StripeGateway{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error) {
	if in.UnitAmount <= 0 {
		return nil, errors.New("invalid unit amount")
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.CourseTitle),
						Description: stripe.String("Enrollment for " + in.CourseTitle),
					},
					UnitAmount: stripe.Int64(in.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(in.CustomerEmail),
		SuccessURL:    stripe.String(g.BaseURL + "/enrollment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(g.BaseURL + "/courses/" + in.CourseID),
	}
	params.Context = ctx

	// metadata di-echo balik verbatim di event checkout.session.completed
	params.AddMetadata("courseId", in.CourseID)
	params.AddMetadata("courseTitle", in.CourseTitle)
	params.AddMetadata("studentEmail", in.CustomerEmail)
	params.AddMetadata("studentName", in.StudentName)

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		ID:          s.ID,
		URL:         s.URL,
		AmountTotal: s.AmountTotal,
		Metadata:    s.Metadata,
	}, nil
}

func (g *StripeGateway) GetSession(ctx context.Context, id string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(id, params)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		ID:          s.ID,
		URL:         s.URL,
		AmountTotal: s.AmountTotal,
		Metadata:    s.Metadata,
	}, nil
}
