package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api, webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateCustomer(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.Context = ctx
	customer, err := p.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, in CheckoutParams) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(in.CustomerID),
		ClientReferenceID:  stripe.String(strconv.FormatInt(in.UserID, 10)),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(in.PriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	if in.IdempotencyKey != "" {
		params.SetIdempotencyKey(in.IdempotencyKey)
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return session.URL, nil
}

func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, err
	}
	return &WebhookEvent{ID: event.ID, Type: string(event.Type), Raw: event.Data.Raw}, nil
}

func (p *StripeProvider) ResolveCheckout(ctx context.Context, event *WebhookEvent) (*CompletedCheckout, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Raw, &session); err != nil {
		return nil, err
	}
	if session.Subscription == nil || session.Subscription.ID == "" {
		return nil, errors.New("checkout session has no subscription")
	}

	subParams := &stripe.SubscriptionParams{}
	subParams.Context = ctx
	sub, err := p.api.Subscriptions.Get(session.Subscription.ID, subParams)
	if err != nil {
		return nil, err
	}
	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return nil, errors.New("subscription has no price")
	}

	done := &CompletedCheckout{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		PriceID:        sub.Items.Data[0].Price.ID,
	}
	if id, err := strconv.ParseInt(session.ClientReferenceID, 10, 64); err == nil {
		done.UserID = &id
	}

	if session.Invoice == nil || session.Invoice.ID == "" {
		return done, nil
	}
	invParams := &stripe.InvoiceParams{}
	invParams.Context = ctx
	invoice, err := p.api.Invoices.Get(session.Invoice.ID, invParams)
	if err != nil {
		return nil, err
	}
	if invoice.PaymentIntent == nil || invoice.PaymentIntent.ID == "" {
		return done, nil
	}

	piParams := &stripe.PaymentIntentParams{}
	piParams.Context = ctx
	intent, err := p.api.PaymentIntents.Get(invoice.PaymentIntent.ID, piParams)
	if err != nil {
		return nil, err
	}
	done.PaymentIntent = intent.ID
	done.Amount = intent.AmountReceived
	done.PaymentStatus = string(intent.Status)
	done.Currency = string(intent.Currency)
	return done, nil
}
