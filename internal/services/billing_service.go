package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/cufit/cufit-backend/internal/models"
	"github.com/cufit/cufit-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

const EventCheckoutCompleted = "checkout.session.completed"

type CheckoutParams struct {
	CustomerID     string
	PriceID        string
	UserID         int64
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

// CompletedCheckout is what a finished checkout resolves to once the
// subscription, invoice and payment intent have been looked up.
type CompletedCheckout struct {
	UserID         *int64
	SubscriptionID string
	Status         string
	PriceID        string
	PaymentIntent  string
	Amount         int64
	PaymentStatus  string
	Currency       string
}

type WebhookEvent struct {
	ID   string
	Type string
	Raw  []byte
}

type PaymentProvider interface {
	CreateCustomer(ctx context.Context, email string) (string, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (string, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
	ResolveCheckout(ctx context.Context, event *WebhookEvent) (*CompletedCheckout, error)
}

type BillingStore interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	GetPlanByName(ctx context.Context, name string) (*models.Plan, error)
	GetPlanByPriceID(ctx context.Context, priceID string) (*models.Plan, error)
	CreateSubscription(ctx context.Context, input repository.CreateSubscriptionInput) (*models.Subscription, error)
	CreatePayment(ctx context.Context, input repository.CreatePaymentInput) (*models.Payment, error)
}

type billingUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	SetStripeCustomer(ctx context.Context, userID int64, customerID string) error
	SetSelectedPlan(ctx context.Context, userID, planID int64) error
}

type BillingService struct {
	db         TxBeginner
	billing    BillingStore
	users      billingUserStore
	provider   PaymentProvider
	successURL string
	cancelURL  string
	now        func() time.Time
}

func NewBillingService(
	db TxBeginner,
	billing BillingStore,
	users billingUserStore,
	provider PaymentProvider,
	successURL string,
	cancelURL string,
) *BillingService {
	return &BillingService{
		db:         db,
		billing:    billing,
		users:      users,
		provider:   provider,
		successURL: successURL,
		cancelURL:  cancelURL,
		now:        time.Now,
	}
}

func (s *BillingService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.billing.ListPlans(ctx)
}

// Checkout starts a subscription checkout for planName and returns the hosted
// session URL. The Stripe customer is created once and kept on the user. The
// selected plan is only recorded once the session exists.
func (s *BillingService) Checkout(ctx context.Context, userID int64, planName string) (string, error) {
	if s.provider == nil {
		return "", ErrUnavailable
	}
	if planName == "" {
		return "", ErrInvalidInput
	}

	plan, err := s.billing.GetPlanByName(ctx, planName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrPlanNotFound
		}
		return "", err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	customerID := ""
	if user.StripeCustomerID != nil {
		customerID = *user.StripeCustomerID
	}
	if customerID == "" {
		customerID, err = s.provider.CreateCustomer(ctx, user.Email)
		if err != nil {
			return "", fmt.Errorf("%w: create customer: %v", ErrUpstream, err)
		}
		if err := s.users.SetStripeCustomer(ctx, userID, customerID); err != nil {
			return "", err
		}
	}
	url, err := s.provider.CreateCheckoutSession(ctx, CheckoutParams{
		CustomerID:     customerID,
		PriceID:        plan.PriceID,
		UserID:         userID,
		SuccessURL:     s.successURL,
		CancelURL:      s.cancelURL,
		IdempotencyKey: checkoutIdempotencyKey(userID, plan.ID, s.now()),
	})
	if err != nil {
		return "", fmt.Errorf("%w: create checkout session: %v", ErrUpstream, err)
	}
	if err := s.users.SetSelectedPlan(ctx, userID, plan.ID); err != nil {
		return "", err
	}
	return url, nil
}

// checkoutIdempotencyKey is stable for the same user and plan within one
// minute, so a double submit reuses the first session.
func checkoutIdempotencyKey(userID, planID int64, now time.Time) string {
	name := "checkout:" + strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(planID, 10) + ":" + strconv.FormatInt(now.Unix()/60, 10)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// HandleWebhook verifies and records a provider event. It reports whether
// the event type was handled; other types are acknowledged and ignored.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) (bool, error) {
	if s.provider == nil {
		return false, ErrUnavailable
	}

	event, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if event.Type != EventCheckoutCompleted {
		return false, nil
	}

	done, err := s.provider.ResolveCheckout(ctx, event)
	if err != nil {
		return false, fmt.Errorf("%w: resolve checkout: %v", ErrUpstream, err)
	}

	err = s.inTx(ctx, func(store BillingStore) error {
		plan, err := store.GetPlanByPriceID(ctx, done.PriceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrPlanNotFound
			}
			return err
		}

		sub, err := store.CreateSubscription(ctx, repository.CreateSubscriptionInput{
			UserID:         done.UserID,
			PlanID:         plan.ID,
			SubscriptionID: done.SubscriptionID,
			Status:         done.Status,
		})
		if err != nil {
			return err
		}

		if done.PaymentIntent == "" {
			return nil
		}
		_, err = store.CreatePayment(ctx, repository.CreatePaymentInput{
			SubscriptionID: &sub.ID,
			PaymentIntent:  done.PaymentIntent,
			Amount:         done.Amount,
			Status:         done.PaymentStatus,
			Currency:       done.Currency,
		})
		return err
	})
	if err != nil {
		return false, err
	}

	log.Printf("billing: recorded subscription %s from event %s", done.SubscriptionID, event.ID)
	return true, nil
}

func (s *BillingService) inTx(ctx context.Context, fn func(BillingStore) error) error {
	if s.db == nil {
		return fn(s.billing)
	}
	return runInTx(ctx, s.db, func(tx pgx.Tx) error {
		return fn(repository.NewBillingRepository(tx))
	})
}
