package repository

import (
	"context"

	"github.com/cufit/cufit-backend/internal/models"
)

const planColumns = `id, name, description, price, currency, billing_interval, product_id, price_id`

type CreateSubscriptionInput struct {
	UserID         *int64
	PlanID         int64
	SubscriptionID string
	Status         string
}

type CreatePaymentInput struct {
	SubscriptionID *int64
	PaymentIntent  string
	Amount         int64
	Status         string
	Currency       string
}

type BillingRepository struct {
	db DBTX
}

func NewBillingRepository(db DBTX) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) ListPlans(ctx context.Context) ([]models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY price ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.Plan, 0)
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(
			&plan.ID,
			&plan.Name,
			&plan.Description,
			&plan.Price,
			&plan.Currency,
			&plan.Interval,
			&plan.ProductID,
			&plan.PriceID,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *BillingRepository) GetPlanByName(ctx context.Context, name string) (*models.Plan, error) {
	return r.getPlan(ctx, `SELECT `+planColumns+` FROM plans WHERE name = $1`, name)
}

func (r *BillingRepository) GetPlanByPriceID(ctx context.Context, priceID string) (*models.Plan, error) {
	return r.getPlan(ctx, `SELECT `+planColumns+` FROM plans WHERE price_id = $1`, priceID)
}

func (r *BillingRepository) getPlan(ctx context.Context, query string, arg any) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.Price,
		&plan.Currency,
		&plan.Interval,
		&plan.ProductID,
		&plan.PriceID,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreateSubscription inserts or refreshes a subscription keyed by its
// provider id, so webhook redelivery does not duplicate rows.
func (r *BillingRepository) CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (user_id, plan_id, subscription_id, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subscription_id) DO UPDATE SET status = EXCLUDED.status
		RETURNING id, user_id, plan_id, subscription_id, status, created_at
	`

	var sub models.Subscription
	err := r.db.QueryRow(ctx, query, input.UserID, input.PlanID, input.SubscriptionID, input.Status).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.PlanID,
		&sub.SubscriptionID,
		&sub.Status,
		&sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *BillingRepository) CreatePayment(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	query := `
		INSERT INTO payments (subscription_id, payment_intent, amount, status, currency)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (payment_intent) DO UPDATE SET status = EXCLUDED.status
		RETURNING id, subscription_id, payment_intent, amount, status, currency, created_at
	`

	var payment models.Payment
	err := r.db.QueryRow(ctx, query,
		input.SubscriptionID,
		input.PaymentIntent,
		input.Amount,
		input.Status,
		input.Currency,
	).Scan(
		&payment.ID,
		&payment.SubscriptionID,
		&payment.PaymentIntent,
		&payment.Amount,
		&payment.Status,
		&payment.Currency,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
