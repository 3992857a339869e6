package models

import "time"

type Plan struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Interval    string  `json:"interval"`
	ProductID   string  `json:"product_id"`
	PriceID     string  `json:"price_id"`
}

type Subscription struct {
	ID             int64     `json:"id"`
	UserID         *int64    `json:"user_id"`
	PlanID         int64     `json:"plan_id"`
	SubscriptionID string    `json:"subscription_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type Payment struct {
	ID             int64     `json:"id"`
	SubscriptionID *int64    `json:"subscription_id"`
	PaymentIntent  string    `json:"payment_intent"`
	Amount         int64     `json:"amount"`
	Status         string    `json:"status"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"created_at"`
}
