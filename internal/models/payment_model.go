package models

// PaymentStatusCompleted is the literal status written by the payment
// gateway callback for a settled payment. Revenue calculations match this
// string exactly; no case folding is applied.
const PaymentStatusCompleted = "completed"

// Payment represents a payment-gateway transaction document. The created_at
// and expires_at fields are kept in their raw stored shape (string, Firestore
// timestamp, or a {seconds: N} map, depending on which pipeline wrote the
// document) and resolved through timeutil at the point of use.
type Payment struct {
	ID                string      `json:"id" firestore:"-"` // Document ID
	Amount            float64     `json:"amount" firestore:"amount"`
	Billing           string      `json:"billing" firestore:"billing"`
	CreatedAt         interface{} `json:"created_at" firestore:"created_at"`
	ExpiresAt         interface{} `json:"expires_at" firestore:"expires_at"`
	IsActive          bool        `json:"is_active" firestore:"is_active"`
	PaymentStatus     string      `json:"payment_status" firestore:"payment_status"`
	PlanName          string      `json:"plan_name" firestore:"plan_name"`
	RazorpayOrderID   string      `json:"razorpay_order_id" firestore:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id" firestore:"razorpay_payment_id"`
	UserID            string      `json:"user_id" firestore:"user_id"`
}

// PaymentFromDoc normalizes a raw payment document into a Payment.
func PaymentFromDoc(id string, data map[string]interface{}) *Payment {
	return &Payment{
		ID:                id,
		Amount:            docNumber(data, "amount"),
		Billing:           docString(data, "billing"),
		CreatedAt:         data["created_at"],
		ExpiresAt:         data["expires_at"],
		IsActive:          docBool(data, "is_active"),
		PaymentStatus:     docString(data, "payment_status"),
		PlanName:          docString(data, "plan_name"),
		RazorpayOrderID:   docString(data, "razorpay_order_id"),
		RazorpayPaymentID: docString(data, "razorpay_payment_id"),
		UserID:            docString(data, "user_id"),
	}
}

// Completed reports whether this payment settled. Strict literal match:
// a status of "Completed" does not count.
func (p *Payment) Completed() bool {
	return p.PaymentStatus == PaymentStatusCompleted
}
