package models

// Request payloads bound from JSON by the API handlers. Pointer fields on
// update requests distinguish "not provided" from a zero value so partial
// updates only touch the submitted fields.

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PlanInput is the payload for creating a subscription plan.
type PlanInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration" binding:"required"`
	Ideal       string   `json:"ideal"`
	Storage     string   `json:"storage"`
	Features    []string `json:"features"`
	MostPopular bool     `json:"mostPopular"`
	IsActive    bool     `json:"isActive"`
}

// PlanUpdate is the partial-update payload for a subscription plan.
type PlanUpdate struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Duration    *string   `json:"duration"`
	Ideal       *string   `json:"ideal"`
	Storage     *string   `json:"storage"`
	Features    *[]string `json:"features"`
	MostPopular *bool     `json:"mostPopular"`
	IsActive    *bool     `json:"isActive"`
}

// SubscriptionInput is the embedded subscription snapshot on a user update.
type SubscriptionInput struct {
	PlanName    string `json:"planName"`
	Billing     string `json:"billing"`
	ActivatedAt string `json:"activatedAt"`
	ExpiresAt   string `json:"expires_at"`
}

// UserUpdate is the partial-update payload for a user profile.
type UserUpdate struct {
	Name          *string            `json:"name"`
	PhoneNumber   *string            `json:"phoneNumber"`
	PhotoURL      *string            `json:"photoURL"`
	City          *string            `json:"city"`
	State         *string            `json:"state"`
	Country       *string            `json:"country"`
	CompanyName   *string            `json:"companyName"`
	Industry      *string            `json:"industry"`
	IndustryAreas *[]string          `json:"industryAreas"`
	Subscription  *SubscriptionInput `json:"subscription"`
}

// EventUpdate is the partial-update payload for an event.
type EventUpdate struct {
	EventName    *string  `json:"eventName"`
	EventType    *string  `json:"eventType"`
	Date         *string  `json:"date"`
	Description  *string  `json:"description"`
	CoverImage   *string  `json:"coverImage"`
	IsPublic     *bool    `json:"isPublic"`
	CompressRate *float64 `json:"compress_rate"`
}

// BulkDeleteRequest carries the selected record ids for a bulk delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// ToggleStatusRequest carries the target state for a status toggle.
type ToggleStatusRequest struct {
	IsActive bool `json:"isActive"`
}
