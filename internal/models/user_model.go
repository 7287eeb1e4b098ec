package models

import (
	"time"

	"photoevent-admin-go/internal/timeutil"
)

// SubscriptionSnapshot is the denormalized subscription state embedded on a
// user document by the payment pipeline.
type SubscriptionSnapshot struct {
	PlanName    string `json:"planName" firestore:"planName"`
	Billing     string `json:"billing" firestore:"billing"`
	ActivatedAt string `json:"activatedAt" firestore:"activatedAt"`
	ExpiresAt   string `json:"expires_at" firestore:"expires_at"`
}

// User represents a registered account. Accounts are created externally at
// signup; the dashboard reads, edits and deletes them.
type User struct {
	ID            string               `json:"id" firestore:"-"` // Document ID
	UID           string               `json:"uid" firestore:"uid"`
	Name          string               `json:"name" firestore:"name"`
	Email         string               `json:"email" firestore:"email"`
	PhoneNumber   string               `json:"phoneNumber" firestore:"phoneNumber"`
	PhotoURL      string               `json:"photoURL" firestore:"photoURL"`
	Provider      string               `json:"provider" firestore:"provider"`
	City          string               `json:"city" firestore:"city"`
	State         string               `json:"state" firestore:"state"`
	Country       string               `json:"country" firestore:"country"`
	CompanyName   string               `json:"companyName" firestore:"companyName"`
	Industry      string               `json:"industry" firestore:"industry"`
	IndustryAreas []string             `json:"industryAreas" firestore:"industryAreas"`
	Subscription  SubscriptionSnapshot `json:"subscription" firestore:"subscription"`
	CreatedAt     time.Time            `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt" firestore:"updatedAt"`
}

// UserFromDoc normalizes a raw user document into a User. All profile fields
// default to empty strings and IndustryAreas is always non-nil, so the UI
// never has to branch on missing values.
func UserFromDoc(id string, data map[string]interface{}) *User {
	user := &User{
		ID:            id,
		UID:           docString(data, "uid"),
		Name:          docString(data, "name"),
		Email:         docString(data, "email"),
		PhoneNumber:   docString(data, "phoneNumber"),
		PhotoURL:      docString(data, "photoURL"),
		Provider:      docString(data, "provider"),
		City:          docString(data, "city"),
		State:         docString(data, "state"),
		Country:       docString(data, "country"),
		CompanyName:   docString(data, "companyName"),
		Industry:      docString(data, "industry"),
		IndustryAreas: docStringSlice(data, "industryAreas"),
	}

	sub := docMap(data, "subscription")
	user.Subscription = SubscriptionSnapshot{
		PlanName:    docString(sub, "planName"),
		Billing:     docString(sub, "billing"),
		ActivatedAt: docString(sub, "activatedAt"),
		ExpiresAt:   docString(sub, "expires_at"),
	}

	if t, ok := timeutil.Parse(data["createdAt"]); ok {
		user.CreatedAt = t
	}
	if t, ok := timeutil.Parse(data["updatedAt"]); ok {
		user.UpdatedAt = t
	}

	return user
}

// SubscriptionActive reports whether the user's own subscription snapshot is
// still current. Note this is computed from expires_at and can disagree with
// the payment record's is_active flag; the dashboard aggregate uses the
// latter.
func (u *User) SubscriptionActive(now time.Time) bool {
	if u.Subscription.ExpiresAt == "" {
		return false
	}
	expiry, ok := timeutil.ParseString(u.Subscription.ExpiresAt)
	if !ok {
		return false
	}
	return expiry.After(now)
}

// UserSearchFields returns the free-text searchable fields of a user.
func UserSearchFields(u *User) []string {
	return []string{u.Name, u.Email, u.PhoneNumber, u.CompanyName, u.City, u.Country}
}

// UserSortKey maps a column accessor to its sortable value.
func UserSortKey(u *User, column string) (interface{}, bool) {
	switch column {
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "phoneNumber":
		return u.PhoneNumber, true
	case "companyName":
		return u.CompanyName, true
	case "city":
		return u.City, true
	case "country":
		return u.Country, true
	case "planName":
		return u.Subscription.PlanName, true
	case "createdAt":
		return u.CreatedAt, true
	}
	return nil, false
}
