package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFromDocDefaults(t *testing.T) {
	event := EventFromDoc("ev1", map[string]interface{}{})

	assert.Equal(t, "ev1", event.ID)
	assert.Equal(t, "", event.EventName)
	assert.Equal(t, "", event.EventType)
	assert.False(t, event.IsPublic)
	assert.Equal(t, float64(0), event.CompressRate)
	require.NotNil(t, event.UploadedImages)
	assert.Empty(t, event.UploadedImages)
	assert.True(t, event.CreatedAt.IsZero())
}

func TestEventFromDocFullDocument(t *testing.T) {
	event := EventFromDoc("ev2", map[string]interface{}{
		"eventName":     "Annual Gala",
		"eventType":     "Corporate",
		"date":          "2024-06-01",
		"isPublic":      true,
		"uploaded_by":   "studio@example.com",
		"compress_rate": int64(80),
		"createdAt":     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		"uploaded_images": []interface{}{
			map[string]interface{}{
				"image_id":   "img1",
				"image_name": "cover.jpg",
				"image_url":  "https://cdn.example.com/cover.jpg",
			},
		},
	})

	assert.Equal(t, "Annual Gala", event.EventName)
	assert.True(t, event.IsPublic)
	assert.Equal(t, float64(80), event.CompressRate)
	assert.Equal(t, 2024, event.CreatedAt.Year())
	require.Len(t, event.UploadedImages, 1)
	assert.Equal(t, "img1", event.UploadedImages[0].ImageID)
}

func TestUserFromDocDefaults(t *testing.T) {
	user := UserFromDoc("u1", map[string]interface{}{"email": "a@b.c"})

	assert.Equal(t, "a@b.c", user.Email)
	assert.Equal(t, "", user.Name)
	require.NotNil(t, user.IndustryAreas)
	assert.Empty(t, user.IndustryAreas)
	assert.Equal(t, "", user.Subscription.PlanName)
}

func TestUserSubscriptionActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	user := &User{}
	assert.False(t, user.SubscriptionActive(now), "no expiry means inactive")

	user.Subscription.ExpiresAt = "2024-12-31"
	assert.True(t, user.SubscriptionActive(now))

	user.Subscription.ExpiresAt = "2024-01-01"
	assert.False(t, user.SubscriptionActive(now))

	user.Subscription.ExpiresAt = "whenever"
	assert.False(t, user.SubscriptionActive(now), "unparseable expiry means inactive")
}

func TestCanonicalDuration(t *testing.T) {
	tests := map[string]string{
		"monthly":    DurationMonthly,
		"Month":      DurationMonthly,
		"1-month":    DurationMonthly,
		"six-month":  DurationSixMonth,
		"Half-Year":  DurationSixMonth,
		"halfyear":   DurationSixMonth,
		"6-month":    DurationSixMonth,
		"half_year":  DurationSixMonth,
		"yearly":     DurationYearly,
		"Annual":     DurationYearly,
		"12-month":   DurationYearly,
		" yearly ":   DurationYearly,
		"quarterly":  "quarterly", // unknown values pass through lowercased
		"Biannually": "biannually",
	}
	for input, want := range tests {
		assert.Equal(t, want, CanonicalDuration(input), "input %q", input)
	}
}

func TestTrimFeatures(t *testing.T) {
	got := TrimFeatures([]string{" Unlimited uploads ", "", "  ", "Face search", "\t"})
	assert.Equal(t, []string{"Unlimited uploads", "Face search"}, got)

	assert.Equal(t, []string{}, TrimFeatures(nil))
	assert.Equal(t, []string{}, TrimFeatures([]string{"", " "}))
}

func TestPlanFromDocCanonicalizes(t *testing.T) {
	plan := PlanFromDoc("p1", map[string]interface{}{
		"name":     "Pro",
		"price":    float64(499),
		"duration": "Half-Year",
		"features": []interface{}{"A", "B"},
		"isActive": true,
	})

	assert.Equal(t, DurationSixMonth, plan.Duration)
	assert.Equal(t, []string{"A", "B"}, plan.Features)
	assert.True(t, plan.IsActive)

	empty := PlanFromDoc("p2", map[string]interface{}{})
	require.NotNil(t, empty.Features)
	assert.Empty(t, empty.Features)
}

func TestPaymentCompletedIsStrict(t *testing.T) {
	assert.True(t, (&Payment{PaymentStatus: "completed"}).Completed())
	assert.False(t, (&Payment{PaymentStatus: "Completed"}).Completed())
	assert.False(t, (&Payment{PaymentStatus: "COMPLETED"}).Completed())
	assert.False(t, (&Payment{PaymentStatus: "pending"}).Completed())
	assert.False(t, (&Payment{}).Completed())
}

func TestPaymentFromDocKeepsRawTimestamps(t *testing.T) {
	raw := map[string]interface{}{
		"amount":         float64(299),
		"payment_status": "completed",
		"created_at":     map[string]interface{}{"seconds": int64(1700000000)},
		"is_active":      true,
	}
	payment := PaymentFromDoc("pay1", raw)

	assert.Equal(t, float64(299), payment.Amount)
	assert.True(t, payment.IsActive)
	// The raw shape survives normalization; resolution happens at use sites.
	assert.Equal(t, raw["created_at"], payment.CreatedAt)
}
