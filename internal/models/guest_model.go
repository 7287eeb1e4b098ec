package models

import (
	"time"

	"photoevent-admin-go/internal/timeutil"
)

// SearchResults summarizes the face search run for a guest session.
type SearchResults struct {
	FaceDetectionStatus  bool    `json:"faceDetectionStatus" firestore:"faceDetectionStatus"`
	FacesDetected        int     `json:"facesDetected" firestore:"facesDetected"`
	GalleryFacesSearched int     `json:"galleryFacesSearched" firestore:"galleryFacesSearched"`
	ThresholdUsed        float64 `json:"thresholdUsed" firestore:"thresholdUsed"`
	TotalMatches         int     `json:"totalMatches" firestore:"totalMatches"`
}

// GuestUser represents a visitor who searched an event gallery without a
// registered account.
type GuestUser struct {
	ID                string        `json:"id" firestore:"-"` // Document ID
	Name              string        `json:"name" firestore:"name"`
	Email             string        `json:"email" firestore:"email"`
	Mobile            string        `json:"mobile" firestore:"mobile"`
	EventID           string        `json:"eventId" firestore:"eventId"`
	PhotoUploaded     bool          `json:"photoUploaded" firestore:"photoUploaded"`
	SessionID         string        `json:"sessionId" firestore:"sessionId"`
	SearchResults     SearchResults `json:"searchResults" firestore:"searchResults"`
	CreatedAt         time.Time     `json:"createdAt" firestore:"createdAt"`
	SearchCompletedAt time.Time     `json:"searchCompletedAt" firestore:"searchCompletedAt"`
}

// GuestUserFromDoc normalizes a raw guest user document into a GuestUser.
func GuestUserFromDoc(id string, data map[string]interface{}) *GuestUser {
	guest := &GuestUser{
		ID:            id,
		Name:          docString(data, "name"),
		Email:         docString(data, "email"),
		Mobile:        docString(data, "mobile"),
		EventID:       docString(data, "eventId"),
		PhotoUploaded: docBool(data, "photoUploaded"),
		SessionID:     docString(data, "sessionId"),
	}

	results := docMap(data, "searchResults")
	guest.SearchResults = SearchResults{
		FaceDetectionStatus:  docBool(results, "faceDetectionStatus"),
		FacesDetected:        docInt(results, "facesDetected"),
		GalleryFacesSearched: docInt(results, "galleryFacesSearched"),
		ThresholdUsed:        docNumber(results, "thresholdUsed"),
		TotalMatches:         docInt(results, "totalMatches"),
	}

	if t, ok := timeutil.Parse(data["createdAt"]); ok {
		guest.CreatedAt = t
	}
	if t, ok := timeutil.Parse(data["searchCompletedAt"]); ok {
		guest.SearchCompletedAt = t
	}

	return guest
}
