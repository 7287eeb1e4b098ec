package models

import (
	"time"

	"photoevent-admin-go/internal/timeutil"
)

// UploadedImage describes one image attached to an event by the upload pipeline.
type UploadedImage struct {
	GCSBlobName string `json:"gcs_blob_name" firestore:"gcs_blob_name"`
	ImageID     string `json:"image_id" firestore:"image_id"`
	ImageName   string `json:"image_name" firestore:"image_name"`
	ImageSize   string `json:"image_size" firestore:"image_size"`
	ImageURL    string `json:"image_url" firestore:"image_url"`
}

// Event represents a photo event document. Events are created by the external
// upload pipeline; this service only lists, edits and deletes them.
type Event struct {
	ID              string          `json:"id" firestore:"-"` // Document ID
	EventName       string          `json:"eventName" firestore:"eventName"`
	EventType       string          `json:"eventType" firestore:"eventType"`
	Date            string          `json:"date" firestore:"date"`
	Description     string          `json:"description" firestore:"description"`
	CoverImage      string          `json:"coverImage" firestore:"coverImage"`
	IsPublic        bool            `json:"isPublic" firestore:"isPublic"`
	UserID          string          `json:"userId" firestore:"userId"`
	UploadedBy      string          `json:"uploaded_by" firestore:"uploaded_by"`
	CompressRate    float64         `json:"compress_rate" firestore:"compress_rate"`
	UploadedImages  []UploadedImage `json:"uploaded_images" firestore:"uploaded_images"`
	CreatedAt       time.Time       `json:"createdAt" firestore:"createdAt"`
	UploadTimestamp time.Time       `json:"upload_timestamp" firestore:"upload_timestamp"`
}

// EventFromDoc normalizes a raw event document into an Event. Every field
// absent from the stored document gets a type-appropriate zero value;
// UploadedImages is always non-nil.
func EventFromDoc(id string, data map[string]interface{}) *Event {
	event := &Event{
		ID:             id,
		EventName:      docString(data, "eventName"),
		EventType:      docString(data, "eventType"),
		Date:           docString(data, "date"),
		Description:    docString(data, "description"),
		CoverImage:     docString(data, "coverImage"),
		IsPublic:       docBool(data, "isPublic"),
		UserID:         docString(data, "userId"),
		UploadedBy:     docString(data, "uploaded_by"),
		CompressRate:   docNumber(data, "compress_rate"),
		UploadedImages: []UploadedImage{},
	}

	if t, ok := timeutil.Parse(data["createdAt"]); ok {
		event.CreatedAt = t
	}
	if t, ok := timeutil.Parse(data["upload_timestamp"]); ok {
		event.UploadTimestamp = t
	}

	for _, img := range docMapSlice(data, "uploaded_images") {
		event.UploadedImages = append(event.UploadedImages, UploadedImage{
			GCSBlobName: docString(img, "gcs_blob_name"),
			ImageID:     docString(img, "image_id"),
			ImageName:   docString(img, "image_name"),
			ImageSize:   docString(img, "image_size"),
			ImageURL:    docString(img, "image_url"),
		})
	}

	return event
}

// EventSearchFields returns the free-text searchable fields of an event.
func EventSearchFields(e *Event) []string {
	return []string{e.EventName, e.EventType, e.Description, e.UploadedBy}
}

// EventSortKey maps a column accessor to its sortable value.
func EventSortKey(e *Event, column string) (interface{}, bool) {
	switch column {
	case "eventName":
		return e.EventName, true
	case "eventType":
		return e.EventType, true
	case "date":
		return e.Date, true
	case "isPublic":
		return e.IsPublic, true
	case "uploaded_by":
		return e.UploadedBy, true
	case "compress_rate":
		return e.CompressRate, true
	case "createdAt":
		return e.CreatedAt, true
	}
	return nil, false
}
