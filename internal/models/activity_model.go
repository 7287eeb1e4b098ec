package models

// LastSearch records the most recent gallery search a user performed.
type LastSearch struct {
	EventID              string  `json:"eventId" firestore:"eventId"`
	FaceDetectionStatus  bool    `json:"faceDetectionStatus" firestore:"faceDetectionStatus"`
	FacesDetected        int     `json:"facesDetected" firestore:"facesDetected"`
	GalleryFacesSearched int     `json:"galleryFacesSearched" firestore:"galleryFacesSearched"`
	MatchesFound         int     `json:"matchesFound" firestore:"matchesFound"`
	ThresholdUsed        float64 `json:"thresholdUsed" firestore:"thresholdUsed"`
	Timestamp            string  `json:"timestamp" firestore:"timestamp"`
}

// UserActivity is the per-user activity rollup maintained by the gallery
// service in the userDashboard collection. Read-only here.
type UserActivity struct {
	ID                 string         `json:"id" firestore:"-"` // Document ID
	UserID             string         `json:"userId" firestore:"userId"`
	CreatedAt          string         `json:"createdAt" firestore:"createdAt"`
	LastUpdated        string         `json:"lastUpdated" firestore:"lastUpdated"`
	GalleryVisits      int            `json:"galleryVisits" firestore:"galleryVisits"`
	TotalSelfieUploads int            `json:"totalSelfieUploads" firestore:"totalSelfieUploads"`
	TotalMatchesFound  int            `json:"totalMatchesFound" firestore:"totalMatchesFound"`
	DailyGalleryVisits map[string]int `json:"dailyGalleryVisits" firestore:"dailyGalleryVisits"`
	DailyMatches       map[string]int `json:"dailyMatches" firestore:"dailyMatches"`
	DailyUploads       map[string]int `json:"dailyUploads" firestore:"dailyUploads"`
	LastSearch         LastSearch     `json:"lastSearch" firestore:"lastSearch"`
}

// ActivityFromDoc normalizes a raw userDashboard document into a
// UserActivity. The daily maps are always non-nil.
func ActivityFromDoc(id string, data map[string]interface{}) *UserActivity {
	activity := &UserActivity{
		ID:                 id,
		UserID:             docString(data, "userId"),
		CreatedAt:          docString(data, "createdAt"),
		LastUpdated:        docString(data, "lastUpdated"),
		GalleryVisits:      docInt(data, "galleryVisits"),
		TotalSelfieUploads: docInt(data, "totalSelfieUploads"),
		TotalMatchesFound:  docInt(data, "totalMatchesFound"),
		DailyGalleryVisits: docIntMap(data, "dailyGalleryVisits"),
		DailyMatches:       docIntMap(data, "dailyMatches"),
		DailyUploads:       docIntMap(data, "dailyUploads"),
	}

	search := docMap(data, "lastSearch")
	activity.LastSearch = LastSearch{
		EventID:              docString(search, "eventId"),
		FaceDetectionStatus:  docBool(search, "faceDetectionStatus"),
		FacesDetected:        docInt(search, "facesDetected"),
		GalleryFacesSearched: docInt(search, "galleryFacesSearched"),
		MatchesFound:         docInt(search, "matchesFound"),
		ThresholdUsed:        docNumber(search, "thresholdUsed"),
		Timestamp:            docString(search, "timestamp"),
	}

	return activity
}

func docIntMap(data map[string]interface{}, key string) map[string]int {
	raw := docMap(data, key)
	out := make(map[string]int, len(raw))
	for k := range raw {
		out[k] = docInt(raw, k)
	}
	return out
}
