package models

// Activity types accepted by the store.
const (
	ActivityMeeting = "meeting"
	ActivityEvent   = "event"
	ActivitySport   = "sport"
	ActivityNote    = "note"
)

// MaxDescriptionLength is the number of characters kept from a description.
const MaxDescriptionLength = 255

// ActivityTypes lists the closed set of activity types.
var ActivityTypes = []string{ActivityMeeting, ActivityEvent, ActivitySport, ActivityNote}

// IsActivityType reports whether t belongs to the closed set of activity types.
func IsActivityType(t string) bool {
	for _, v := range ActivityTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ActivityDB represents an activity row in the database
type ActivityDB struct {
	ActivityID  int64  `json:"id" db:"id"`                   // Primary key
	Date        string `json:"date" db:"date"`               // Calendar date, YYYY-MM-DD
	Type        string `json:"type" db:"type"`               // One of ActivityTypes
	Title       string `json:"title" db:"title"`             // Short title
	Description string `json:"description" db:"description"` // Optional, at most 255 characters
	UserID      int64  `json:"user_id" db:"user_id"`         // Owner
}

// ActivitySummary is the per-date view of an activity returned by month listings.
type ActivitySummary struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewActivity holds the client supplied fields of an activity to create.
type NewActivity struct {
	Date        string
	Type        string
	Title       string
	Description string
}
