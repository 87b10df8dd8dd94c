package model

// Activity is a dated event record (concert, release, campaign) shown on
// the timeline view. Date is the raw "YYYY-MM-DD" string from the API and
// may be empty; timeline sorting and grouping treat missing dates as
// maximally old.
type Activity struct {
	ID             int    `json:"id"`
	ArtistID       int    `json:"artistId,omitempty"`
	ActivityTypeID int    `json:"activityTypeId,omitempty"`
	Date           string `json:"date,omitempty"`
	Title          string `json:"title"`

	// Type is the display name of the activity type (e.g. "Release");
	// Icon is the type's icon key resolved server-side.
	Type string `json:"type,omitempty"`
	Icon string `json:"icon,omitempty"`

	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

// ActivityType is reference data for the activity form's type selector.
type ActivityType struct {
	ActivityTypeID int    `json:"activityTypeId"`
	Name           string `json:"name"`
	IconName       string `json:"iconName,omitempty"`
}
