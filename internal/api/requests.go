package api

import (
	"errors"
	"strings"
)

// ArtistPayload is the request body for creating or updating an artist.
// Empty optional fields are omitted so the server keeps its defaults.
type ArtistPayload struct {
	StageName       string `json:"stageName"`
	FullName        string `json:"fullName,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Country         string `json:"country,omitempty"`
	PrimaryGenre    string `json:"primaryGenre,omitempty"`
	WebsiteURL      string `json:"websiteUrl,omitempty"`
	IsActive        *bool  `json:"isActive,omitempty"`
}

func (p ArtistPayload) Validate() error {
	if strings.TrimSpace(p.StageName) == "" {
		return errors.New("stage name is required")
	}
	return nil
}

// ActivityPayload is the request body for creating or updating a
// timeline activity.
type ActivityPayload struct {
	ArtistID       int    `json:"artistId"`
	ActivityTypeID int    `json:"activityTypeId"`
	Title          string `json:"title"`
	Date           string `json:"date,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description,omitempty"`
	ExternalURL    string `json:"externalUrl,omitempty"`
}

func (p ActivityPayload) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if p.ActivityTypeID == 0 {
		return errors.New("activity type is required")
	}
	return nil
}

// MetricPayload is the request body for recording a metric observation.
type MetricPayload struct {
	ArtistID     int      `json:"artistId"`
	MetricTypeID int      `json:"metricTypeId"`
	PlatformID   *int     `json:"platformId,omitempty"`
	MetricDate   string   `json:"metricDate"`
	Value        *float64 `json:"value"`
}

func (p MetricPayload) Validate() error {
	if p.MetricTypeID == 0 {
		return errors.New("metric type is required")
	}
	if strings.TrimSpace(p.MetricDate) == "" {
		return errors.New("date is required")
	}
	if p.Value == nil {
		return errors.New("value is required")
	}
	return nil
}

// SourcePayload is the request body for creating or updating a social
// link.
type SourcePayload struct {
	ArtistID     int    `json:"artistId"`
	SourceTypeID int    `json:"sourceTypeId"`
	URL          string `json:"url"`
	Handle       string `json:"handle,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	IsPrimary    bool   `json:"isPrimary"`
}

func (p SourcePayload) Validate() error {
	if p.SourceTypeID == 0 {
		return errors.New("platform is required")
	}
	if strings.TrimSpace(p.URL) == "" {
		return errors.New("url is required")
	}
	return nil
}

// PhotoPayload is the request body for adding or editing a gallery
// photo.
type PhotoPayload struct {
	ArtistID int    `json:"artistId"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
}

func (p PhotoPayload) Validate() error {
	if strings.TrimSpace(p.URL) == "" {
		return errors.New("photo url is required")
	}
	return nil
}
