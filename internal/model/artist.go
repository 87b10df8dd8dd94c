package model

// Artist is the primary managed entity: a performer profile that owns
// activities, photos, metric rows, and social links.
type Artist struct {
	// ID is the artist's identifier in the portal backend.
	ID int `json:"id"`

	// StageName is the public performer name. It is the only required
	// field when creating or updating an artist.
	StageName string `json:"stageName"`

	// FullName is the artist's legal or full name, if known.
	FullName string `json:"fullName,omitempty"`

	// Bio is the free-text biography shown on the profile view.
	Bio string `json:"bio,omitempty"`

	// ProfileImageURL points at the avatar image.
	ProfileImageURL string `json:"profileImageUrl,omitempty"`

	Country      string `json:"country,omitempty"`
	PrimaryGenre string `json:"primaryGenre,omitempty"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`

	// IsActive marks whether the artist appears on the public landing list.
	IsActive bool `json:"isActive"`

	// DateCreated is the backend creation timestamp (RFC 3339 string,
	// may be empty on list endpoints that omit it).
	DateCreated string `json:"dateCreated,omitempty"`

	// SourcesCount is the number of social links, as reported by the
	// detail endpoint.
	SourcesCount int `json:"sourcesCount,omitempty"`
}

// DisplayName returns the stage name, falling back to a placeholder so
// list renderers never show an empty cell.
func (a Artist) DisplayName() string {
	if a.StageName == "" {
		return "Unknown Artist"
	}
	return a.StageName
}

// Photo is a single gallery image belonging to an artist.
type Photo struct {
	PhotoID int    `json:"photoId"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}
