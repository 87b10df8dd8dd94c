package model

// SocialLink is an external platform URL associated with an artist
// (Instagram profile, Spotify page, ...). The portal calls these
// "artist sources".
type SocialLink struct {
	ArtistSourceID int    `json:"artistSourceId"`
	ArtistID       int    `json:"artistId,omitempty"`
	SourceTypeID   int    `json:"sourceTypeId"`
	SourceName     string `json:"sourceName,omitempty"`
	SourceCode     string `json:"sourceCode,omitempty"`
	IconName       string `json:"iconName,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	URL            string `json:"url"`
	Handle         string `json:"handle,omitempty"`
	IsPrimary      bool   `json:"isPrimary"`
	DateAdded      string `json:"dateAdded,omitempty"`
}

// Label returns the text shown as the link's title: display name first,
// then the source type name, then a generic fallback.
func (l SocialLink) Label() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	if l.SourceName != "" {
		return l.SourceName
	}
	return "Link"
}

// Subtitle returns the secondary line under the label: the handle when
// present, otherwise the URL.
func (l SocialLink) Subtitle() string {
	if l.Handle != "" {
		return l.Handle
	}
	return l.URL
}

// SourceType is reference data for the link form's source selector.
type SourceType struct {
	SourceTypeID int    `json:"sourceTypeId"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	IconName     string `json:"iconName,omitempty"`
}
