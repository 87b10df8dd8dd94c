package api

import (
	"context"
	"fmt"

	"artistdesk/internal/model"
)

// SourceTypes returns the platform reference list used to populate the
// selector in the social link form.
func (c *Client) SourceTypes(ctx context.Context) ([]model.SourceType, error) {
	var types []model.SourceType
	if err := c.Get(ctx, "/api/sources/types", &types); err != nil {
		return nil, fmt.Errorf("listing source types: %w", err)
	}
	return types, nil
}

// Sources returns an artist's social links, primary first.
func (c *Client) Sources(ctx context.Context, artistID int) ([]model.SocialLink, error) {
	var links []model.SocialLink
	path := fmt.Sprintf("/api/sources/%d/sources", artistID)
	if err := c.Get(ctx, path, &links); err != nil {
		return nil, fmt.Errorf("listing sources for artist %d: %w", artistID, err)
	}
	return links, nil
}

// CreateSource adds a social link.
func (c *Client) CreateSource(ctx context.Context, p SourcePayload) (model.SocialLink, error) {
	if err := p.Validate(); err != nil {
		return model.SocialLink{}, err
	}
	var link model.SocialLink
	path := fmt.Sprintf("/api/sources/%d/sources", p.ArtistID)
	if err := c.Post(ctx, path, p, &link); err != nil {
		return model.SocialLink{}, fmt.Errorf("creating source: %w", err)
	}
	return link, nil
}

// UpdateSource overwrites an existing social link.
func (c *Client) UpdateSource(ctx context.Context, sourceID int, p SourcePayload) (model.SocialLink, error) {
	if err := p.Validate(); err != nil {
		return model.SocialLink{}, err
	}
	var link model.SocialLink
	path := fmt.Sprintf("/api/sources/%d/sources/%d", p.ArtistID, sourceID)
	if err := c.Put(ctx, path, p, &link); err != nil {
		return model.SocialLink{}, fmt.Errorf("updating source %d: %w", sourceID, err)
	}
	return link, nil
}

// DeleteSource removes a social link.
func (c *Client) DeleteSource(ctx context.Context, artistID, sourceID int) error {
	path := fmt.Sprintf("/api/sources/%d/sources/%d", artistID, sourceID)
	if err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting source %d: %w", sourceID, err)
	}
	return nil
}
