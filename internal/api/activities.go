package api

import (
	"context"
	"fmt"

	"artistdesk/internal/model"
)

// Activities returns an artist's timeline entries, newest first per the
// server ordering.
func (c *Client) Activities(ctx context.Context, artistID int) ([]model.Activity, error) {
	var activities []model.Activity
	path := fmt.Sprintf("/api/activities/artist/%d", artistID)
	if err := c.Get(ctx, path, &activities); err != nil {
		return nil, fmt.Errorf("listing activities for artist %d: %w", artistID, err)
	}
	return activities, nil
}

// ActivityTypes returns the reference list used to populate the type
// selector in the activity form.
func (c *Client) ActivityTypes(ctx context.Context) ([]model.ActivityType, error) {
	var types []model.ActivityType
	if err := c.Get(ctx, "/api/activities/activitytypes", &types); err != nil {
		return nil, fmt.Errorf("listing activity types: %w", err)
	}
	return types, nil
}

// CreateActivity records a new timeline entry.
func (c *Client) CreateActivity(ctx context.Context, p ActivityPayload) (model.Activity, error) {
	if err := p.Validate(); err != nil {
		return model.Activity{}, err
	}
	var activity model.Activity
	path := fmt.Sprintf("/api/activities/artist/%d", p.ArtistID)
	if err := c.Post(ctx, path, p, &activity); err != nil {
		return model.Activity{}, fmt.Errorf("creating activity: %w", err)
	}
	return activity, nil
}

// UpdateActivity overwrites an existing timeline entry.
func (c *Client) UpdateActivity(ctx context.Context, activityID int, p ActivityPayload) (model.Activity, error) {
	if err := p.Validate(); err != nil {
		return model.Activity{}, err
	}
	var activity model.Activity
	path := fmt.Sprintf("/api/activities/artist/%d/%d", p.ArtistID, activityID)
	if err := c.Put(ctx, path, p, &activity); err != nil {
		return model.Activity{}, fmt.Errorf("updating activity %d: %w", activityID, err)
	}
	return activity, nil
}

// DeleteActivity removes a timeline entry.
func (c *Client) DeleteActivity(ctx context.Context, artistID, activityID int) error {
	path := fmt.Sprintf("/api/activities/artist/%d/%d", artistID, activityID)
	if err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting activity %d: %w", activityID, err)
	}
	return nil
}
