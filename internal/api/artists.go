package api

import (
	"context"
	"fmt"

	"artistdesk/internal/model"
)

// Artists returns the active roster, as shown on the landing screen.
func (c *Client) Artists(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := c.Get(ctx, "/api/artists", &artists); err != nil {
		return nil, fmt.Errorf("listing artists: %w", err)
	}
	return artists, nil
}

// AllArtists returns every artist including inactive ones, with their
// source counts, for the management screen.
func (c *Client) AllArtists(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	if err := c.Get(ctx, "/api/artists/AllArtistsList", &artists); err != nil {
		return nil, fmt.Errorf("listing all artists: %w", err)
	}
	return artists, nil
}

// Artist returns a single artist's profile.
func (c *Client) Artist(ctx context.Context, id int) (model.Artist, error) {
	var artist model.Artist
	path := fmt.Sprintf("/api/artists/%d", id)
	if err := c.Get(ctx, path, &artist); err != nil {
		return model.Artist{}, fmt.Errorf("loading artist %d: %w", id, err)
	}
	return artist, nil
}

// Dashboard returns the consolidated payload for one artist: profile,
// photos, activities, sources, and metric summary plus series, in a
// single round trip.
func (c *Client) Dashboard(ctx context.Context, id int) (model.Dashboard, error) {
	var dash model.Dashboard
	path := fmt.Sprintf("/api/artists/%d/full_dashboard", id)
	if err := c.Get(ctx, path, &dash); err != nil {
		return model.Dashboard{}, fmt.Errorf("loading dashboard for artist %d: %w", id, err)
	}
	return dash, nil
}

// CreateArtist adds a new artist and returns the stored record.
func (c *Client) CreateArtist(ctx context.Context, p ArtistPayload) (model.Artist, error) {
	if err := p.Validate(); err != nil {
		return model.Artist{}, err
	}
	var artist model.Artist
	if err := c.Post(ctx, "/api/artists", p, &artist); err != nil {
		return model.Artist{}, fmt.Errorf("creating artist: %w", err)
	}
	return artist, nil
}

// UpdateArtist overwrites an artist's profile fields.
func (c *Client) UpdateArtist(ctx context.Context, id int, p ArtistPayload) (model.Artist, error) {
	if err := p.Validate(); err != nil {
		return model.Artist{}, err
	}
	var artist model.Artist
	path := fmt.Sprintf("/api/artists/%d", id)
	if err := c.Put(ctx, path, p, &artist); err != nil {
		return model.Artist{}, fmt.Errorf("updating artist %d: %w", id, err)
	}
	return artist, nil
}

// DeleteArtist removes an artist and all dependent rows.
func (c *Client) DeleteArtist(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/artists/delete/%d", id)
	if err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting artist %d: %w", id, err)
	}
	return nil
}

// Photos returns an artist's gallery in display order.
func (c *Client) Photos(ctx context.Context, artistID int) ([]model.Photo, error) {
	var photos []model.Photo
	path := fmt.Sprintf("/api/artists/%d/photos", artistID)
	if err := c.Get(ctx, path, &photos); err != nil {
		return nil, fmt.Errorf("listing photos for artist %d: %w", artistID, err)
	}
	return photos, nil
}

// AddPhoto appends a photo to an artist's gallery.
func (c *Client) AddPhoto(ctx context.Context, artistID int, p PhotoPayload) (model.Photo, error) {
	if err := p.Validate(); err != nil {
		return model.Photo{}, err
	}
	var photo model.Photo
	path := fmt.Sprintf("/api/artists/%d/photos", artistID)
	if err := c.Post(ctx, path, p, &photo); err != nil {
		return model.Photo{}, fmt.Errorf("adding photo for artist %d: %w", artistID, err)
	}
	return photo, nil
}

// UpdatePhoto edits a gallery photo's url or caption.
func (c *Client) UpdatePhoto(ctx context.Context, artistID, photoID int, p PhotoPayload) (model.Photo, error) {
	if err := p.Validate(); err != nil {
		return model.Photo{}, err
	}
	var photo model.Photo
	path := fmt.Sprintf("/api/artists/%d/photos/%d", artistID, photoID)
	if err := c.Put(ctx, path, p, &photo); err != nil {
		return model.Photo{}, fmt.Errorf("updating photo %d: %w", photoID, err)
	}
	return photo, nil
}

// DeletePhoto removes a photo from the gallery.
func (c *Client) DeletePhoto(ctx context.Context, artistID, photoID int) error {
	path := fmt.Sprintf("/api/artists/%d/photos/%d", artistID, photoID)
	if err := c.Delete(ctx, path); err != nil {
		return fmt.Errorf("deleting photo %d: %w", photoID, err)
	}
	return nil
}
