package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1k"},
		{1500, "1.5k"},
		{12345, "12.3k"},
		{1_000_000, "1M"},
		{2_300_000, "2.3M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in), "FormatCount(%v)", tt.in)
	}
}

func TestFormatExact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatExact(tt.in), "FormatExact(%v)", tt.in)
	}
}

func TestNiceDate(t *testing.T) {
	assert.Equal(t, "14 Mar 2025", NiceDate("2025-03-14"))
	assert.Equal(t, "14 Mar 2025", NiceDate("2025-03-14T10:00:00"))
	assert.Equal(t, "whenever", NiceDate("whenever"))
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "14 Mar", ShortDate("2025-03-14"))
	assert.Equal(t, "", ShortDate(""))
}

func TestHandleFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://instagram.com/novasound", "@novasound"},
		{"https://www.youtube.com/channel/UCabc123", "@UCabc123"},
		{"https://open.spotify.com/artist/4Z8W4fKeB5YxbusRsdQVPb", "@4Z8W4fKeB5YxbusRsdQVPb"},
		{"https://twitter.com/@nova.sound", "@nova.sound"},
		{"https://example.com/", ""},
		{"not a url", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HandleFromURL(tt.in), "HandleFromURL(%q)", tt.in)
	}
}

func TestPageStatus(t *testing.T) {
	assert.Equal(t, "Page 2 of 5 (12 items)", PageStatus(2, 5, 12))
	assert.Equal(t, "Page 1 of 1 (1 item)", PageStatus(1, 1, 1))
}
