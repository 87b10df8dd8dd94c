package view

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// FormatCount renders a large count compactly: 950 stays 950, 1500
// becomes 1.5k, 2_300_000 becomes 2.3M. A trailing ".0" is trimmed.
func FormatCount(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return trimZero(v/1_000_000) + "M"
	case abs >= 1_000:
		return trimZero(v/1_000) + "k"
	default:
		return trimZero(v)
	}
}

func trimZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatExact renders a count with thousands separators, for detail rows
// where the compact form would lose information.
func FormatExact(v float64) string {
	neg := v < 0
	n := int64(math.Abs(v))
	s := strconv.FormatInt(n, 10)

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// NiceDate renders a raw date string as "2 Jan 2006". Unparseable input
// is returned as-is so the user still sees what the server sent.
func NiceDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("2 Jan 2006")
}

// ShortDate renders day and month only, for dense timeline rows.
func ShortDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("2 Jan")
}

// handlePattern matches a bare profile handle: letters, digits, dots,
// dashes, and underscores.
var handlePattern = regexp.MustCompile(`^@?[\w.-]+$`)

// HandleFromURL derives a display handle from a profile URL when the
// server did not provide one: the first path segment that looks like a
// handle, prefixed with "@". Returns "" when nothing usable is found.
func HandleFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}

	for _, seg := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		// Skip the path prefixes platforms put before the profile name.
		switch strings.ToLower(seg) {
		case "", "user", "channel", "c", "artist", "in", "profile":
			continue
		}
		if handlePattern.MatchString(seg) {
			return "@" + strings.TrimPrefix(seg, "@")
		}
		return ""
	}
	return ""
}

// PageStatus renders the "Page 2 of 5 (12 items)" footer line.
func PageStatus(current, totalPages, totalItems int) string {
	noun := "items"
	if totalItems == 1 {
		noun = "item"
	}
	return fmt.Sprintf("Page %d of %d (%d %s)", current, totalPages, totalItems, noun)
}
