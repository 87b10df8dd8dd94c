package artistlist

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"

	"artistdesk/internal/model"
)

func TestRosterRowUsesActiveMarker(t *testing.T) {
	// Roster payloads carry no isActive flag, so the decoded value is
	// always false.
	a := model.Artist{ID: 1, StageName: "Nova"}
	l := list.New([]list.Item{ArtistItem{Artist: a}}, ItemDelegate{}, 40, 10)

	var buf bytes.Buffer
	ItemDelegate{}.Render(&buf, l, 0, ArtistItem{Artist: a})

	out := buf.String()
	assert.Contains(t, out, "● Nova")
	assert.NotContains(t, out, "○")
}
