package metricform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/model"
)

func TestStartEditSubmitsCallerArtistID(t *testing.T) {
	m := New(80, 24)
	m.SetReference(
		[]model.MetricType{{MetricTypeID: 1, Name: "Followers"}},
		[]model.Platform{{PlatformID: 2, Name: "Instagram"}},
	)

	platform := 2
	value := 12500.0
	row := model.MetricRow{
		ArtistMetricID: 9,
		MetricTypeID:   1,
		PlatformID:     &platform,
		MetricDate:     "2025-04-01",
		Value:          &value,
	}

	_ = m.StartEdit(4, row)

	msg := m.handleSubmit()()
	submit, ok := msg.(SubmitMsg)
	require.True(t, ok)

	assert.Equal(t, 9, submit.EditID)
	assert.Equal(t, 4, submit.Payload.ArtistID)
	assert.Equal(t, 1, submit.Payload.MetricTypeID)
	assert.Equal(t, "2025-04-01", submit.Payload.MetricDate)
	require.NotNil(t, submit.Payload.PlatformID)
	assert.Equal(t, 2, *submit.Payload.PlatformID)
	require.NotNil(t, submit.Payload.Value)
	assert.Equal(t, 12500.0, *submit.Payload.Value)
}

func TestStartCreateDefaultsToFollowers(t *testing.T) {
	m := New(80, 24)
	_ = m.StartCreate(4)

	msg := m.handleSubmit()()
	submit, ok := msg.(SubmitMsg)
	require.True(t, ok)

	assert.Zero(t, submit.EditID)
	assert.Equal(t, 4, submit.Payload.ArtistID)
	assert.Equal(t, model.MetricTypeFollowers, submit.Payload.MetricTypeID)
	assert.Nil(t, submit.Payload.PlatformID)
}
