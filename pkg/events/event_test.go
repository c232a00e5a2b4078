package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		want    bool
	}{
		{"events.>", "events.PACK_CREATED", true},
		{"events.>", "events", false},
		{"events.*", "events.USER_CREATED", true},
		{"events.*", "events.a.b", false},
		{"events.PACK_CREATED", "events.PACK_CREATED", true},
		{"events.PACK_CREATED", "events.USER_CREATED", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.pattern, tt.subject), "%s ~ %s", tt.pattern, tt.subject)
	}
}

func TestEncodeDecode(t *testing.T) {
	e := New("PACK_CREATED", map[string]interface{}{"title": "Building Trust"})

	data, err := Encode(e)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "PACK_CREATED", got.EventType())
	assert.Equal(t, "Building Trust", got.Payload()["title"])
	assert.True(t, e.Timestamp().Equal(got.Timestamp()))
	assert.Equal(t, "events.PACK_CREATED", Subject(got))
}
