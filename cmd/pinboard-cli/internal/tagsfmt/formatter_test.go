package tagsfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/pinboard/internal/snapshot"
	"github.com/nfrund/pinboard/internal/tagmgr"
	"github.com/nfrund/pinboard/internal/tags/cards"
	"github.com/nfrund/pinboard/internal/tags/socket"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Socket Connected", Label("SOCKET_CONNECTED"))
	assert.Equal(t, "Current Card Show Members Selector", Label("CURRENT_CARD_SHOW_MEMBERS_SELECTOR"))
}

func TestDisplayTagsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayTagsTable(&buf, []tagmgr.Tag{socket.Connected, cards.Move}))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "SOCKET_CONNECTED")
	assert.Contains(t, out, "Card Move")
}

func TestDisplayTagsJSON(t *testing.T) {
	var buf bytes.Buffer
	stats := tagmgr.RegistryStats{
		TotalTags:       32,
		Sealed:          true,
		DomainBreakdown: map[tagmgr.Domain]int{tagmgr.DomainSocket: 1},
	}
	require.NoError(t, DisplayTagsJSON(&buf, []tagmgr.Tag{socket.Connected}, stats))

	var out struct {
		Tags  []TagDisplay         `json:"tags"`
		Count int                  `json:"count"`
		Stats tagmgr.RegistryStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, stats, out.Stats)
	assert.Equal(t, "SOCKET_CONNECTED", out.Tags[0].Value)
	assert.Equal(t, "socket", out.Tags[0].Domain)
}

func TestDisplayTagDetails(t *testing.T) {
	entry := &tagmgr.RegistryEntry{Tag: cards.Move, Position: 26}

	var buf bytes.Buffer
	require.NoError(t, DisplayTagDetails(&buf, entry, "table"))
	assert.Contains(t, buf.String(), "Domain:      cards")
	assert.Contains(t, buf.String(), "Position:    26")
	assert.Contains(t, buf.String(), "payload_fields")

	buf.Reset()
	require.NoError(t, DisplayTagDetails(&buf, entry, "json"))
	var out TagDisplay
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "CARD_MOVE", out.Name)
	require.NotNil(t, out.Position)
	assert.Equal(t, 26, *out.Position)
}

func TestDisplayChanges(t *testing.T) {
	var buf bytes.Buffer
	DisplayChanges(&buf, snapshot.Changes{Added: []string{"CARD_ARCHIVE"}, Removed: []string{"BOARDS_RESET"}})
	assert.Equal(t, "+ CARD_ARCHIVE\n- BOARDS_RESET\n", buf.String())
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "...", truncateString("abcdef", 2))

	// Multi-byte characters count once and are never split.
	assert.Equal(t, "Ünïcödé", truncateString("Ünïcödé", 7))
	assert.Equal(t, "Ünïc...", truncateString("Ünïcödé tägs", 7))
}
