package alloc_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/alloc"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		m := map[string]any{}
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLogged_RecordsCalls(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := alloc.NewLogged(alloc.NewArena(16, alloc.WithArenaName("small")), log)
	l := alloc.Layout{Size: 8, Align: 8}

	require.NoError(t, g.Allocate(l, 2))
	require.ErrorIs(t, g.Allocate(l, 1), alloc.ErrOutOfMemory)
	g.Deallocate(l, 2)

	recs := decodeRecords(t, &buf)
	require.Len(t, recs, 3)
	assert.Equal(t, "allocate", recs[0]["op"])
	assert.Equal(t, "small", recs[0]["allocator"])
	assert.Equal(t, "WARN", recs[1]["level"])
	assert.Equal(t, "deallocate", recs[2]["op"])
	assert.EqualValues(t, 2, recs[2]["n"])
}

func TestLogged_NilArguments(t *testing.T) {
	g := alloc.NewLogged(nil, nil)
	require.NoError(t, g.Allocate(alloc.Layout{Size: 1, Align: 1}, 1))
	g.Deallocate(alloc.Layout{Size: 1, Align: 1}, 1)
	assert.Equal(t, alloc.Heap{}, g.Unwrap())
	assert.True(t, g.PropagateOnMove())
}
