package reference_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/bpietropaoli/thegame/boundary"
	"github.com/bpietropaoli/thegame/boundary/reference"
	"github.com/bpietropaoli/thegame/frame"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggingStore_LogsSuccessAndDelegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	inner := reference.NewDocumentStore()
	store := reference.NewLoggingStore(inner, logger)

	dest, err := frame.New("x", "y")
	require.NoError(t, err)
	source, err := frame.New("a")
	require.NoError(t, err)
	img, err := frame.New("x", "y")
	require.NoError(t, err)
	entries := []boundary.RefinementEntry{{
		SourceName:  "a",
		Source:      source,
		Destination: dest,
		Images:      []frame.ReferenceList{img},
	}}

	path := filepath.Join(t.TempDir(), "entries.cbor")
	require.NoError(t, store.Save(path, boundary.FormatDocument, entries))
	require.Contains(t, buf.String(), "boundary.Store.Save")

	buf.Reset()
	loaded, err := store.Load(path, boundary.FormatDocument)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Contains(t, buf.String(), "boundary.Store.Load")
}

func TestLoggingStore_LogsErrorLevelOnFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	inner := reference.NewDocumentStore()
	store := reference.NewLoggingStore(inner, logger)

	_, err := store.Load("/nonexistent/path.cbor", boundary.FormatDocument)
	require.Error(t, err)
	require.Contains(t, buf.String(), `"level":"error"`)
}
