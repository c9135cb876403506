package reference_test

import (
	"path/filepath"
	"testing"

	"github.com/bpietropaoli/thegame/boundary"
	"github.com/bpietropaoli/thegame/boundary/reference"
	"github.com/bpietropaoli/thegame/frame"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_RoundTrip(t *testing.T) {
	t.Parallel()

	source, err := frame.New("sitting", "standing")
	require.NoError(t, err)
	dest, err := frame.New("low", "mid", "high")
	require.NoError(t, err)
	imgSitting, err := frame.New("low", "mid")
	require.NoError(t, err)
	imgStanding, err := frame.New("high")
	require.NoError(t, err)

	entries := []boundary.RefinementEntry{{
		SourceName:  "posture",
		Source:      source,
		Destination: dest,
		Images:      []frame.ReferenceList{imgSitting, imgStanding},
	}}

	path := filepath.Join(t.TempDir(), "refinements.cbor")
	store := reference.NewDocumentStore()
	require.NoError(t, store.Save(path, boundary.FormatDocument, entries))

	loaded, err := store.Load(path, boundary.FormatDocument)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "posture", loaded[0].SourceName)
	require.True(t, loaded[0].Source.Equal(source))
	require.True(t, loaded[0].Destination.Equal(dest))
	require.Len(t, loaded[0].Images, 2)
	require.True(t, loaded[0].Images[0].Equal(imgSitting))
	require.True(t, loaded[0].Images[1].Equal(imgStanding))
}

func TestDocumentStore_RejectsDirectoryFormat(t *testing.T) {
	t.Parallel()

	store := reference.NewDocumentStore()
	_, err := store.Load("irrelevant", boundary.FormatDirectory)
	require.ErrorIs(t, err, boundary.ErrUnknownFormat)

	err = store.Save("irrelevant", boundary.FormatDirectory, nil)
	require.ErrorIs(t, err, boundary.ErrUnknownFormat)
}
