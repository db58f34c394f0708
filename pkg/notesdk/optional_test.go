package notesdk_test

import (
	"encoding/json"
	"testing"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var absent, null, empty, value notesdk.UpdateNoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":null}`), &null))
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":""}`), &empty))
	require.NoError(t, json.Unmarshal([]byte(`{"folderId":"f1"}`), &value))

	require.False(t, absent.FolderID.Set)

	require.True(t, null.FolderID.Set)
	require.True(t, null.FolderID.Null)

	require.True(t, empty.FolderID.Set)
	require.False(t, empty.FolderID.Null)
	require.Equal(t, "", empty.FolderID.Value)

	v, ok := value.FolderID.Get()
	require.True(t, ok)
	require.Equal(t, "f1", v)
}

func TestOptionalOmitsUnsetFields(t *testing.T) {
	b, err := json.Marshal(notesdk.UpdateNoteRequest{
		Title:    notesdk.Some(""),
		FolderID: notesdk.Null[string](),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"","folderId":null}`, string(b))
}
