package usercfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

func TestStoreDeclareAndSet(t *testing.T) {
	store := usercfg.NewStore()
	store.Declare("Theme", usercfg.FieldString)

	ft, ok := store.FieldType("Theme")
	require.True(t, ok)
	require.Equal(t, usercfg.FieldString, ft)

	_, ok = store.FieldType("Missing")
	require.False(t, ok)

	require.NoError(t, store.Set("Theme", "dark"))
	v, ok := store.Get("Theme")
	require.True(t, ok)
	require.Equal(t, "dark", v)

	err := store.Set("Theme", 42)
	require.Error(t, err, "a mistyped value must be rejected so apply can skip it")
	require.ErrorIs(t, err, usercfg.ErrInvalid)

	err = store.Set("Missing", "x")
	require.Error(t, err)
}

func TestStoreLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")

	store := usercfg.NewStore()
	store.Declare("Count", usercfg.FieldInt)
	store.Declare("Theme", usercfg.FieldString)
	require.NoError(t, store.Set("Count", 3))
	require.NoError(t, store.Set("Theme", "dark"))
	require.NoError(t, store.Save(path))

	loaded, err := usercfg.LoadStore(path)
	require.NoError(t, err)

	ft, ok := loaded.FieldType("Count")
	require.True(t, ok)
	require.Equal(t, usercfg.FieldInt, ft)

	count, ok := loaded.Get("Count")
	require.True(t, ok)
	require.Equal(t, 3, count)
	theme, ok := loaded.Get("Theme")
	require.True(t, ok)
	require.Equal(t, "dark", theme)
}

func TestLoadStoreRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	doc := "fields:\n  Weird:\n    type: tuple\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := usercfg.LoadStore(path)
	require.Error(t, err)
	require.ErrorIs(t, err, usercfg.ErrParse)
}
