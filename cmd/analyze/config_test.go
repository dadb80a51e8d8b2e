package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.txt")
	require.NoError(t, os.WriteFile(path, []byte("Lawmakers passed the bill."), 0o600))

	req, err := cliConfig{Title: "Bill passes", TextFile: path, Related: true}.request()
	require.NoError(t, err)
	assert.Equal(t, "Lawmakers passed the bill.", req.Text)
	assert.True(t, req.FindRelatedSources)
	assert.False(t, req.GenerateNeutral)

	_, err = cliConfig{Text: "body only"}.request()
	assert.Error(t, err)

	_, err = cliConfig{Title: "t", TextFile: filepath.Join(t.TempDir(), "nope")}.request()
	assert.Error(t, err)
}
