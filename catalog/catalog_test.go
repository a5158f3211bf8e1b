package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 25, c.Len())

	seen := map[int]bool{}
	for _, m := range c.All() {
		assert.False(t, seen[m.ID], "duplicate mission id %d", m.ID)
		seen[m.ID] = true
		assert.NotEmpty(t, m.Title)
		assert.Greater(t, m.Points, 0)
	}
}

func TestGet(t *testing.T) {
	c := Default()

	m, err := c.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "Bike Ride", m.Title)
	assert.Equal(t, 25, m.Points)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNewRejectsBadMissions(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]models.Mission{
		{ID: 1, Title: "A", Points: 10},
		{ID: 1, Title: "B", Points: 10},
	})
	assert.Error(t, err)

	_, err = New([]models.Mission{{ID: 1, Title: "A", Points: 0}})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missions.yaml")
	data := `
- id: 1
  title: Reusable Bottle
  description: Photo using reusable bottle
  points: 20
- id: 2
  title: Public Transport
  description: Photo using public transport
  points: 20
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	m, err := c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Public Transport", m.Title)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
