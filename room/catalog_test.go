package room

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
rooms:
  - name: open
    layout:
      - [0, 0]
      - [0, 0]
    start: {x: 0, y: 0}
  - name: boxed
    layout:
      - [1, 1, 1]
      - [1, 0, 1]
      - [1, 1, 1]
    start: {x: 1, y: 1}
`

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"boxed", "open"}, catalog.Names())

	boxed, err := catalog.ByName("boxed")
	require.NoError(t, err)
	assert.Equal(t, 1, boxed.TotalFreeArea())
	assert.Equal(t, &Position{X: 1, Y: 1}, boxed.Start())

	_, err = catalog.ByName("kitchen")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestParseCatalogNullMarkers(t *testing.T) {
	catalog, err := ParseCatalog([]byte(`
rooms:
  - name: hall
    layout:
      - [~, 0]
      - [~, 0]
    start: {x: 1, y: 0}
  - name: corner
    layout: [[0, ~], [0, 0]]
    start: {x: 0, y: 0}
`))
	require.NoError(t, err)

	hall, err := catalog.ByName("hall")
	require.NoError(t, err)
	assert.Equal(t, 2, hall.Width())
	assert.Equal(t, 2, hall.TotalFreeArea())
	assert.True(t, hall.InBounds(1, 0))
	assert.False(t, hall.IsWall(1, 0))
	assert.True(t, hall.IsWall(0, 0))

	corner, err := catalog.ByName("corner")
	require.NoError(t, err)
	assert.Equal(t, 3, corner.TotalFreeArea())
	assert.True(t, corner.IsWall(1, 0))
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "Unnamed room",
			yaml: "rooms:\n  - layout: [[0]]\n    start: {x: 0, y: 0}\n",
			err:  ErrUnnamedRoom,
		},
		{
			name: "Duplicate room",
			yaml: "rooms:\n  - name: a\n    layout: [[0]]\n  - name: a\n    layout: [[0]]\n",
			err:  ErrDuplicateRoom,
		},
		{
			name: "Ragged layout",
			yaml: "rooms:\n  - name: a\n    layout: [[0, 0], [0]]\n",
			err:  ErrRaggedLayout,
		},
		{
			name: "Layout row is not a list",
			yaml: "rooms:\n  - name: a\n    layout: [0, 0]\n",
			err:  ErrMalformedLayout,
		},
		{
			name: "Fractional start",
			yaml: "rooms:\n  - name: a\n    layout: [[0]]\n    start: {x: 0.5, y: 0}\n",
			err:  ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
