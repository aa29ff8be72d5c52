package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"Thermowall/internal/calc/wall"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	brick, err := c.Material("Brick")
	require.NoError(t, err)
	assert.Equal(t, 0.51, brick.Conductivity)
	assert.Equal(t, KindMain, brick.Kind)

	ins := c.Insulators()
	require.NotEmpty(t, ins)
	for _, e := range ins {
		assert.Equal(t, KindInsulator, e.Kind)
	}

	spb, err := c.City("saint petersburg")
	require.NoError(t, err)
	assert.Equal(t, 213.0, spb.HeatingDays)
}

func TestLookupNotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Material("unobtainium")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.City("Atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("materials:\n  - name: foam\n    conductivity: 0\n    kind: insulator\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("materials:\n  - name: foam\n    conductivity: 0.03\n    kind: roof\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("materials:\n  - name: brick\n    conductivity: 0.51\n    kind: main\n"))
	assert.ErrorIs(t, err, wall.ErrRange)
	assert.Contains(t, err.Error(), "thickness")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "materials:\n  - name: straw\n    conductivity: 0.07\n    kind: insulator\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Materials, 1)
	assert.Equal(t, "straw", c.Materials[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
