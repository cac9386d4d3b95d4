package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMenu(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeMenu(t, `{"menu": [
		{"id": 1, "title": "Bryggkaffe", "desc": "Bryggd på månadens bönor.", "price": 39},
		{"id": 2, "title": "Cortado", "desc": "Bryggd på månadens bönor.", "price": 49}
	]}`)

	c, err := Load(path)
	require.NoError(t, err)

	it, ok := c.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Bryggkaffe", it.Title)
	assert.Equal(t, 39.0, it.Price)

	_, ok = c.Lookup(99)
	assert.False(t, ok)
}

func TestSnapshotKeepsFileOrder(t *testing.T) {
	path := writeMenu(t, `{"menu": [
		{"id": 3, "title": "Cappuccino", "price": 49},
		{"id": 1, "title": "Bryggkaffe", "price": 39}
	]}`)

	c, err := Load(path)
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, 3, snap[0].ID)
	assert.Equal(t, 1, snap[1].ID)

	// จิ้มของที่คืนมา ต้องไม่กระทบ catalog
	snap[0].Price = 1000
	again, _ := c.Lookup(3)
	assert.Equal(t, 49.0, again.Price)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "saknas.json"))
	assert.Error(t, err)

	_, err = Load(writeMenu(t, `inte json`))
	assert.Error(t, err)

	_, err = Load(writeMenu(t, `{"menu": []}`))
	assert.Error(t, err)

	_, err = Load(writeMenu(t, `{"menu": [{"id": 1, "title": "Fel", "price": -5}]}`))
	assert.Error(t, err)
}
