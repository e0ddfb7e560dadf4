package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListValueAndScan(t *testing.T) {
	images := ImageList{"b.png", "a.png"}

	v, err := images.Value()
	require.NoError(t, err)
	assert.Equal(t, `["b.png","a.png"]`, v)

	var fromString ImageList
	require.NoError(t, fromString.Scan(`["b.png","a.png"]`))
	assert.Equal(t, images, fromString)

	var fromBytes ImageList
	require.NoError(t, fromBytes.Scan([]byte(`["b.png","a.png"]`)))
	assert.Equal(t, images, fromBytes)
}

func TestImageListScanNilAndNilValue(t *testing.T) {
	var l ImageList
	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	var nilList ImageList
	v, err := nilList.Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestImageListScanRejectsUnknownType(t *testing.T) {
	var l ImageList
	assert.Error(t, l.Scan(42))
}
