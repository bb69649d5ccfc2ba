package campus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimenezCarmona8063/MYXITECH/pkg/geom"
)

func TestBuild(t *testing.T) {
	reg, err := Build()
	require.NoError(t, err)

	zones := reg.Zones()
	require.Len(t, zones, len(layout))

	// Layout order is preserved for rendering.
	assert.Equal(t, ZoneEntrance, zones[0].Name)
	assert.Equal(t, ZoneMusicRoom, zones[len(zones)-1].Name)

	for _, z := range zones {
		assert.Equal(t, zoneWidth, z.Bounds.W, z.Name)
		assert.Equal(t, zoneHeight, z.Bounds.H, z.Name)
		assert.Equal(t, z.Bounds.Center(), z.Anchor, z.Name)
		assert.NotEmpty(t, z.Color, z.Name)
		assert.True(t, z.Bounds.X+z.Bounds.W <= WorldWidth, z.Name)
		assert.True(t, z.Bounds.Y+z.Bounds.H <= WorldHeight, z.Name)
	}
}

func TestGridPlacement(t *testing.T) {
	reg, err := Build()
	require.NoError(t, err)

	tests := []struct {
		zone string
		x, y float64
	}{
		{ZoneEntrance, 40, 40},
		{ZoneClassroom, 260, 40},
		{ZoneAdmin, 700, 180},
		{ZoneMusicRoom, 700, 320},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			z, err := reg.Zone(tt.zone)
			require.NoError(t, err)
			assert.Equal(t, tt.x, z.Bounds.X)
			assert.Equal(t, tt.y, z.Bounds.Y)
		})
	}
}

func TestZoneUnknown(t *testing.T) {
	reg, err := Build()
	require.NoError(t, err)

	_, err = reg.Zone("Swimming Pool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown zone")

	_, err = reg.Anchor("Swimming Pool")
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	reg, err := Build()
	require.NoError(t, err)

	classroom, err := reg.Zone(ZoneClassroom)
	require.NoError(t, err)

	assert.True(t, reg.Contains(ZoneClassroom, classroom.Anchor))
	// Zone edges count as inside.
	assert.True(t, reg.Contains(ZoneClassroom, geom.Vec{X: classroom.Bounds.X, Y: classroom.Bounds.Y}))
	assert.False(t, reg.Contains(ZoneClassroom, geom.Vec{X: 0, Y: 0}))
	// Unknown zones contain nothing.
	assert.False(t, reg.Contains("Swimming Pool", classroom.Anchor))
}

func TestZoneAt(t *testing.T) {
	reg, err := Build()
	require.NoError(t, err)

	entrance, err := reg.Zone(ZoneEntrance)
	require.NoError(t, err)

	z := reg.ZoneAt(entrance.Anchor)
	require.NotNil(t, z)
	assert.Equal(t, ZoneEntrance, z.Name)

	// The gap between grid cells belongs to no zone.
	assert.Nil(t, reg.ZoneAt(geom.Vec{X: 250, Y: 100}))
	assert.Nil(t, reg.ZoneAt(geom.Vec{X: 5, Y: 5}))
}
