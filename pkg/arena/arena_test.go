package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInPlayerZone(t *testing.T) {
	assert.True(t, IsInPlayerZone(301))
	assert.False(t, IsInPlayerZone(300))
	assert.False(t, IsInPlayerZone(100))
}

func TestIsOnBridge(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"above river", 50, 100, true},
		{"below river", 50, 500, true},
		{"river left of bridges", 50, 300, false},
		{"left bridge", 250, 300, true},
		{"left bridge edge", 200, 290, true},
		{"between bridges", 400, 300, false},
		{"right bridge", 550, 310, true},
		{"river top edge", 400, RiverTop, false},
		{"river bottom edge", 400, RiverBottom, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOnBridge(tt.x, tt.y))
		})
	}
}

func TestNearestBridgeX(t *testing.T) {
	assert.Equal(t, 250.0, NearestBridgeX(0))
	assert.Equal(t, 250.0, NearestBridgeX(399))
	assert.Equal(t, 550.0, NearestBridgeX(400))
	assert.Equal(t, 550.0, NearestBridgeX(800))
}

func TestClampAndBounds(t *testing.T) {
	x, y := Clamp(-10, 900, 20)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, Height-20, y)

	assert.False(t, OutOfBounds(-49, 300))
	assert.True(t, OutOfBounds(-51, 300))
	assert.True(t, OutOfBounds(400, Height+51))
}

func TestDeployZones(t *testing.T) {
	assert.True(t, InPlayerDeployZone(400, 400))
	assert.False(t, InPlayerDeployZone(400, 200))
	assert.True(t, InEnemyDeployZone(400, 100))
	assert.False(t, InEnemyDeployZone(400, 400))
	assert.Len(t, PlayerTowers, 3)
	assert.True(t, EnemyTowers[0].King)
}

func TestOverBridge(t *testing.T) {
	assert.True(t, OverBridge(250))
	assert.True(t, OverBridge(600))
	assert.False(t, OverBridge(400))
	assert.True(t, IsDrowning(400, 300))
	assert.False(t, IsDrowning(250, 300))
}
