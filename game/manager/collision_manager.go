package manager

import (
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// isOutside checks if a position is off the grid or not cell-aligned
func (cm *CollisionManager) isOutside(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsOccupied checks if a position is covered by any of the occupied cells
func (cm *CollisionManager) IsOccupied(pos types.Point, occupied []types.Point) bool {
	for _, p := range occupied {
		if p == pos {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied []types.Point) bool {
	if cm.isOutside(pos) {
		return false
	}
	return !cm.IsOccupied(pos, occupied)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// FreeCells lists every grid cell not covered by occupied, in row-major order.
func (cm *CollisionManager) FreeCells(occupied []types.Point) []types.Point {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, cm.grid.Cells()-len(taken))
	for row := 0; row < cm.grid.Rows(); row++ {
		for col := 0; col < cm.grid.Cols(); col++ {
			cell := cm.grid.CellAt(col, row)
			if _, ok := taken[cell]; !ok {
				free = append(free, cell)
			}
		}
	}
	return free
}
