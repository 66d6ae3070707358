package manager

import (
	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"gridsnake/game/types"
)

// FoodManager owns the single food item of a session.
//
// Placement is rejection sampling over uniformly random cells. After
// types.MaxPlacementAttempts misses it enumerates the free cells and picks
// one of them, so placement terminates even on an almost full board.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	position     types.Point
	placed       bool
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		position:     grid.Sentinel(),
	}
}

// Position returns the food cell, or the grid's off-board sentinel when no
// food is placed.
func (fm *FoodManager) Position() types.Point {
	return fm.position
}

// Placed reports whether food is on the board.
func (fm *FoodManager) Placed() bool {
	return fm.placed
}

// Place puts the food on a random cell outside occupied and returns it. It
// returns false, and clears the food, only when every cell is occupied.
func (fm *FoodManager) Place(occupied []types.Point) (types.Point, bool) {
	pos, ok := fm.GenerateFood(occupied)
	if !ok {
		fm.position = fm.grid.Sentinel()
		fm.placed = false
		glog.V(2).Infof("No free cell for food, %d cells occupied", len(occupied))
		return fm.position, false
	}

	fm.position = pos
	fm.placed = true
	glog.V(2).Infof("New food: x=%v y=%v", pos.X, pos.Y)
	return pos, true
}

// PlaceAt puts the food on pos. The caller checks that pos is free.
func (fm *FoodManager) PlaceAt(pos types.Point) {
	fm.position = pos
	fm.placed = true
}

// Relocate moves the food away from occupied.
func (fm *FoodManager) Relocate(occupied []types.Point) {
	fm.Place(occupied)
}

// GenerateFood picks a free cell without changing the current food.
func (fm *FoodManager) GenerateFood(occupied []types.Point) (types.Point, bool) {
	for i := 0; i < types.MaxPlacementAttempts; i++ {
		food := fm.grid.CellAt(
			fm.rng.Intn(fm.grid.Cols()),
			fm.rng.Intn(fm.grid.Rows()),
		)

		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, true
		}
	}

	free := fm.collisionMgr.FreeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
