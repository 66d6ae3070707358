package game

import (
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/tick"
	"gridsnake/game/types"
)

// State is the lifecycle state of the current session.
type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "ended"
}

// InputSource yields the directional keys pressed since the last poll, one
// per call, and false once there are none left for this frame.
type InputSource interface {
	Poll() (types.Direction, bool)
}

// Notifier is told about scoring and the end of a session.
type Notifier interface {
	FoodEaten(score int)
	SessionEnded(score int)
}

// Game owns every piece of one session: grid, tick counter, snake and food.
// It is driven from a single goroutine, one Frame call per rendered frame.
type Game struct {
	UUID string

	cfg          types.Config
	grid         types.Grid
	clock        tick.Clock
	rng          *rand.Rand
	ticker       *tick.Counter
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	notifier     Notifier
	state        State
	startTime    time.Time
}

// NewGame validates cfg and starts the first session. notifier may be nil.
func NewGame(cfg types.Config, clock tick.Clock, notifier Notifier) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}

	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		grid:         grid,
		clock:        clock,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
		notifier:     notifier,
	}

	if err := g.startSession(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) startSession() error {
	ticker, err := tick.NewCounter(g.clock, g.cfg.TicksPerSecond)
	if err != nil {
		return err
	}

	g.UUID = uuid.New().String()
	g.ticker = ticker
	g.snake = entity.NewSnake(g.grid, g.grid.Center(), types.Right, g.cfg.InitialLength, g.cfg.ScorePerFood)
	g.foodMgr = manager.NewFoodManager(g.grid, g.collisionMgr, g.rng)
	g.foodMgr.Place(g.snake.Body())
	g.state = Running
	g.startTime = g.clock.Now()

	glog.V(1).Infof("Session %s started: %dx%d cells, %d tps", g.UUID, g.grid.Cols(), g.grid.Rows(), g.cfg.TicksPerSecond)
	return nil
}

// Restart records the current session if it has not been recorded yet and
// starts a fresh one on the same grid.
func (g *Game) Restart() error {
	if g.state == Running {
		g.end()
	}
	return g.startSession()
}

// HandleInput forwards every pending direction from in to the snake.
func (g *Game) HandleInput(in InputSource) {
	if in == nil {
		return
	}
	for {
		dir, ok := in.Poll()
		if !ok {
			return
		}
		glog.V(3).Infof("Key: %v", dir)
		g.snake.RecordInput(dir)
	}
}

// Frame runs one frame: input, then at most one simulation step. It returns
// false once the session has ended.
func (g *Game) Frame(in InputSource) bool {
	if g.state != Running {
		return false
	}

	g.HandleInput(in)
	if g.ticker.IsNextTick() {
		return g.Update()
	}
	return true
}

// Update advances the simulation by exactly one tick regardless of the
// clock. Frame calls it when the tick counter fires.
func (g *Game) Update() bool {
	if g.state != Running {
		return false
	}

	before := g.snake.Score()
	alive := g.snake.Update(g.foodMgr)

	if score := g.snake.Score(); score > before {
		head := g.snake.Head()
		glog.V(2).Infof("Ate food: x=%v y=%v score=%d length=%d", head.X, head.Y, score, g.snake.Len())
		if g.notifier != nil {
			g.notifier.FoodEaten(score)
		}
	}

	if !alive {
		g.end()
		return false
	}
	return true
}

func (g *Game) end() {
	g.state = Ended

	rec := manager.SessionRecord{
		ID:        g.UUID,
		Score:     g.snake.Score(),
		Length:    g.snake.Len(),
		Ticks:     g.ticker.Tick(),
		StartTime: g.startTime,
		EndTime:   g.clock.Now(),
	}
	g.stateMgr.Record(rec)

	glog.V(1).Infof("Session %s ended: score=%d length=%d after %v", rec.ID, rec.Score, rec.Length, rec.Duration())
	if g.notifier != nil {
		g.notifier.SessionEnded(rec.Score)
	}
}

func (g *Game) Score() int {
	return g.snake.Score()
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the food cell and whether food is on the board.
func (g *Game) GetFood() (types.Point, bool) {
	return g.foodMgr.Position(), g.foodMgr.Placed()
}

// PlaceFood moves the food to pos. It fails when pos is off the grid or under
// the snake.
func (g *Game) PlaceFood(pos types.Point) error {
	if !g.collisionMgr.ValidateSpawnPosition(pos, g.snake.Body()) {
		return errors.Errorf("cannot place food at %v", pos)
	}
	g.foodMgr.PlaceAt(pos)
	return nil
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
