package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snakebattle/internal/domain"
)

// TickObserver sees the live state right after every tick, under the
// driver lock. It must not retain state.
type TickObserver func(gameID uuid.UUID, result *domain.TickResult, state *domain.SimulationState)

type DriverConfig struct {
	Settings *domain.Settings
	Logger   log.Logger
	EventCh  chan<- Event
	OnTick   TickObserver
}

// Snapshot is what a renderer needs for one frame.
type Snapshot struct {
	Phase    Phase
	GameID   uuid.UUID
	Winner   int32
	State    *domain.SimulationState
	Settings *domain.Settings
}

// Driver runs the simulation under the session phase machine. All
// mutation happens under mu; readers get copies.
type Driver struct {
	settings  *domain.Settings
	state     *domain.SimulationState
	phase     *StateMachine
	scheduler *Scheduler
	rng       *rand.Rand
	gameID    uuid.UUID
	winner    int32

	pendingDir domain.Direction
	movesMu    sync.Mutex

	eventCh chan<- Event
	onTick  TickObserver

	baseLogger log.Logger
	logger     log.Logger

	mu sync.RWMutex
}

func NewDriver(cfg DriverConfig) (*Driver, error) {
	if cfg.Settings == nil {
		cfg.Settings = domain.DefaultSettings()
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	d := &Driver{
		settings:   cfg.Settings.Copy(),
		phase:      NewStateMachine(),
		scheduler:  NewScheduler(),
		rng:        domain.NewRand(cfg.Settings.Seed),
		winner:     -1,
		eventCh:    cfg.EventCh,
		onTick:     cfg.OnTick,
		baseLogger: log.With(logger, "component", "driver"),
	}
	if err := d.newRound(); err != nil {
		return nil, err
	}
	return d, nil
}

// Run ticks the simulation until ctx is done. The period follows the
// current round's difficulty.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	level.Info(d.baseLogger).Log("msg", "tick loop started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			level.Info(d.baseLogger).Log("msg", "tick loop stopped")
			return ctx.Err()
		case <-ticker.C:
			d.Step(interval)
			if next := d.TickInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}

func (d *Driver) TickInterval() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Settings.Profile().TickInterval()
}

// Step runs one clock period: due delayed events first, then one
// simulation tick. Nothing happens outside the playing phase.
func (d *Driver) Step(elapsed time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.phase.Phase() != PhasePlaying {
		return
	}

	d.scheduler.Advance(elapsed)
	if d.phase.Phase() != PhasePlaying {
		return
	}

	d.movesMu.Lock()
	dir := d.pendingDir
	d.pendingDir = domain.DirectionNone
	d.movesMu.Unlock()

	result := d.state.Tick(dir)
	d.handleResult(result)

	if d.onTick != nil {
		d.onTick(d.gameID, result, d.state)
	}
	d.emit(Event{Type: EventStateUpdated})
}

func (d *Driver) handleResult(result *domain.TickResult) {
	for _, ev := range result.Events {
		snake := d.state.Snake(ev.SnakeID)
		payload := SnakePayload{SnakeID: ev.SnakeID, Player: snake.IsPlayer(), Score: ev.Score, Cause: ev.Cause}

		switch ev.Type {
		case domain.EventDeath:
			level.Debug(d.logger).Log("msg", "snake died", "snake", ev.SnakeID, "cause", ev.Cause, "score", ev.Score, "tick", result.Tick)
			d.emit(Event{Type: EventSnakeDied, Payload: payload})
			if snake.IsPlayer() {
				d.onPlayerDeath(ev.SnakeID)
			} else {
				d.scheduleAIRespawn(ev.SnakeID)
			}

		case domain.EventScore:
			d.emit(Event{Type: EventScored, Payload: payload})

		case domain.EventWin:
			level.Info(d.logger).Log("msg", "win score reached", "snake", ev.SnakeID, "score", ev.Score, "tick", result.Tick)
			d.emit(Event{Type: EventWin, Payload: payload})
			id := ev.SnakeID
			d.scheduler.After(domain.RoundEndDelay, "win", d.playing, func() {
				d.winner = id
				d.transition(commandWin)
			})
		}
	}
}

func (d *Driver) onPlayerDeath(id int32) {
	if !d.opponentCanContinue() {
		d.scheduleGameOver()
		return
	}
	d.scheduler.Schedule(&ScheduledEvent{
		At:    d.scheduler.Now() + domain.PlayerRespawnDelay,
		Name:  "player_respawn",
		Guard: func() bool { return d.playing() && d.opponentCanContinue() },
		Fire:  func() { d.respawn(id) },
		Else: func() {
			if d.playing() {
				d.transition(commandGameOver)
			}
		},
	})
}

func (d *Driver) scheduleGameOver() {
	d.scheduler.After(domain.RoundEndDelay, "game_over", d.playing, func() {
		d.transition(commandGameOver)
	})
}

// scheduleAIRespawn retries while the player is down so no AI stays
// dead for the rest of a round.
func (d *Driver) scheduleAIRespawn(id int32) {
	d.scheduler.Schedule(&ScheduledEvent{
		At:    d.scheduler.Now() + domain.AIRespawnDelay,
		Name:  "ai_respawn",
		Guard: func() bool { return d.playing() && d.playerAlive() },
		Fire:  func() { d.respawn(id) },
		Else: func() {
			if d.playing() {
				d.scheduleAIRespawn(id)
			}
		},
	})
}

func (d *Driver) respawn(id int32) {
	snake, err := d.state.Respawn(id)
	if err != nil {
		level.Warn(d.logger).Log("msg", "respawn failed", "snake", id, "err", err)
		d.emit(Event{Type: EventError, Payload: ErrorPayload{Message: err.Error()}})
		if id == 0 {
			d.transition(commandGameOver)
		} else {
			d.scheduleAIRespawn(id)
		}
		return
	}
	level.Debug(d.logger).Log("msg", "snake respawned", "snake", id, "head", snake.Head())
	d.emit(Event{Type: EventRespawned, Payload: SnakePayload{SnakeID: id, Player: snake.IsPlayer()}})
}

func (d *Driver) playing() bool {
	return d.phase.Phase() == PhasePlaying
}

func (d *Driver) playerAlive() bool {
	p := d.state.Player()
	return p != nil && p.Alive
}

// opponentCanContinue holds while some AI is alive and none has won.
func (d *Driver) opponentCanContinue() bool {
	alive := false
	for _, snake := range d.state.Snakes {
		if snake.IsPlayer() {
			continue
		}
		if d.state.ReachedWinScore(snake.ID) {
			return false
		}
		if snake.Alive {
			alive = true
		}
	}
	return alive
}

// newRound lays out a fresh board from the current settings.
func (d *Driver) newRound() error {
	settings := d.settings.Copy()
	settings.Seed = d.rng.Uint64()
	if settings.Seed == 0 {
		settings.Seed = 1
	}

	d.gameID = uuid.New()
	d.logger = log.With(d.baseLogger, "game", d.gameID.String())

	state, err := domain.NewSimulationState(settings, d.logger)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}
	d.state = state
	d.winner = -1
	d.scheduler.Clear()

	d.movesMu.Lock()
	d.pendingDir = domain.DirectionNone
	d.movesMu.Unlock()

	level.Info(d.logger).Log(
		"msg", "round ready",
		"difficulty", settings.Difficulty,
		"win_score", settings.WinScore,
		"walls", state.Walls.Len(),
		"foods", len(state.Foods),
	)
	return nil
}

func (d *Driver) transition(cmd Command) bool {
	from, to, ok := d.phase.Apply(cmd)
	if !ok {
		return false
	}
	level.Info(d.logger).Log("msg", "phase changed", "from", from, "to", to, "cmd", cmd)
	d.emit(Event{Type: EventPhaseChanged, Payload: PhasePayload{From: from, To: to, Winner: d.winner}})
	return true
}

func (d *Driver) emit(ev Event) {
	if d.eventCh == nil {
		return
	}
	select {
	case d.eventCh <- ev:
	default:
		level.Warn(d.baseLogger).Log("msg", "event channel full, dropping", "event", ev.Type)
	}
}

// Start begins a fresh round from the menu or after a finished round.
func (d *Driver) Start() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.phase.Can(CommandStart) {
		return false
	}
	if err := d.newRound(); err != nil {
		level.Error(d.logger).Log("msg", "could not start round", "err", err)
		d.emit(Event{Type: EventError, Payload: ErrorPayload{Message: err.Error()}})
		return false
	}
	return d.transition(CommandStart)
}

func (d *Driver) TogglePause() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transition(CommandTogglePause)
}

func (d *Driver) OpenSettings() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transition(CommandOpenSettings)
}

// CloseSettings returns to the menu with a board laid out for the new settings.
func (d *Driver) CloseSettings() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.transition(CommandCloseSettings) {
		return false
	}
	d.resetRound()
	return true
}

// ToMenu abandons the round.
func (d *Driver) ToMenu() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.transition(CommandToMenu) {
		return false
	}
	d.resetRound()
	return true
}

func (d *Driver) resetRound() {
	if err := d.newRound(); err != nil {
		level.Error(d.logger).Log("msg", "could not reset round", "err", err)
		d.emit(Event{Type: EventError, Payload: ErrorPayload{Message: err.Error()}})
		return
	}
	d.emit(Event{Type: EventStateUpdated})
}

// SetDifficulty takes effect on the next round. Only allowed from the
// menu or settings.
func (d *Driver) SetDifficulty(diff domain.Difficulty) bool {
	return d.configure(func(s *domain.Settings) { s.Difficulty = diff })
}

func (d *Driver) SetWinScore(score int) bool {
	return d.configure(func(s *domain.Settings) { s.WinScore = score })
}

func (d *Driver) SetPlayerName(name string) bool {
	return d.configure(func(s *domain.Settings) { s.PlayerName = name })
}

func (d *Driver) configure(change func(*domain.Settings)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.phase.Phase().Configurable() {
		return false
	}
	next := d.settings.Copy()
	change(next)
	if err := next.Validate(); err != nil {
		level.Debug(d.baseLogger).Log("msg", "settings rejected", "err", err)
		return false
	}
	d.settings = next
	return true
}

// SendSteer buffers the player's next heading. The last call before a
// tick wins; a reverse of the current heading is dropped by the tick.
func (d *Driver) SendSteer(dir domain.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("invalid direction %d", dir)
	}
	d.movesMu.Lock()
	defer d.movesMu.Unlock()
	d.pendingDir = dir
	return nil
}

func (d *Driver) Phase() Phase {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.phase.Phase()
}

func (d *Driver) GetState() *domain.SimulationState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Copy()
}

func (d *Driver) Settings() *domain.Settings {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.settings.Copy()
}

func (d *Driver) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Snapshot{
		Phase:    d.phase.Phase(),
		GameID:   d.gameID,
		Winner:   d.winner,
		State:    d.state.Copy(),
		Settings: d.settings.Copy(),
	}
}
