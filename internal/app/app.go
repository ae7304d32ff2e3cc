package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"snakebattle/internal/domain"
	"snakebattle/internal/node"
)

type Config struct {
	Settings *domain.Settings
	Logger   log.Logger
	// TracePath, when set, records every tick there.
	TracePath string
}

type App struct {
	driver   *node.Driver
	recorder *Recorder
	logger   log.Logger

	nodeEventCh chan node.Event

	eventCh chan AppEvent
	inputCh chan InputEvent

	cancel context.CancelFunc
	group  *errgroup.Group
	done   chan struct{}

	stopOnce sync.Once
	stopErr  error
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventPhaseChanged
	AppEventSnakeDied
	AppEventScored
	AppEventWin
	AppEventRespawned
	AppEventError
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputStart InputEventType = iota
	InputTogglePause
	InputOpenSettings
	InputCloseSettings
	InputToMenu
	InputSteer
	InputSetDifficulty
	InputSetWinScore
	InputSetPlayerName
	InputQuit
)

func NewApp(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	a := &App{
		logger:      log.With(logger, "component", "app"),
		nodeEventCh: make(chan node.Event, 256),
		eventCh:     make(chan AppEvent, 256),
		inputCh:     make(chan InputEvent, 64),
		done:        make(chan struct{}),
	}

	var observer node.TickObserver
	if cfg.TracePath != "" {
		rec, err := NewRecorder(cfg.TracePath, logger)
		if err != nil {
			return nil, err
		}
		a.recorder = rec
		observer = rec.Record
	}

	driver, err := node.NewDriver(node.DriverConfig{
		Settings: cfg.Settings,
		Logger:   logger,
		EventCh:  a.nodeEventCh,
		OnTick:   observer,
	})
	if err != nil {
		if a.recorder != nil {
			a.recorder.Close()
		}
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	a.driver = driver
	return a, nil
}

func (a *App) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	a.group, ctx = errgroup.WithContext(ctx)

	a.group.Go(func() error { return a.driver.Run(ctx) })
	a.group.Go(func() error { return a.eventLoop(ctx) })
	a.group.Go(func() error { return a.inputLoop(ctx) })

	go func() {
		<-ctx.Done()
		close(a.done)
	}()

	level.Info(a.logger).Log("msg", "app started", "trace", a.recorder != nil)
	return nil
}

// Stop cancels every loop, waits for them and closes the trace.
func (a *App) Stop() error {
	a.stopOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		if a.group != nil {
			if err := a.group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				a.stopErr = err
			}
		}
		if a.recorder != nil {
			if err := a.recorder.Close(); err != nil && a.stopErr == nil {
				a.stopErr = err
			}
		}
		level.Info(a.logger).Log("msg", "app stopped")
	})
	return a.stopErr
}

// Done is closed once the app is shutting down, e.g. after InputQuit.
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

func (a *App) Snapshot() node.Snapshot {
	return a.driver.Snapshot()
}

func (a *App) GetState() *domain.SimulationState {
	return a.driver.GetState()
}

func (a *App) Phase() node.Phase {
	return a.driver.Phase()
}

func (a *App) Settings() *domain.Settings {
	return a.driver.Settings()
}

func (a *App) SendSteer(dir domain.Direction) error {
	return a.driver.SendSteer(dir)
}

func (a *App) eventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-a.nodeEventCh:
			a.handleNodeEvent(event)
		}
	}
}

var nodeToApp = map[node.EventType]AppEventType{
	node.EventStateUpdated: AppEventStateUpdated,
	node.EventPhaseChanged: AppEventPhaseChanged,
	node.EventSnakeDied:    AppEventSnakeDied,
	node.EventScored:       AppEventScored,
	node.EventWin:          AppEventWin,
	node.EventRespawned:    AppEventRespawned,
	node.EventError:        AppEventError,
}

func (a *App) handleNodeEvent(event node.Event) {
	typ, ok := nodeToApp[event.Type]
	if !ok {
		return
	}
	if event.Type == node.EventError {
		level.Warn(a.logger).Log("msg", "driver error", "payload", fmt.Sprintf("%+v", event.Payload))
	}
	a.publish(AppEvent{Type: typ, Payload: event.Payload})
}

func (a *App) publish(ev AppEvent) {
	select {
	case a.eventCh <- ev:
	default:
		level.Debug(a.logger).Log("msg", "app event channel full", "type", ev.Type)
	}
}

func (a *App) inputLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input := <-a.inputCh:
			if input.Type == InputQuit {
				level.Info(a.logger).Log("msg", "quit requested")
				a.cancel()
				return nil
			}
			a.handleInput(input)
		}
	}
}

func (a *App) handleInput(input InputEvent) {
	var ok bool
	switch input.Type {
	case InputStart:
		ok = a.driver.Start()
	case InputTogglePause:
		ok = a.driver.TogglePause()
	case InputOpenSettings:
		ok = a.driver.OpenSettings()
	case InputCloseSettings:
		ok = a.driver.CloseSettings()
	case InputToMenu:
		ok = a.driver.ToMenu()

	case InputSteer:
		dir, _ := input.Payload.(domain.Direction)
		ok = a.SendSteer(dir) == nil
	case InputSetDifficulty:
		diff, _ := input.Payload.(domain.Difficulty)
		ok = a.driver.SetDifficulty(diff)
	case InputSetWinScore:
		score, _ := input.Payload.(int)
		ok = a.driver.SetWinScore(score)
	case InputSetPlayerName:
		name, _ := input.Payload.(string)
		ok = a.driver.SetPlayerName(name)
	}

	if !ok {
		level.Debug(a.logger).Log("msg", "input ignored", "type", input.Type, "phase", a.driver.Phase())
	}
}
