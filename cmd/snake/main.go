package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"

	"snakebattle/internal/app"
	"snakebattle/internal/domain"
	"snakebattle/internal/logging"
	"snakebattle/internal/node"
	"snakebattle/internal/ui/audio"
	"snakebattle/internal/ui/graphics"
	"snakebattle/internal/ui/graphics/screens"
	"snakebattle/internal/ui/types"
)

func main() {
	difficulty := flag.String("difficulty", "medium", "easy, medium or hard")
	winScore := flag.Int("win", domain.DefaultWinScore, "points needed to win")
	seed := flag.Uint64("seed", 0, "random seed, 0 for time based")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	tracePath := flag.String("trace", "", "record every tick to this file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger := logging.Stderr(*logLevel)
	logging.SetGlobalLogger(logger)

	settings, err := buildSettings(*difficulty, *winScore, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	application, err := app.NewApp(app.Config{Settings: settings, Logger: logger, TracePath: *tracePath})
	if err != nil {
		level.Error(logger).Log("msg", "failed to create app", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Start(ctx); err != nil {
		level.Error(logger).Log("msg", "failed to start app", "err", err)
		os.Exit(1)
	}

	sound := audio.NewCues(logger)
	sound.SetMuted(*mute)

	engine := graphics.NewEngine(sound, logger)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewSettingsScreen(engine),
		screens.NewGameScreen(engine),
	)
	engine.SetSnapshot(application.Snapshot())

	go func() {
		<-application.Done()
		level.Info(logger).Log("msg", "shutting down")
		engine.Quit()
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	if err := engine.Run(); err != nil {
		level.Error(logger).Log("msg", "ui error", "err", err)
	}

	if err := application.Stop(); err != nil {
		level.Error(logger).Log("msg", "shutdown", "err", err)
		os.Exit(1)
	}
}

func buildSettings(difficulty string, winScore int, seed uint64) (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	settings.Difficulty = d
	settings.WinScore = winScore
	settings.Seed = seed
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for {
		select {
		case <-application.Done():
			return
		case event := <-application.Events():
			engine.SetSnapshot(application.Snapshot())
			notify(engine, event)
		}
	}
}

func notify(engine *graphics.Engine, event app.AppEvent) {
	switch event.Type {
	case app.AppEventScored:
		engine.PlayCue(audio.CueScore)

	case app.AppEventSnakeDied:
		engine.PlayCue(audio.CueDeath)
		if p, ok := event.Payload.(node.SnakePayload); ok && p.Player {
			engine.SetMessage(fmt.Sprintf("You died (%s)!", p.Cause))
		}

	case app.AppEventRespawned:
		if p, ok := event.Payload.(node.SnakePayload); ok && p.Player {
			engine.PlayCue(audio.CueRespawn)
			engine.SetMessage("Respawned with 0 points")
		}

	case app.AppEventPhaseChanged:
		p, ok := event.Payload.(node.PhasePayload)
		if !ok {
			return
		}
		switch p.To {
		case node.PhaseWin:
			engine.PlayCue(audio.CueWin)
		case node.PhaseGameOver:
			engine.PlayCue(audio.CueGameOver)
		}

	case app.AppEventError:
		if p, ok := event.Payload.(node.ErrorPayload); ok {
			engine.SetError(p.Message)
		}
	}
}

var uiToInput = map[types.UIEventType]app.InputEventType{
	types.UIEventStart:         app.InputStart,
	types.UIEventTogglePause:   app.InputTogglePause,
	types.UIEventOpenSettings:  app.InputOpenSettings,
	types.UIEventCloseSettings: app.InputCloseSettings,
	types.UIEventToMenu:        app.InputToMenu,
	types.UIEventSetDifficulty: app.InputSetDifficulty,
	types.UIEventSetWinScore:   app.InputSetWinScore,
	types.UIEventSetPlayerName: app.InputSetPlayerName,
	types.UIEventQuit:          app.InputQuit,
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	logger := logging.Component(nil, "main")
	for {
		select {
		case <-application.Done():
			return
		case event := <-engine.Events():
			if event.Type == types.UIEventSteer {
				data, ok := event.Payload.(types.SteerData)
				if !ok {
					continue
				}
				if err := application.SendSteer(data.Direction); err != nil {
					level.Debug(logger).Log("msg", "steer rejected", "err", err)
				}
				continue
			}
			typ, ok := uiToInput[event.Type]
			if !ok {
				continue
			}
			select {
			case application.Input() <- app.InputEvent{Type: typ, Payload: event.Payload}:
			case <-application.Done():
				return
			}
		}
	}
}
