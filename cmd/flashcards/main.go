// Command flashcards is a terminal organizer for flashcard sets
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/flashcards/app"
	"github.com/lixenwraith/flashcards/audio"
	"github.com/lixenwraith/flashcards/config"
	"github.com/lixenwraith/flashcards/flashcard"
	"github.com/lixenwraith/flashcards/render"
	"github.com/lixenwraith/flashcards/render/renderer"
	"github.com/lixenwraith/flashcards/terminal"
	"github.com/lixenwraith/flashcards/terminal/tui"
)

var (
	configFlag = flag.String("config", "", "Path to config file (toml, yaml or json)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the log directory")
	soundFlag  = flag.Bool("sound", false, "Play audio cues on set create and discard")
	borderFlag = flag.String("border", "", "Border style: single, double, rounded, heavy, none")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flashcards: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	theme, err := tui.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return err
	}
	border, err := tui.ParseLineType(cfg.UI.Border)
	if err != nil {
		return err
	}

	scr, err := terminal.New()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}

	// Panic Recovery: terminal is reset and the crash becomes the returned error,
	// deferred cleanup below and the log file close still run
	defer restoreOnPanic(scr.Fini, logger, os.Stderr, &err)
	// Normal exit terminal cleanup
	defer scr.Fini()

	sound := setupSound(cfg.Audio, logger)
	if sm, ok := sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	orchestrator := render.NewOrchestrator(render.NewContext(theme, border), render.Pages{
		SetList:   renderer.NewSetListRenderer(),
		CreateSet: renderer.NewCreateSetRenderer(),
	})
	orchestrator.Register(renderer.NewBackgroundRenderer(), render.PriorityBackground)

	state := app.NewState(seedSets(cfg.SeedSets)...)

	logger.Info("starting", "border", cfg.UI.Border, "theme", cfg.UI.Theme, "sound", cfg.Audio.Enabled)
	if err := app.New(scr, orchestrator, state, sound, logger).Run(); err != nil {
		return err
	}
	logger.Info("exited", "sets", state.SetCount())
	return nil
}

// restoreOnPanic must be deferred directly. On panic it restores the terminal,
// reports the crash with its stack to w and stores it in errp
func restoreOnPanic(restore func(), logger *slog.Logger, w io.Writer, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	restore()
	logger.Error("crashed", "panic", r)
	fmt.Fprintf(w, "\n\x1b[31mFLASHCARDS CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", debug.Stack())
	*errp = fmt.Errorf("crashed: %v", r)
}

// loadConfig loads the config and applies command line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	if *borderFlag != "" {
		cfg.UI.Border = *borderFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupSound returns nil when audio is disabled or unavailable, the app runs silently
func setupSound(cfg config.AudioConfig, logger *slog.Logger) app.SoundPlayer {
	if !cfg.Enabled {
		return nil
	}

	sm := audio.NewSoundManager(cfg.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return nil
	}
	return sm
}

func seedSets(names []string) []flashcard.Set {
	sets := make([]flashcard.Set, len(names))
	for i, name := range names {
		sets[i] = flashcard.NewSet(name)
	}
	return sets
}
