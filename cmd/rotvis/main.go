// Command rotvis is a terminal front-end for comparing Euler-angle
// interpolation against quaternion slerp.
//
// Run it from a directory containing rotvis.cfg.json, or point --config at
// one:
//
//	rotvis --config ./configs --log-level debug
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	rotvis "github.com/Flafla2/Rotation-Vis"
	"github.com/Flafla2/Rotation-Vis/internal/config"
)

func main() {
	flags := pflag.NewFlagSet("rotvis", pflag.ExitOnError)
	configDir := flags.String("config", ".", "directory containing "+config.ConfigName)
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = flags.Parse(os.Args[1:])

	configErr := config.Load(*configDir)
	// Flags win over the file.
	if err := viper.BindPFlag("logLevel", flags.Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "bind flag: %v\n", err)
		os.Exit(2)
	}

	logFile, err := openLogFile(config.GetString("logsDir"), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	app, err := buildApp(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building app: %v\n", err)
		os.Exit(1)
	}
	if configErr != nil {
		app.Logger().Warnf("failed to load config, using defaults: %v", configErr)
	} else {
		app.Logger().Infof("loaded config from %s", *configDir)
	}

	program := tea.NewProgram(newModel(app, config.GetFrameInterval(), config.GetString("presetFile")), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		app.Logger().Errorf("program exited: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// buildApp wires the host app from the loaded configuration.
func buildApp(logOutput io.Writer) (*rotvis.App, error) {
	debug, err := rotvis.ParseLevel(config.GetString("logLevel"))
	if err != nil {
		return nil, err
	}

	interpCfg := config.GetInterpolationConfig()
	mode, ok := rotvis.ParseInterpolationMode(interpCfg.Mode)
	if !ok {
		return nil, fmt.Errorf("interpolation.mode %q: unknown mode", interpCfg.Mode)
	}

	sweepCfg, err := config.GetSweepConfig()
	if err != nil {
		return nil, err
	}

	modelCfgs, err := config.GetModels()
	if err != nil {
		return nil, err
	}
	models := make([]rotvis.Model, len(modelCfgs))
	for i, m := range modelCfgs {
		models[i] = rotvis.Model{Name: m.Name, Prefab: m.Prefab}
	}

	app := rotvis.NewAppBuilder().
		UseModule(
			rotvis.LoggingModule{Prefix: "rotvis", Debug: debug, Output: logOutput},
			rotvis.TimeModule{},
			rotvis.OrientationModule{
				Rate:  config.GetRotationRate(),
				Mode:  mode,
				Alpha: interpCfg.Alpha,
			},
			rotvis.InputModule{},
			rotvis.PreviewModule{},
			rotvis.ModelModule{Models: models, Initial: config.GetInitialModel()},
			rotvis.SweepModule{
				Duration: sweepCfg.Duration,
				Easing:   sweepCfg.Easing,
				Loop:     sweepCfg.Loop,
			},
			rotvis.MetricsModule{},
		).
		Build()

	return app, nil
}

// openLogFile creates logsDir if needed and opens a log file named after
// the session start, moving any previous file of the same name aside.
func openLogFile(logsDir string, start time.Time) (*os.File, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	path := filepath.Join(logsDir, fmt.Sprintf("rotvis.%s.log", start.Format("20060102_150405")))
	if _, err := os.Stat(path); err == nil {
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}
