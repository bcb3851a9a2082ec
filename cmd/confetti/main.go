// Command confetti runs the interactive particle playground.
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gonewx/confetti/pkg/app"
)

func initLogs(level string) error {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose engine logging")
	logLevel := flag.String("log", "warn", "log level: debug, info, warn, error")
	fps := flag.Int("fps", 0, "animation frame cap (0 = persisted preference or 60)")
	effectConfig := flag.String("config", "", "path to a YAML effect config overriding the built-in palettes and spreads")
	reducedMotion := flag.Bool("reduced-motion", false, "force the reduced-motion preference for this run")
	flag.Parse()

	if err := initLogs(*logLevel); err != nil {
		panic(err)
	}
	defer zap.S().Sync()

	a, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		TargetFPS:        *fps,
		EffectConfigPath: *effectConfig,
		ReducedMotion:    *reducedMotion,
	})
	if err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Confetti Playground")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	zap.S().Infow("starting playground", "fps", *fps, "reducedMotion", *reducedMotion)
	if err := ebiten.RunGame(a); err != nil && err != ebiten.Termination {
		zap.S().Fatalw("run failed", "error", err)
	}
}
