package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cube-scanner/config"
	"cube-scanner/internal/container"
	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
	"cube-scanner/internal/i18n"
	"cube-scanner/internal/infrastructure/solver"
	"cube-scanner/internal/infrastructure/storage"
	"cube-scanner/internal/infrastructure/transport"
	"cube-scanner/internal/infrastructure/vision"

	telegram "cube-scanner/internal/api"
)

var (
	flagAutoscan  bool
	flagNormalize bool
	flagRemote    bool
	flagCamera    int
	flagDB        string
	flagLocale    string
	flagDetector  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cube-scanner",
	Short: "Scan a Rubik's cube with a webcam and print the solution",
	Long: `cube-scanner finds the 3x3 sticker grid on webcam frames, builds the cube
state face by face and hands it to an external solver.

Keys: <SPACE> capture, (s)olve, (r)eset, (c)alibrate, (q)uit.`,
	SilenceUsage: true,
	RunE:         runScanner,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&flagAutoscan, "autoscan", "s", false, "capture faces automatically once a grid is found")
	flags.BoolVarP(&flagNormalize, "normalize", "n", false, "print every move of the solution as a sentence")
	flags.BoolVarP(&flagRemote, "remote", "r", false, "send the solution to the remote device")
	flags.IntVar(&flagCamera, "camera", 0, "webcam device index")
	flags.StringVar(&flagDB, "db", "", "settings database path")
	flags.StringVar(&flagLocale, "locale", "", "message language (en, ru)")
	flags.StringVar(&flagDetector, "detector", "gocv", "grid detector: gocv or edge")

	rootCmd.AddCommand(replayCmd)
}

// bootstrap — собранное приложение и то, что нужно закрыть при выходе
type bootstrap struct {
	cfg       *config.Config
	container *container.Container
	settings  *storage.SQLiteSettingsRepository
}

func (a *bootstrap) Close() {
	if err := a.settings.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

func runScanner(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	camera, err := vision.OpenCamera(a.cfg.CameraDevice, a.cfg.FrameWidth, a.cfg.FrameHeight)
	if err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	display, err := vision.NewWindowDisplay("Cube scanner")
	if err != nil {
		camera.Close()
		return fmt.Errorf("open window: %w", err)
	}

	log.Println("Scanner is running...")
	return a.container.Scanner.Run(ctx, camera, display)
}

// buildApp читает конфигурацию, применяет флаги и собирает зависимости.
func buildApp(ctx context.Context, cmd *cobra.Command) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)

	distance, err := entity.DistanceByName(cfg.ColorMetric)
	if err != nil {
		return nil, err
	}

	settings, err := storage.OpenSQLiteSettingsRepository(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	solve, err := solver.NewCommandSolver(cfg.SolverCmd)
	if err != nil {
		settings.Close()
		return nil, err
	}

	detector, err := newDetector(flagDetector)
	if err != nil {
		settings.Close()
		return nil, err
	}

	opts := container.Options{
		Autoscan:  cfg.Autoscan,
		Normalize: cfg.Normalize,
		Distance:  distance,
	}

	if cfg.Remote.Enabled {
		tr, err := transport.New(transport.Options{
			Kind:       cfg.Remote.Transport,
			SerialPort: cfg.Remote.SerialPort,
			SerialBaud: cfg.Remote.SerialBaud,
			TCPAddr:    cfg.Remote.TCPAddr,
			BTAddr:     cfg.Remote.BTAddr,
			BTChannel:  cfg.Remote.BTChannel,
			Timeout:    cfg.Remote.Timeout,
		})
		if err != nil {
			settings.Close()
			return nil, fmt.Errorf("remote transport: %w", err)
		}
		opts.Transport = tr
	}

	if cfg.Telegram.Token != "" {
		notifier, err := telegram.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			// уведомления необязательны
			log.Printf("Telegram notifications are disabled: %v", err)
		} else {
			opts.Notifier = notifier
		}
	}

	locale := container.ResolveLocale(ctx, settings, flagLocale, cfg.Locale)
	c := container.New(settings, detector, vision.NewSampler(), solve, i18n.New(locale), opts)
	c.Scanner.Restore(ctx)

	return &bootstrap{cfg: cfg, container: c, settings: settings}, nil
}

// applyFlags переносит явно заданные флаги поверх переменных окружения.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("autoscan") {
		cfg.Autoscan = flagAutoscan
	}
	if flags.Changed("normalize") {
		cfg.Normalize = flagNormalize
	}
	if flags.Changed("remote") {
		cfg.Remote.Enabled = flagRemote
	}
	if flags.Changed("camera") {
		cfg.CameraDevice = flagCamera
	}
	if flags.Changed("db") {
		cfg.DatabasePath = flagDB
	}
}

func newDetector(name string) (port.GridDetector, error) {
	switch name {
	case "gocv", "":
		return vision.NewGoCVDetector(), nil
	case "edge":
		return vision.NewEdgeDetector(), nil
	}
	return nil, fmt.Errorf("unknown detector %q", name)
}
