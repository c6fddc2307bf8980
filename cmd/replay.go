package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	app "cube-scanner/internal/application"
	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/infrastructure/vision"
)

var (
	replayEvents string
	replaySolve  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <dir>",
	Short: "Run the scanner over saved frames without a webcam or window",
	Long: `Replay feeds PNG/JPEG frames from a directory (in name order) through the
same pipeline as the webcam. Key presses are given with --events, one per
frame, for example --events none,capture,none,capture.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayEvents, "events", "", "comma-separated events per frame: none, capture, solve, reset, calibrate, quit")
	replayCmd.Flags().BoolVar(&replaySolve, "solve", false, "solve the cube after the last frame")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := parseEvents(replayEvents)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("detector") {
		flagDetector = "edge"
	}

	a, err := buildApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	camera, err := vision.OpenDirCamera(args[0])
	if err != nil {
		return err
	}
	display := vision.NewHeadlessDisplay(events...)

	scanner := a.container.Scanner
	if err := scanner.Run(ctx, camera, display); err != nil {
		return err
	}
	log.Printf("Replayed %d frames, scanned sides: %d", display.Frames(), len(scanner.Session().Cube()))

	if replaySolve {
		res := scanner.HandleEvent(ctx, entity.EventSolve, app.FrameResult{})
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

var eventNames = map[string]entity.Event{
	"none":      entity.EventNone,
	"capture":   entity.EventCapture,
	"solve":     entity.EventSolve,
	"reset":     entity.EventReset,
	"calibrate": entity.EventToggleCalibration,
	"quit":      entity.EventQuit,
}

func parseEvents(s string) ([]entity.Event, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []entity.Event
	for _, name := range strings.Split(s, ",") {
		ev, ok := eventNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown event %q", name)
		}
		out = append(out, ev)
	}
	return out, nil
}
