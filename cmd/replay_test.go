package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"cube-scanner/config"
	"cube-scanner/internal/domain/entity"
)

func TestParseEvents(t *testing.T) {
	events, err := parseEvents("none, Capture,solve,calibrate,reset,quit")
	require.NoError(t, err)
	require.Equal(t, []entity.Event{
		entity.EventNone,
		entity.EventCapture,
		entity.EventSolve,
		entity.EventToggleCalibration,
		entity.EventReset,
		entity.EventQuit,
	}, events)

	events, err = parseEvents("")
	require.NoError(t, err)
	require.Empty(t, events)

	_, err = parseEvents("capture,jump")
	require.Error(t, err)
}

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolVarP(&flagAutoscan, "autoscan", "s", false, "")
	cmd.Flags().BoolVarP(&flagNormalize, "normalize", "n", false, "")
	cmd.Flags().BoolVarP(&flagRemote, "remote", "r", false, "")
	cmd.Flags().IntVar(&flagCamera, "camera", 0, "")
	cmd.Flags().StringVar(&flagDB, "db", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"-s", "--db", "/tmp/x.db"}))

	cfg := &config.Config{Normalize: true, CameraDevice: 2, DatabasePath: "cube.db"}
	applyFlags(cmd, cfg)

	require.True(t, cfg.Autoscan)
	require.True(t, cfg.Normalize)
	require.Equal(t, 2, cfg.CameraDevice)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	require.False(t, cfg.Remote.Enabled)
}

func TestNewDetector(t *testing.T) {
	_, err := newDetector("edge")
	require.NoError(t, err)

	_, err = newDetector("hough")
	require.Error(t, err)
}
