package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DurationReader reads the playback duration of a local media file.
type DurationReader interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FFprobeConfig holds configuration for the ffprobe duration reader.
type FFprobeConfig struct {
	// FFprobePath is the path to the ffprobe binary.
	// If empty, "ffprobe" will be used (assumes it's in PATH).
	FFprobePath string
}

// DefaultFFprobeConfig returns an FFprobeConfig with defaults.
func DefaultFFprobeConfig() FFprobeConfig {
	return FFprobeConfig{
		FFprobePath: "ffprobe",
	}
}

// FFprobe implements DurationReader using the ffprobe CLI.
type FFprobe struct {
	config FFprobeConfig
}

var _ DurationReader = (*FFprobe)(nil)

// NewFFprobe creates a new ffprobe-based reader.
func NewFFprobe(cfg FFprobeConfig) *FFprobe {
	if cfg.FFprobePath == "" {
		cfg.FFprobePath = "ffprobe"
	}
	return &FFprobe{config: cfg}
}

// Duration runs ffprobe on inputPath and returns the container duration in seconds.
func (p *FFprobe) Duration(ctx context.Context, inputPath string) (float64, error) {
	if err := validateInput(inputPath); err != nil {
		return 0, err
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, p.config.FFprobePath, buildDurationArgs(inputPath)...)
	cmd.Stdout = &stdout
	cmd.Stderr = nil

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("duration read cancelled: %w", ctx.Err())
		}
		return 0, fmt.Errorf("ffprobe execution failed: %w", err)
	}

	return parseDuration(stdout.String())
}

// buildDurationArgs prints only the format duration as a bare number.
func buildDurationArgs(inputPath string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	}
}

func parseDuration(out string) (float64, error) {
	s := strings.TrimSpace(out)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}

	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %v", d)
	}
	return d, nil
}

// validateInput checks if the input file exists and is a regular file.
func validateInput(inputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", inputPath)
		}
		return fmt.Errorf("failed to access input file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("input path is a directory, expected a file: %s", inputPath)
	}

	return nil
}
