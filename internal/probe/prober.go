// Package probe provides ffprobe-based media inspection: the container
// duration query that drives progress math, and a single JSON call for the
// verbose file-stats line.
package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Duration returns the container duration of videoPath in seconds.
// Any invocation or parse failure is returned as an error; there is no retry
// and no fallback.
func Duration(ctx context.Context, ffprobePath, videoPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %q: %w", videoPath, err)
	}

	return ParseDuration(string(out))
}

// ParseDuration parses ffprobe's raw duration output. Exported for testing
// without a real ffprobe binary. A non-positive duration is rejected because
// it would break progress percentage math downstream.
func ParseDuration(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive duration %q", s)
	}
	return d, nil
}
