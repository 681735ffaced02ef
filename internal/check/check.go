// Package check provides system diagnostics (--check mode): binary
// resolution, version reporting, and blackdetect filter availability.
package check

import (
	"os/exec"
	"strings"

	"github.com/backmassage/blackscan/internal/locate"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: resolves ffmpeg and ffprobe,
// logs their versions, and verifies the blackdetect filter is compiled into
// this ffmpeg build. Returns false when anything required is missing.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	ffmpegPath, err := locate.FFmpeg()
	if err != nil {
		log.Error("%v", err)
		ok = false
	} else {
		log.Success("ffmpeg: %s", ffmpegPath)
		logVersion(log, ffmpegPath)
		if hasBlackdetect(ffmpegPath) {
			log.Success("blackdetect filter available")
		} else {
			log.Error("blackdetect filter missing from this ffmpeg build")
			ok = false
		}
	}

	ffprobePath, err := locate.FFprobe(ffmpegPath)
	if err != nil {
		log.Error("%v", err)
		ok = false
	} else {
		log.Success("ffprobe: %s", ffprobePath)
		logVersion(log, ffprobePath)
	}

	return ok
}

// logVersion logs the first line of the tool's -version output.
func logVersion(log Logger, path string) {
	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", path, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Info("  %s", firstLine)
}

// hasBlackdetect reports whether ffmpeg lists the blackdetect filter.
func hasBlackdetect(ffmpegPath string) bool {
	out, err := exec.Command(ffmpegPath, "-hide_banner", "-filters").Output()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), "blackdetect")
}
