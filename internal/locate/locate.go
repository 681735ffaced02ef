// Package locate resolves the external ffmpeg and ffprobe executables.
//
// ffmpeg resolution order: the FFMPEG_PATH environment variable (naming
// either the executable itself or a directory containing it), a bin/
// directory next to the running binary (bundled distribution), then the
// system PATH. ffprobe is looked up next to the resolved ffmpeg first, then
// on PATH. Paths are resolved once per run and treated as immutable.
package locate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// EnvVar names the environment variable that overrides ffmpeg resolution.
const EnvVar = "FFMPEG_PATH"

// FFmpeg returns the resolved ffmpeg path, or an error with placement
// guidance when it cannot be found anywhere.
func FFmpeg() (string, error) {
	if env := os.Getenv(EnvVar); env != "" {
		candidate := env
		if fi, err := os.Stat(env); err == nil && fi.IsDir() {
			candidate = filepath.Join(env, exeName("ffmpeg"))
		}
		if isFile(candidate) {
			return candidate, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), "bin", exeName("ffmpeg"))
		if isFile(bundled) {
			return bundled, nil
		}
	}

	if p, err := exec.LookPath(exeName("ffmpeg")); err == nil {
		return p, nil
	}

	return "", fmt.Errorf("ffmpeg not found: set %s, place it in a bin/ directory next to blackscan, or add it to PATH", EnvVar)
}

// FFprobe returns the resolved ffprobe path, preferring a sibling of the
// already-resolved ffmpeg so a bundled or overridden toolchain stays
// self-consistent.
func FFprobe(ffmpegPath string) (string, error) {
	if ffmpegPath != "" {
		candidate := filepath.Join(filepath.Dir(ffmpegPath), exeName("ffprobe"))
		if isFile(candidate) {
			return candidate, nil
		}
	}

	if p, err := exec.LookPath(exeName("ffprobe")); err == nil {
		return p, nil
	}

	return "", errors.New("ffprobe not found next to ffmpeg or on PATH")
}

func exeName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
