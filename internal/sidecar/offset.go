// Package sidecar reads the optional <video>.ini companion file and extracts
// the START_TIME offset used to align reported timestamps with an external
// absolute-time reference.
//
// Missing files, missing fields, and malformed values all degrade to a zero
// offset without error. Sidecar metadata is best-effort and must never abort
// a detection run.
package sidecar

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	// START_TIME="10h36m22.010s" style assignment inside the sidecar.
	startTimeRe = regexp.MustCompile(`START_TIME\s*=\s*"([^"]+)"`)

	// Clock components; each one optional, missing components are zero.
	clockRe = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+(?:\.\d+)?)s)?`)
)

// Offset returns the START_TIME offset in seconds from videoPath's ".ini"
// sidecar, and whether a sidecar file was present at all.
func Offset(videoPath string) (float64, bool) {
	data, err := os.ReadFile(videoPath + ".ini")
	if err != nil {
		return 0, false
	}
	return ParseStartTime(string(data)), true
}

// ParseStartTime extracts and converts the START_TIME field from raw sidecar
// content. An absent field or an unparseable value yields 0.
func ParseStartTime(content string) float64 {
	m := startTimeRe.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	return parseClock(strings.TrimSpace(m[1]))
}

// parseClock converts "<Nh><Nm><N.Ns>" (each component optional) to seconds.
func parseClock(s string) float64 {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	var total float64
	if m[1] != "" {
		h, _ := strconv.ParseFloat(m[1], 64)
		total += h * 3600
	}
	if m[2] != "" {
		min, _ := strconv.ParseFloat(m[2], 64)
		total += min * 60
	}
	if m[3] != "" {
		sec, _ := strconv.ParseFloat(m[3], 64)
		total += sec
	}
	return total
}
