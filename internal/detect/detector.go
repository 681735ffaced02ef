// Package detect runs ffmpeg's blackdetect filter as a child process and
// parses its diagnostic stderr stream into black intervals.
//
// ffmpeg is used purely for its side-channel diagnostics: video output goes
// to a null sink, audio is disabled, and the only data we consume is the
// stderr log where blackdetect reports intervals and the progress line
// carries a time= token.
package detect

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/backmassage/blackscan/internal/display"
)

// Interval is one detected dark segment, in seconds from the start of the
// video. Values are as reported by ffmpeg, before any sidecar offset is
// applied; intervals arrive in chronological order and are immutable once
// created.
type Interval struct {
	Start    float64
	End      float64
	Duration float64
}

// Options parameterize a detection run.
type Options struct {
	FFmpegPath    string
	VideoPath     string
	TotalDuration float64 // Container duration in seconds, for progress math.
	MinDuration   float64 // blackdetect d= parameter.
	PicThreshold  float64 // blackdetect pic_th= parameter.

	// OnProgress, when non-nil, is called with a 0-100 percentage as time=
	// tokens arrive on the diagnostic stream.
	OnProgress func(percent float64)
}

// Precompiled stderr token patterns.
var (
	timeRe  = regexp.MustCompile(`time=(\d{2}:\d{2}:\d{2}\.\d+)`)
	blackRe = regexp.MustCompile(`black_start:([\d.]+)\s+black_end:([\d.]+)\s+black_duration:([\d.]+)`)
)

// Run executes ffmpeg with the blackdetect filter and returns the detected
// intervals in chronological order. It blocks until the child exits. When
// ctx is cancelled mid-stream the child process is killed and no partial
// results are returned.
func Run(ctx context.Context, opts Options) ([]Interval, error) {
	filter := fmt.Sprintf("blackdetect=d=%g:pic_th=%g", opts.MinDuration, opts.PicThreshold)

	cmd := exec.CommandContext(ctx, opts.FFmpegPath,
		"-hide_banner", "-nostdin", "-loglevel", "info",
		"-i", opts.VideoPath,
		"-vf", filter,
		"-an", "-f", "null", "-",
	)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	intervals := scanStream(stderr, opts.TotalDuration, opts.OnProgress)

	err = cmd.Wait()
	if ctx.Err() != nil {
		// Interrupted: the child has already been killed; partial results
		// are discarded on purpose.
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("ffmpeg blackdetect: %w", err)
	}
	return intervals, nil
}

// scanStream reads the diagnostic stream line by line, firing onProgress for
// time= tokens and collecting black_start/black_end/black_duration triples.
// Factored out of Run so parsing is testable without a subprocess.
func scanStream(r io.Reader, total float64, onProgress func(float64)) []Interval {
	var intervals []Interval

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(scanDiagnosticLines)

	for sc.Scan() {
		line := sc.Text()

		if onProgress != nil && total > 0 {
			if m := timeRe.FindStringSubmatch(line); m != nil {
				onProgress(display.TimeStrToSeconds(m[1]) / total * 100)
			}
		}

		if m := blackRe.FindStringSubmatch(line); m != nil {
			intervals = append(intervals, Interval{
				Start:    parseFloat(m[1]),
				End:      parseFloat(m[2]),
				Duration: parseFloat(m[3]),
			})
		}
	}
	return intervals
}

// scanDiagnosticLines splits on \n or \r. ffmpeg terminates its in-place
// progress updates with a bare carriage return, so splitting on newlines
// alone would only surface the final progress state.
func scanDiagnosticLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		// Swallow a \n that immediately follows a \r.
		if data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
