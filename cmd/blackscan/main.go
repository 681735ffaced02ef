// Command blackscan locates black-frame intervals in a video file using
// ffmpeg's blackdetect filter, applies the START_TIME offset from an
// optional <video>.ini sidecar, and prints a formatted report.
//
// It parses flags, resolves the external binaries, and runs the linear
// pipeline: sidecar offset -> duration probe -> streamed detection -> report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/blackscan/internal/check"
	"github.com/backmassage/blackscan/internal/config"
	"github.com/backmassage/blackscan/internal/detect"
	"github.com/backmassage/blackscan/internal/display"
	"github.com/backmassage/blackscan/internal/locate"
	"github.com/backmassage/blackscan/internal/logging"
	"github.com/backmassage/blackscan/internal/probe"
	"github.com/backmassage/blackscan/internal/sidecar"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "blackscan: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "blackscan: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "blackscan: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	// Phase 2: Resolve external binaries once; both are required.
	ffmpegPath, err := locate.FFmpeg()
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	ffprobePath, err := locate.FFprobe(ffmpegPath)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== blackscan v%s (%s) ===", version, commit)
	log.Info("Video: %s", cfg.VideoPath)
	log.Debug(cfg.Verbose, "ffmpeg:  %s", ffmpegPath)
	log.Debug(cfg.Verbose, "ffprobe: %s", ffprobePath)

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// detector kills the ffmpeg child instead of leaving it running.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Phase 4: Sidecar offset and duration probe.
	offset, found := sidecar.Offset(cfg.VideoPath)
	if found {
		log.Info("Sidecar START_TIME offset: %s", display.FormatTimeFull(offset))
	} else {
		log.Info("No sidecar metadata found; no offset correction will be applied")
	}

	total, err := probe.Duration(ctx, ffprobePath, cfg.VideoPath)
	if err != nil {
		log.Error("Cannot read video duration: %v", err)
		return 1
	}
	log.Info("Total duration: %s", display.FormatTimeFull(total))

	if cfg.Verbose {
		if mi, err := probe.Inspect(ctx, ffprobePath, cfg.VideoPath); err == nil {
			log.Debug(true, "Container: %s | %s | %s | %s",
				mi.FormatName, mi.Resolution(), mi.VideoCodec, display.FormatBytes(mi.Size))
		} else {
			log.Debug(true, "Stream inspection failed: %v", err)
		}
	}

	// Phase 5: Detection, with an in-place progress line when interactive.
	var onProgress func(float64)
	var bar *progressbar.ProgressBar
	if cfg.ShowProgress && display.IsTerminal(os.Stdout) {
		bar = progressbar.NewOptions(100,
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetRenderBlankState(true),
		)
		onProgress = func(pct float64) {
			_ = bar.Set(int(pct))
		}
	}

	intervals, err := detect.Run(ctx, detect.Options{
		FFmpegPath:    ffmpegPath,
		VideoPath:     cfg.VideoPath,
		TotalDuration: total,
		MinDuration:   cfg.MinDuration,
		PicThreshold:  cfg.PicThreshold,
		OnProgress:    onProgress,
	})
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("Interrupted; detection aborted, no results")
			return 1
		}
		log.Error("Detection failed: %v", err)
		return 1
	}

	printReport(log, intervals, offset)
	return 0
}

// printReport writes one line per interval with the sidecar offset applied
// to start and end (never to duration), then the final count.
func printReport(log *logging.Logger, intervals []detect.Interval, offset float64) {
	if len(intervals) == 0 {
		log.Info("No black sequences detected")
		log.Info("Sequences detected: 0")
		return
	}

	log.Info("Black sequences:")
	value := color.New(color.Bold)
	for _, iv := range intervals {
		fmt.Printf("  start %s   end %s   duration %s\n",
			value.Sprint(display.FormatTimeFull(iv.Start+offset)),
			value.Sprint(display.FormatTimeFull(iv.End+offset)),
			value.Sprint(display.FormatTimeFull(iv.Duration)))
	}
	log.Info("Sequences detected: %d", len(intervals))
}
