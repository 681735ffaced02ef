package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into detection, display, and utility. Inverted flags
// (e.g. --no-progress) are applied after Parse so Config defaults hold
// unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing video path).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("blackscan", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var extra extraFlags

	defineDetectionFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &extra)
	defineUtilityFlags(fs, &extra)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyExtraFlags(cfg, &extra)

	if extra.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if extra.showVersion {
		fmt.Fprintln(os.Stdout, "blackscan v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// extraFlags holds boolean flags that are applied after Parse. These either
// invert a default (e.g. noProgress -> ShowProgress=false) or trigger exit
// (showHelp, showVersion).
type extraFlags struct {
	noProgress  bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineDetectionFlags registers -d/--duration and -t/--threshold.
func defineDetectionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.MinDuration, "duration", cfg.MinDuration, "Minimum black-segment duration in seconds")
	fs.Float64Var(&cfg.MinDuration, "d", cfg.MinDuration, "Same as --duration")
	fs.Float64Var(&cfg.PicThreshold, "threshold", cfg.PicThreshold, "Brightness threshold for a black picture")
	fs.Float64Var(&cfg.PicThreshold, "t", cfg.PicThreshold, "Same as --threshold")
}

// defineDisplayFlags registers --no-progress, --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.BoolVar(&n.noProgress, "no-progress", false, "Do not show the live progress line")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *extraFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyExtraFlags copies inverted flag values into cfg.
func applyExtraFlags(cfg *Config, n *extraFlags) {
	if n.noProgress {
		cfg.ShowProgress = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets VideoPath from the single positional arg when not
// in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one video file path")
	}
	cfg.VideoPath = strings.TrimSpace(args[0])
	if cfg.VideoPath == "" {
		return fmt.Errorf("need exactly one video file path")
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "blackscan v" + version + " — black-frame interval detector (ffmpeg blackdetect)"},
		{"", ""},
		{"  blackscan [OPTIONS] <video_file>", ""},
		{"", ""},
		{"Detection", ""},
		{"  -d, --duration <secs>", "Minimum black-segment duration (default: 0.5)"},
		{"  -t, --threshold <ratio>", "Black-picture brightness threshold (default: 0.98)"},
		{"", ""},
		{"Display", ""},
		{"  --no-progress", "Do not show the live progress line"},
		{"  --color", "Force colored output"},
		{"  --no-color", "Disable colored output"},
		{"  -v, --verbose", "Verbose output (resolved paths, stream info)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, blackdetect)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Environment", ""},
		{"  FFMPEG_PATH", "ffmpeg executable, or a directory containing it"},
		{"", ""},
		{"Sidecar", ""},
		{"  <video_file>.ini", "Optional START_TIME=\"<Nh><Nm><N.Ns>\" timestamp offset"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
