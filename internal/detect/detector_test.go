package detect

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// Representative blackdetect stderr. Progress updates are terminated by a
// bare carriage return, exactly as ffmpeg emits them.
const sampleStream = "Input #0, mpegts, from 'recording.ts':\n" +
	"  Duration: 00:00:10.00, start: 1.400000, bitrate: 3404 kb/s\n" +
	"Output #0, null, to 'pipe:':\n" +
	"frame=   25 fps= 25 q=-0.0 size=N/A time=00:00:01.00 bitrate=N/A speed=1x\r" +
	"frame=  125 fps= 25 q=-0.0 size=N/A time=00:00:05.00 bitrate=N/A speed=1x\r" +
	"[blackdetect @ 0x5602] black_start:5.0 black_end:7.5 black_duration:2.5\n" +
	"frame=  250 fps= 25 q=-0.0 size=N/A time=00:00:10.00 bitrate=N/A speed=1x\r" +
	"\n"

func TestScanStream_SingleInterval(t *testing.T) {
	intervals := scanStream(strings.NewReader(sampleStream), 10, nil)

	if len(intervals) != 1 {
		t.Fatalf("got %d intervals, want 1", len(intervals))
	}
	iv := intervals[0]
	if iv.Start != 5.0 || iv.End != 7.5 || iv.Duration != 2.5 {
		t.Errorf("interval = %+v, want {5 7.5 2.5}", iv)
	}
}

func TestScanStream_Progress(t *testing.T) {
	var got []float64
	scanStream(strings.NewReader(sampleStream), 10, func(pct float64) {
		got = append(got, pct)
	})

	want := []float64{10, 50, 100}
	if len(got) != len(want) {
		t.Fatalf("got %d progress updates (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 0.0005 {
			t.Errorf("progress[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanStream_MultipleIntervalsInOrder(t *testing.T) {
	stream := "[blackdetect @ 0x1] black_start:0 black_end:1.25 black_duration:1.25\n" +
		"[blackdetect @ 0x1] black_start:30.5 black_end:32 black_duration:1.5\n" +
		"[blackdetect @ 0x1] black_start:60 black_end:61 black_duration:1\n"

	intervals := scanStream(strings.NewReader(stream), 0, nil)
	if len(intervals) != 3 {
		t.Fatalf("got %d intervals, want 3", len(intervals))
	}
	for i := 1; i < len(intervals); i++ {
		if intervals[i].Start < intervals[i-1].Start {
			t.Errorf("intervals out of order: %+v", intervals)
		}
	}
	if intervals[1].Start != 30.5 || intervals[1].End != 32 || intervals[1].Duration != 1.5 {
		t.Errorf("intervals[1] = %+v, want {30.5 32 1.5}", intervals[1])
	}
}

func TestScanStream_NoiseOnly(t *testing.T) {
	stream := "Stream #0:0: Video: h264, yuv420p, 1920x1080\n" +
		"Press [q] to stop, [?] for help\n"

	intervals := scanStream(strings.NewReader(stream), 10, nil)
	if len(intervals) != 0 {
		t.Errorf("got %d intervals from noise, want 0", len(intervals))
	}
}

func TestScanStream_ZeroTotalNoProgress(t *testing.T) {
	called := false
	scanStream(strings.NewReader(sampleStream), 0, func(float64) { called = true })
	if called {
		t.Error("progress callback fired with zero total duration")
	}
}

// writeStub writes an executable shell script standing in for ffmpeg.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not portable to windows")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_StubBinary(t *testing.T) {
	stub := writeStub(t,
		`printf '[blackdetect @ 0x1] black_start:5.0 black_end:7.5 black_duration:2.5\n' >&2`+"\n")

	intervals, err := Run(context.Background(), Options{
		FFmpegPath:    stub,
		VideoPath:     "recording.ts",
		TotalDuration: 10,
		MinDuration:   0.5,
		PicThreshold:  0.98,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(intervals) != 1 {
		t.Fatalf("got %d intervals, want 1", len(intervals))
	}
	if intervals[0] != (Interval{Start: 5.0, End: 7.5, Duration: 2.5}) {
		t.Errorf("interval = %+v", intervals[0])
	}
}

func TestRun_ExitFailure(t *testing.T) {
	stub := writeStub(t, "exit 1\n")

	_, err := Run(context.Background(), Options{
		FFmpegPath:   stub,
		VideoPath:    "recording.ts",
		MinDuration:  0.5,
		PicThreshold: 0.98,
	})
	if err == nil {
		t.Fatal("Run() error = nil, want non-nil for failing child")
	}
}

func TestRun_InterruptDiscardsPartialResults(t *testing.T) {
	// The stub reports an interval immediately, then hangs; cancellation
	// must kill it and suppress the already-parsed interval. exec + stderr
	// redirect keeps the kill target and the pipe's write end on one pid.
	stub := writeStub(t,
		`printf '[blackdetect @ 0x1] black_start:1.0 black_end:2.0 black_duration:1.0\n' >&2`+"\n"+
			"exec sleep 30 2>/dev/null\n")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	intervals, err := Run(ctx, Options{
		FFmpegPath:   stub,
		VideoPath:    "recording.ts",
		MinDuration:  0.5,
		PicThreshold: 0.98,
	})
	if err == nil {
		t.Fatal("Run() error = nil, want context error")
	}
	if intervals != nil {
		t.Errorf("got partial intervals %+v, want nil", intervals)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("child not killed on cancel (took %v)", elapsed)
	}
}
