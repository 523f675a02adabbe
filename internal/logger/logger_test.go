package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathFallsBackToWorkdir(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	path, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolveLogFilePath error: %v", err)
	}
	if filepath.Base(path) != defaultLogFilename {
		t.Fatalf("filename want %s got %s", defaultLogFilename, filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != defaultLogDirName {
		t.Fatalf("log dir want %s got %s", defaultLogDirName, filepath.Base(filepath.Dir(path)))
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("log dir should exist after resolve: %v", err)
	}
}

func TestReleaseModeWritesJSONToFile(t *testing.T) {
	tmp := t.TempDir()
	log := New("release", Options{Dir: tmp, Filename: "api.log"})

	log.Sugar().Infow("order_created", "order_no", "TP20260829000000111111")
	_ = log.Sync()

	raw, err := os.ReadFile(filepath.Join(tmp, "api.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	line := string(raw)
	if !strings.Contains(line, `"message":"order_created"`) {
		t.Fatalf("expected JSON message field, got %s", line)
	}
	if !strings.Contains(line, "TP20260829000000111111") {
		t.Fatalf("expected structured field in output, got %s", line)
	}
}

func TestDebugModeStaysOnStdout(t *testing.T) {
	tmp := t.TempDir()
	log := New("debug", Options{Dir: tmp, Filename: "debug.log"})

	log.Sugar().Debugw("checkout_rate_limited", "ip", "1.2.3.4")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmp, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not open a log file")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	cases := []struct {
		name     string
		value    int
		fallback int
		want     int
	}{
		{name: "positive kept", value: 14, fallback: 7, want: 14},
		{name: "zero replaced", value: 0, fallback: 7, want: 7},
		{name: "negative replaced", value: -3, fallback: 7, want: 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePositiveInt(tc.value, tc.fallback); got != tc.want {
				t.Fatalf("want %d got %d", tc.want, got)
			}
		})
	}
}
