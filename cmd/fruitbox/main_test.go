package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func failingScreen() (tcell.Screen, error) {
	return nil, errors.New("no tty available")
}

func TestRunMain_TerminalFailureIsLogged(t *testing.T) {
	defer os.RemoveAll(logDir)
	defer setupLogging(false)

	var stderr bytes.Buffer
	if code := runMain([]string{"-debug"}, &stderr, failingScreen); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "no tty available") {
		t.Errorf("stderr = %q, want the terminal error", stderr.String())
	}

	// The closing error line is in the log once runMain has returned
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"exit"`) || !strings.Contains(out, "no tty available") {
		t.Errorf("log does not end with the exit error:\n%s", out)
	}
}

func TestRunMain_ConfigErrors(t *testing.T) {
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	if code := runMain([]string{"-config", missing}, &stderr, failingScreen); code != 1 {
		t.Errorf("missing config exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Failed to load config") {
		t.Errorf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	if code := runMain([]string{"-no-such-flag"}, &stderr, failingScreen); code != 2 {
		t.Errorf("unknown flag exit code = %d, want 2", code)
	}
}
