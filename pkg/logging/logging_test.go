package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestAppendFatalWritesOneLinePerError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "racinggame.log")

	if err := AppendFatal(path, errors.New("graphics device lost\nstack line")); err != nil {
		t.Fatalf("AppendFatal() error: %v", err)
	}
	if err := AppendFatal(path, errors.New("second failure")); err != nil {
		t.Fatalf("AppendFatal() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("line is not JSON: %q", scanner.Text())
		}
		lines = append(lines, entry)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "fatal" {
		t.Errorf("level = %v, want fatal", lines[0]["level"])
	}
	if got := lines[0]["error"]; got != "graphics device lost\nstack line" {
		t.Errorf("error = %q, want the full description", got)
	}
	if _, ok := lines[1]["time"]; !ok {
		t.Error("entries must carry a timestamp")
	}
}

func TestSetupWritesToConsole(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Str("screen", "logo").Msg("pushed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug messages should be filtered without debug")
	}
	if !strings.Contains(out, "pushed") || !strings.Contains(out, "logo") {
		t.Errorf("unexpected console output %q", out)
	}
}
