package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, zerolog.InfoLevel), "fetch")

	log.Info().Msg("hello")
	log.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"component":"fetch"`) {
		t.Errorf("Expected component field in output, got %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message should be filtered at info level, got %s", out)
	}
}
