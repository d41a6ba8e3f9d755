// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("pass_id", "abc-123")
	})

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "pass_id") {
		t.Errorf("child line must carry the added field: %s", lines[0])
	}
	if strings.Contains(lines[1], "pass_id") {
		t.Errorf("parent must not inherit the child's field: %s", lines[1])
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	l.Error().Msg("must go nowhere")
}

func TestFromContext_NeverNil(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must fall back to the global logger")
	}
}
