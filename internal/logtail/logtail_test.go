package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")

	var content strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&content, "time=2026-10-17T10:00:0%d level=INFO msg=\"line %d\"\n", i%10, i)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name      string
		maxLines  int
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{"zero", 0, 0, "", ""},
		{"last three", 3, 3, `msg="line 8"`, `msg="line 10"`},
		{"exactly all", 10, 10, `msg="line 1"`, `msg="line 10"`},
		{"more than available", 50, 10, `msg="line 1"`, `msg="line 10"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("Read returned %d entries, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if !strings.HasSuffix(got[0].Text, tt.wantFirst) {
				t.Fatalf("first entry = %q, want suffix %q", got[0].Text, tt.wantFirst)
			}
			if !strings.HasSuffix(got[len(got)-1].Text, tt.wantLast) {
				t.Fatalf("last entry = %q, want suffix %q", got[len(got)-1].Text, tt.wantLast)
			}
			if got[0].Level != "INFO" {
				t.Fatalf("Level = %q, want INFO", got[0].Level)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 5)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %#v, want nil", got)
	}
}

func TestLevelOf(t *testing.T) {
	if got := levelOf(`time=x level=ERROR msg="fetch categories failed"`); got != "ERROR" {
		t.Fatalf("levelOf = %q, want ERROR", got)
	}
	if got := levelOf("plain text line"); got != "" {
		t.Fatalf("levelOf = %q, want empty", got)
	}
}
