package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Entry is one session log line with the level pulled out of slog's text
// format ("time=... level=INFO msg=...").
type Entry struct {
	Level string
	Text  string
}

// Read returns at most maxLines entries from the end of the log at path. A
// missing file yields no entries.
func Read(path string, maxLines int) ([]Entry, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	start := 0
	if count == maxLines {
		start = idx
	}
	entries := make([]Entry, count)
	for i := 0; i < count; i++ {
		line := ring[(start+i)%maxLines]
		entries[i] = Entry{Level: levelOf(line), Text: line}
	}
	return entries, nil
}

func levelOf(line string) string {
	for _, field := range strings.Fields(line) {
		if level, ok := strings.CutPrefix(field, "level="); ok {
			return level
		}
	}
	return ""
}
