// Package logtail reads the tail of shopfilter's session log so the UI can
// show recent import, export and category-fetch activity without leaving the
// terminal. Lines are expected in log/slog's text format; the level field is
// extracted for coloring.
package logtail
