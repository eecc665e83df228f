package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfilter/internal/filters"
)

// renderMain composes header, panes and footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	var body string
	if m.width >= LayoutSplitWidth {
		leftWidth := min(FilterPaneWidth, m.width/2)
		rightWidth := m.width - leftWidth
		left := panelStyle(styles, true).
			Width(leftWidth - 2).
			Height(bodyHeight - 2).
			Render(m.renderFilters(leftWidth - 4))
		right := panelStyle(styles, false).
			Width(rightWidth - 2).
			Height(bodyHeight - 2).
			Render(m.renderSidePane(rightWidth - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		inner := max(m.width-2, 10)
		body = lipgloss.JoinVertical(lipgloss.Left,
			panelStyle(styles, true).Width(inner).Render(m.renderFilters(inner-2)),
			panelStyle(styles, false).Width(inner).Render(m.renderSidePane(inner-2)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func panelStyle(styles Styles, focused bool) lipgloss.Style {
	if focused {
		return styles.FocusedPanel
	}
	return styles.Panel
}

// renderHeader shows the sync state badge and the current location.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	state := m.controller.State().String()
	badge := styles.StatusStyle(state).Render(strings.ToUpper(state))

	var line string
	if m.editingURL {
		line = m.urlInput.View()
	} else {
		loc := m.currentURL()
		if loc == "" {
			loc = "(no location)"
		}
		line = styles.MutedText.Render(truncateMiddle(loc, max(m.width-20, 10)))
	}
	return styles.Header.Width(m.width).Render(
		styles.AccentText.Bold(true).Render("shopfilter") + "  " + badge + "  " + line,
	)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	var status string
	switch {
	case m.status == "":
	case m.statusErr:
		status = styles.DangerText.Render(m.status) + "  "
	default:
		status = styles.SuccessText.Render(m.status) + "  "
	}
	hints := "tab section · j/k move · enter select · : url · b/f back/fwd · ? help · q quit"
	if m.editingURL {
		hints = "enter go · esc cancel"
	}
	return styles.Footer.Width(m.width).Render(status + styles.FaintText.Render(hints))
}

func (m Model) renderSidePane(width int) string {
	if m.showActivity {
		return m.activity.View()
	}
	return m.renderResults(width)
}

// renderResults shows what sibling consumers see in the shared store.
func (m Model) renderResults(width int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Published filters"))
	b.WriteString("\n")

	if !m.published.HasFilters {
		b.WriteString(styles.MutedText.Render("Nothing published yet"))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Results follow the URL until a filter is changed."))
		return b.String()
	}

	f := m.published.Filters
	field := func(label, value string) {
		if value == "" {
			value = styles.FaintText.Render("any")
		}
		b.WriteString(styles.MutedText.Render(padRight(label, 10)))
		b.WriteString(truncate(value, width-10))
		b.WriteString("\n")
	}
	field("Category", f.CategoryName)
	color := f.Color
	if name := filters.ColorName(f.Color); name != "" {
		color = name + " " + f.Color
	}
	field("Color", color)
	field("Size", f.Size)
	field("Price", fmt.Sprintf("$%d – $%d", f.MinPrice, f.MaxPrice))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("v%d at %s", m.published.Version, m.published.PublishedAt.Format("15:04:05"))))
	return b.String()
}

func (m *Model) resizeActivity() {
	width := m.width - FilterPaneWidth - 4
	if m.width < LayoutSplitWidth {
		width = m.width - 4
	}
	m.activity.Width = max(width, 10)
	m.activity.Height = max(m.height-6, 3)
}

func (m *Model) setActivity(msg activityMsg) {
	styles := m.theme.Styles()
	if msg.err != nil {
		m.activity.SetContent(styles.DangerText.Render("Unable to read log: " + msg.err.Error()))
		return
	}
	lines := make([]string, 0, len(msg.entries)+1)
	lines = append(lines, styles.Text.Bold(true).Render("Session activity"))
	for _, entry := range msg.entries {
		lines = append(lines, levelStyle(styles, entry.Level).Render(entry.Text))
	}
	m.activity.SetContent(strings.Join(lines, "\n"))
	m.activity.GotoBottom()
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch level {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.Text
	}
}
