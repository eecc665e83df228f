package ui

import (
	"fmt"
	"strings"

	"github.com/five82/shopfilter/internal/catalog"
	"github.com/five82/shopfilter/internal/filters"
)

// renderFilters renders the four filter sections stacked.
func (m Model) renderFilters(width int) string {
	var b strings.Builder
	for s := Section(0); s < sectionCount; s++ {
		if s > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderSectionTitle(s))
		b.WriteString("\n")
		if m.collapsed[s] {
			continue
		}
		var rows []string
		switch s {
		case SectionCategories:
			rows = m.categoryRows(width)
		case SectionPrice:
			rows = m.priceRows()
		case SectionColor:
			rows = m.colorRows()
		case SectionSize:
			rows = m.sizeRows()
		}
		for _, row := range rows {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderSectionTitle(s Section) string {
	styles := m.theme.Styles()
	arrow := "▾"
	if m.collapsed[s] {
		arrow = "▸"
	}
	title := arrow + " " + s.Title()
	if s == m.focus {
		return styles.AccentText.Bold(true).Render(title)
	}
	return styles.Text.Bold(true).Render(title)
}

// row renders one selectable line, highlighting the cursor in the focused
// section.
func (m Model) row(s Section, idx int, text string) string {
	styles := m.theme.Styles()
	if s == m.focus && m.cursor[s] == idx {
		return styles.Selected.Render("› " + text)
	}
	return styles.Text.Render("  " + text)
}

func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}

func (m Model) categoryRows(width int) []string {
	styles := m.theme.Styles()
	switch m.categories.Status {
	case catalog.StatusLoading:
		rows := make([]string, 0, placeholderRows)
		bar := strings.Repeat("░", clamp(width-6, 4, 24))
		for i := 0; i < placeholderRows; i++ {
			rows = append(rows, "  "+m.spinner.View()+" "+styles.FaintText.Render(bar))
		}
		return rows
	case catalog.StatusFailed:
		if len(m.categories.Items) == 0 {
			return []string{styles.MutedText.Render("  No categories available")}
		}
	}

	selected := m.controller.Criteria().Category
	visible := m.categories.Visible(m.showAll)
	rows := make([]string, 0, len(visible)+1)
	for i, option := range visible {
		name := truncate(option.Name, width-8)
		rows = append(rows, m.row(SectionCategories, i, radio(option.Name == selected)+" "+name))
	}
	if m.categories.HasMore() {
		label := ternary(m.showAll, "See less", "See more")
		rows = append(rows, m.row(SectionCategories, len(visible), styles.AccentText.Render(label)))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.MutedText.Render("  No categories available"))
	}
	return rows
}

func (m Model) priceRows() []string {
	styles := m.theme.Styles()
	c := m.controller.Criteria()
	line := fmt.Sprintf("$%d – $%d", m.draftMin, m.draftMax)
	rows := []string{m.row(SectionPrice, 0, line)}
	if m.draftMin != c.PriceMin || m.draftMax != c.PriceMax {
		rows = append(rows, styles.WarningText.Render("  (uncommitted, enter to apply)"))
	}
	rows = append(rows, "  "+priceTrack(m.draftMin, m.draftMax, 24))
	return rows
}

// priceTrack draws the two thumbs on a fixed-width track.
func priceTrack(lo, hi, width int) string {
	span := PriceCeiling - PriceFloor
	pos := func(v int) int {
		v = clamp(v, PriceFloor, PriceCeiling)
		return (v - PriceFloor) * (width - 1) / span
	}
	a, z := pos(lo), pos(hi)
	track := []rune(strings.Repeat("─", width))
	for i := a; i <= z; i++ {
		track[i] = '━'
	}
	track[a] = '●'
	track[z] = '●'
	return string(track)
}

func (m Model) colorRows() []string {
	selected := m.controller.Criteria().Color
	rows := make([]string, 0, len(filters.Colors))
	for i, color := range filters.Colors {
		rows = append(rows, m.row(SectionColor, i, radio(color.Code == selected)+" "+color.Name))
	}
	return rows
}

func (m Model) sizeRows() []string {
	selected := m.controller.Criteria().Size
	rows := make([]string, 0, len(filters.Sizes))
	for i, size := range filters.Sizes {
		rows = append(rows, m.row(SectionSize, i, radio(size == selected)+" "+string(size)))
	}
	return rows
}
