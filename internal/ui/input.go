package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shopfilter/internal/filters"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows the next key
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.editingURL {
		return m.handleURLKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = !m.showActivity
		if m.showActivity {
			return m, readActivityCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.EditURL):
		m.editingURL = true
		m.urlInput.SetValue(m.currentURL())
		m.urlInput.CursorEnd()
		return m, m.urlInput.Focus()

	case key.Matches(msg, m.keys.Back):
		if m.history == nil || !m.history.Back() {
			m.setStatus("No earlier page", false)
			return m, nil
		}
		m.afterNavigation()
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if m.history == nil || !m.history.Forward() {
			m.setStatus("No later page", false)
			return m, nil
		}
		m.afterNavigation()
		return m, nil

	case key.Matches(msg, m.keys.NextSection):
		m.focus = (m.focus + 1) % sectionCount
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.focus = (m.focus + sectionCount - 1) % sectionCount
		return m, nil

	case key.Matches(msg, m.keys.Collapse):
		m.collapsed[m.focus] = !m.collapsed[m.focus]
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.selectCurrent()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.clearCurrent()
		return m, nil
	}

	if m.focus == SectionPrice && !m.collapsed[SectionPrice] {
		m.handlePriceKey(msg)
	}
	return m, nil
}

// handleURLKey routes input to the URL bar while it is open.
func (m Model) handleURLKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.editingURL = false
		m.urlInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.editingURL = false
		m.urlInput.Blur()
		raw := m.urlInput.Value()
		if m.history == nil {
			m.setStatus("Location is read-only", true)
			return m, nil
		}
		if err := m.history.Navigate(raw); err != nil {
			m.logger.Warn("navigate failed", "url", raw, "error", err)
			m.setStatus("Invalid URL: "+err.Error(), true)
			return m, nil
		}
		m.afterNavigation()
		return m, nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePriceKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.MinDown):
		m.adjustPrice(-PriceStep, 0)
	case key.Matches(msg, m.keys.MinUp):
		m.adjustPrice(PriceStep, 0)
	case key.Matches(msg, m.keys.MaxDown):
		m.adjustPrice(0, -PriceStep)
	case key.Matches(msg, m.keys.MaxUp):
		m.adjustPrice(0, PriceStep)
	case key.Matches(msg, m.keys.MinDownBig):
		m.adjustPrice(-PriceStepBig, 0)
	case key.Matches(msg, m.keys.MinUpBig):
		m.adjustPrice(PriceStepBig, 0)
	case key.Matches(msg, m.keys.MaxDownBig):
		m.adjustPrice(0, -PriceStepBig)
	case key.Matches(msg, m.keys.MaxUpBig):
		m.adjustPrice(0, PriceStepBig)
	}
}

// adjustPrice moves the draft thumbs, keeping them inside the control bounds
// and ordered.
func (m *Model) adjustPrice(minDelta, maxDelta int) {
	if minDelta != 0 {
		m.draftMin = clamp(m.draftMin+minDelta, PriceFloor, min(m.draftMax, PriceCeiling))
	}
	if maxDelta != 0 {
		m.draftMax = clamp(m.draftMax+maxDelta, max(m.draftMin, PriceFloor), PriceCeiling)
	}
}

func (m *Model) moveCursor(delta int) {
	if m.collapsed[m.focus] {
		return
	}
	n := m.itemCount(m.focus)
	if n == 0 {
		return
	}
	m.cursor[m.focus] = clamp(m.cursor[m.focus]+delta, 0, n-1)
}

// selectCurrent applies the row under the cursor in the focused section.
func (m *Model) selectCurrent() {
	if m.collapsed[m.focus] {
		m.collapsed[m.focus] = false
		m.savePrefs()
		return
	}
	idx := m.cursor[m.focus]

	switch m.focus {
	case SectionCategories:
		visible := m.categories.Visible(m.showAll)
		if idx < len(visible) {
			m.report(m.controller.SetCategory(visible[idx].Name), "Category "+visible[idx].Name)
			return
		}
		if m.categories.HasMore() {
			m.showAll = !m.showAll
			m.clampCursor(SectionCategories)
		}

	case SectionPrice:
		m.report(m.controller.SetPriceRange(m.draftMin, m.draftMax), "Price range applied")
		c := m.controller.Criteria()
		m.draftMin, m.draftMax = c.PriceMin, c.PriceMax

	case SectionColor:
		if idx < len(filters.Colors) {
			color := filters.Colors[idx]
			m.report(m.controller.SetColor(color.Code), "Color "+color.Name)
		}

	case SectionSize:
		if idx < len(filters.Sizes) {
			size := filters.Sizes[idx]
			m.report(m.controller.SetSize(size), "Size "+string(size))
		}
	}
}

// clearCurrent resets the focused section's value.
func (m *Model) clearCurrent() {
	switch m.focus {
	case SectionCategories:
		m.report(m.controller.SetCategory(""), "Category cleared")
	case SectionColor:
		m.report(m.controller.SetColor(""), "Color cleared")
	case SectionPrice:
		m.draftMin, m.draftMax = filters.DefaultPriceMin, filters.DefaultPriceMax
		m.report(m.controller.SetPriceRange(m.draftMin, m.draftMax), "Price range reset")
	case SectionSize:
		m.cursor[SectionSize] = 0
		m.report(m.controller.SetSize(filters.DefaultSize), "Size reset")
	}
}

// afterNavigation re-imports when the location changed under us.
func (m *Model) afterNavigation() {
	if m.controller.Observe() {
		m.syncFromCriteria()
		m.setStatus("Filters loaded from URL", false)
		return
	}
	m.setStatus("URL unchanged", false)
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.logger.Error("apply filter failed", "error", err)
		m.setStatus(err.Error(), true)
		return
	}
	if !m.controller.Imported() {
		m.setStatus(ok+" (waiting for URL import)", false)
		return
	}
	m.setStatus(ok, false)
}

func (m Model) currentURL() string {
	if m.history == nil {
		return ""
	}
	return m.history.URL()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
