package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shopfilter/internal/catalog"
	"github.com/five82/shopfilter/internal/logtail"
	"github.com/five82/shopfilter/internal/state"
)

type categoriesMsg catalog.List

type publishedMsg state.Snapshot

type subscriptionClosedMsg struct{}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

// loadCategoriesCmd runs the one-shot category fetch.
func loadCategoriesCmd(ctx context.Context, loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return categoriesMsg(catalog.List{Status: catalog.StatusFailed})
		}
		return categoriesMsg(loader.Load(ctx))
	}
}

// waitForPublishCmd blocks until the store publishes or the subscription is
// cancelled.
func waitForPublishCmd(updates <-chan state.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return publishedMsg(snap)
	}
}

func readActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Read(path, ActivityLines)
		return activityMsg{entries: entries, err: err}
	}
}
