// Package ui provides the terminal filter panel for shopfilter.
//
// The UI is a Bubble Tea program. The Model holds four foldable sections
// (categories, price, color, size), a URL bar over the in-memory history, a
// result pane fed by the shared filter store, and an activity pane that tails
// the session log.
//
// # Event Flow
//
//  1. Init starts the category fetch and waits on the store subscription
//  2. Key presses move the cursor or call controller mutators
//  3. The controller rewrites the URL and publishes to the store
//  4. The published snapshot arrives as a message and refreshes the result pane
//  5. URL edits and back/forward call Controller.Observe, which re-imports
//
// # Key Bindings
//
//   - tab/shift+tab: Next/previous section
//   - j/k: Move within a section
//   - enter/space: Select row, toggle "See more", commit price draft
//   - h/l, H/L, {/}, [/]: Adjust price min/max
//   - x: Clear the section's value
//   - c: Fold section
//   - ":": Edit URL; b/f: Back/forward
//   - a: Session activity; T: Cycle theme; ?: Help; q: Quit
package ui
