package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutSplitWidth is the minimum width for filters and results side by side.
	LayoutSplitWidth = 80

	// FilterPaneWidth is the filter column width in split mode.
	FilterPaneWidth = 44
)

// Price control limits. The controller itself accepts any integers.
const (
	PriceFloor   = 20
	PriceCeiling = 10000
	PriceStep    = 10
	PriceStepBig = 100
)

const (
	// ActivityLines is how much of the session log the activity pane keeps.
	ActivityLines = 200

	// placeholderRows is the number of skeleton rows shown while categories load.
	placeholderRows = 10
)
