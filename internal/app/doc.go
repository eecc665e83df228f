// Package app is the composition root for shopfilter.
//
// Setup loads the TOML config, opens the session log (slog text handler) and
// wires the catalog client, the in-memory location history, the shared store,
// the metrics registry and the filter controller. The controller imports the
// start URL before the UI appears, so the first frame already reflects it.
// Run hands the wired graph to the Bubble Tea UI and blocks until exit.
//
// When a metrics address is configured, StartMetricsServer exposes /metrics
// in the background and shuts down with the context.
package app
