// Package state holds the shared filter context: the last filter set the
// controller published, fanned out to consumers such as the result list.
//
// Store is safe for concurrent use. Publish records a new Snapshot with an
// increasing Version; Snapshot reads the latest one; Subscribe hands out a
// channel per consumer. Each subscriber channel buffers a single value, so a
// slow consumer only ever sees the newest filter set and never stalls the
// controller:
//
//	ch, cancel := store.Subscribe()
//	defer cancel()
//	for snap := range ch {
//		render(snap.Filters)
//	}
package state
