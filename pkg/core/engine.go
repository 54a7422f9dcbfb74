package core

// Engine produces and recomputes a model snapshot. The production engine
// wraps the native deformation core; StaticEngine is the in-process
// reference used by tests and the host command.
//
// Engines are single-threaded: Recompute must not run concurrently with
// snapshot reads or writes.
type Engine interface {
	// Snapshot returns the engine's snapshot. The same pointer is returned
	// for the life of the engine.
	Snapshot() *Snapshot

	// Recompute re-derives drawable state (opacities, visibility, dynamic
	// flags, deformed vertices) from the current parameter values and part
	// opacities.
	Recompute()

	// Release drops the snapshot storage. No call is valid afterwards;
	// releasing twice panics.
	Release()
}
