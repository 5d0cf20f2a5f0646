// Package logger provides hierarchical named loggers and the registry
// that owns them.
//
// Loggers form a tree based on dot-separated names (for example
// "vehicle1.propulsion" is a child of "vehicle1", which is a child of
// "root"). Each logger may override its severity threshold, its sink
// list, and its immediate-flush flag; anything left unset is inherited
// from the parent, so configuring "root" configures the whole tree.
//
// Records routed through a logger are built via core.Capture and
// delivered to every effective sink. Sink failures are contained and
// counted, never surfaced to the caller: logging must stay
// unconditionally non-failing from the simulation's point of view.
//
// The package-level functions (Get, Debug, Info, ...) operate on the
// process-wide default registry and its root logger, giving embedders
// a stable procedural surface that needs no setup.
package logger
