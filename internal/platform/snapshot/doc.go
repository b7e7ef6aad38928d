// Package snapshot is a toolkit binding over a form tree held in memory and
// persisted as YAML or JSON. It implements every capability interface of the
// platform package and behaves like a live form: pressing a component may
// open or close windows, and text changes only take effect when bracketed by
// focus-gained / focus-lost events.
//
// The binding registers itself as "snapshot"; its source is a file path.
package snapshot
