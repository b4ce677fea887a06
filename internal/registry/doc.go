// Package registry loads app layers from disk and folds them into a single
// view of the app's extensions. Layer 0 is the base app; every later layer
// overrides extensions of the stack below it that share a name and type,
// and adds the ones that are new. It also locates files across the ordered
// paths of a resolved extension.
package registry
