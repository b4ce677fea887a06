// Package extension models the extensions of a web app: named, typed units
// that can be located at one or more paths and overridden by a later layer.
//
// Values are immutable. Overriding never mutates either operand; it returns
// an Overridden composite that remembers both the base and the applied
// override, so the original definition stays reachable through Base.
package extension
