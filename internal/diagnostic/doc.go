// Package diagnostic collects errors and warnings about binding
// declarations, each tagged with the binding it concerns and an optional fix
// hint.
//
// Findings are accumulated rather than returned one at a time so that a
// mapping file with several broken bindings is reported in a single pass.
package diagnostic
