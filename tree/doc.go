// Package tree declares the contracts of a remote cloud.iO attribute tree.
//
// A Node is registered at an Endpoint and holds Objects; Objects hold nested
// Objects and Attributes. Locations inside the tree are given as location
// stacks: alternating names and branch kinds ("objects" or "attributes"),
// innermost first, as produced by the topic translator.
//
//	heater.properties.power  ->  [power attributes properties objects]
//
// The glue package only relies on these interfaces; tree/runtime provides
// an in-memory implementation.
package tree
