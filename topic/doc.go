// Package topic translates human readable attribute topics into location
// stacks, the path representation used to address nodes of the remote
// attribute tree.
//
// A topic is a dotted string such as "heater.properties.power". The last
// segment names the attribute, the preceding segments name the chain of
// objects enclosing it, outermost first. An optional leading segment equal
// to the name of the bound tree node is dropped.
//
// A location stack stores the same walk innermost-first, with every name
// preceded (after reversal: followed) by the kind of branch it lives in:
//
//	topic:  properties.user-pwm-enable
//	stack:  [user-pwm-enable attributes properties objects]
//
// Stacks always have an even length, begin with the pair
// (attributeName, "attributes") and end with an "objects" marker.
package topic
