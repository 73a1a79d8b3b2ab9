// Package mapping provides the binding declarations connecting local model
// attributes to attributes of the remote tree: schema, YAML parsing,
// validation and the value converter registry.
//
// # Schema Overview
//
//	version: "1"
//	node: heater
//	bindings:
//	  power:
//	    topic: properties.power
//	    type: Boolean
//	    constraints: [read, write]
//	  temperature:
//	    object: sensors          # legacy addressing, deprecated
//	    attribute: temperature
//	    type: Number
//	    constraints: read
//	    converter: number
//
// Every binding uses exactly one addressing style: a dotted topic, or the
// legacy object/attribute pair.
//
// # Constraints
//
//   - read: the local value is pushed to the remote attribute
//   - static: like read, for values which never change after startup
//   - write: the remote side may change the value; changes are dispatched
//     to the local model
//
// # Ordering
//
// Bindings keep their declaration order. When an inbound change matches
// several bindings the first declared one wins.
package mapping
