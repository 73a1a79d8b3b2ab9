// Package glue binds a local model to a node of a remote cloud.iO tree.
//
// A Connector holds the attribute mapping of one model and the node the
// model is bound to (its buddy). Whichever of SetMapping and SetBuddy comes
// second wires the binding:
//
//   - the location stack of every binding is computed from its topic (or its
//     legacy object/attribute pair),
//   - the connector registers itself as listener on every remote attribute
//     of a write binding and resolves the dispatch table for it,
//   - the model's OnNodeCreated hook is called, if it has one.
//
// Outbound, Push reads the values of read and static bindings from the model
// and writes those that differ from the remote value. Inbound, remote changes
// are applied to the model through the first usable entry of the binding's
// dispatch table:
//
//	OnAttributeSetFromCloud(name string, attr tree.Attribute)  generic hook
//	On<Name>SetFromCloud(value)                                specific hook
//	<Name>(value)                                              direct method
//	Set<Name>(value)                                           setter
//	<Name>                                                     exported field
//
// <Name> is the binding name turned into an exported Go identifier, so the
// binding "user-pwm-enable" dispatches to SetUserPwmEnable.
//
// A Connector is not safe for concurrent setup. Push must be serialized by the
// caller; dispatch may run on the transport's goroutine.
package glue
