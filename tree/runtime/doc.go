// Package runtime is an in-memory implementation of the tree contracts.
//
// It is used by Connector.CreateNode when no other factory is configured,
// by the command line tool and by tests. Values are normalized to the
// declared attribute type. Local writes go through SetValue and are handed
// to the endpoint's publish hook; remote writes go through SetValueFromCloud
// and are delivered to the attribute's listeners.
package runtime
