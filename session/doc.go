// Package session owns the client's authenticated session: the current
// identity, the raw bearer credential, and their durable representation.
//
// # Contract
//
// Identity and credential are written and cleared together — at no point may
// durable storage hold one without the other. [Store.Set] writes the
// credential before the identity so an interruption mid-write never produces
// an identity without a credential; [Store.Open] treats any half-written pair
// found at startup as corruption and scrubs it silently.
//
// Session state is observable: [Store.Observe] yields the value at
// subscription time first, then every subsequent Set/Clear in exact
// invocation order, with no coalescing. Late subscribers always see the most
// recent value immediately.
//
// # Architecture boundaries
//
// The store is the only component that touches durable storage. Everything
// else holds a reference to the store, never a private copy of the
// credential or identity.
package session
