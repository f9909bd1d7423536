// Package notify carries transient user-facing notices out of the SDK.
//
// The session layer reacts to authorization failures with short messages
// ("session expired", "not authorized", "cannot reach the server") that a UI
// is expected to surface and then discard. [Notifier] is the sink contract;
// the SDK ships [NoOpNotifier], [ChannelNotifier], and [JSONWriterNotifier],
// and applications plug in their own toast/snackbar adapters.
//
// # What this package must NOT do
//
//   - Decide WHEN to notify (the transport and service layers do that).
//   - Block the caller: sinks must be cheap or internally buffered.
package notify
