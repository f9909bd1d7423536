// Package nav decides whether a navigation attempt may proceed and carries
// forced redirects out of the SDK.
//
// [Guard] runs before a protected route (and before each of its children) is
// entered: unauthenticated users are sent to the login route with the
// requested path preserved as a return parameter, invalid sessions are sent
// to login without one, and authenticated users lacking a route's declared
// permission are sent to the access-denied route. Only when every check
// passes is the navigation allowed.
//
// The guard is framework-agnostic: it is a predicate plus a [Navigator], not
// a router hook. Whatever drives the UI calls [Guard.Check] before its state
// transition and short-circuits on denial.
package nav
