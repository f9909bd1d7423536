// Package jwt inspects bearer tokens issued by the gvero backend without
// verifying their signature.
//
// The SDK treats the credential as opaque: only the server decides whether a
// token is valid. Inspection exists for two narrow purposes — skipping a
// doomed verification round-trip when the token is visibly expired, and
// surfacing claim data (expiry, subject) to UIs. Nothing here must ever be
// used to grant access.
package jwt
