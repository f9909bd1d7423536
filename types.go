package gvero

import "github.com/Pantaleaogc/gvero-sdk/session"

// Identity is the authenticated user. It is defined in the session package
// and re-exported here so most applications only import gvero.
type Identity = session.Identity
