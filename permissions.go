package gvero

// HasPermission reports whether the current identity holds the permission
// key. Pure and synchronous: false with no session, true unconditionally for
// the admin role, otherwise membership in the static role table with unknown
// roles and keys denied.
func (c *Client) HasPermission(key string) bool {
	identity := c.store.Current()
	if identity == nil {
		return false
	}
	return c.table.Allowed(identity.Role, key)
}
