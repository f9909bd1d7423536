package permission

import "sort"

// AdminRole is granted every permission key unconditionally.
const AdminRole = "admin"

// Table is an immutable role → permission-key-set mapping.
type Table struct {
	grants map[string]map[string]struct{}
}

// NewTable builds a table from role names to permission key lists. The input
// is copied; later mutation of the argument does not affect the table.
func NewTable(roles map[string][]string) *Table {
	grants := make(map[string]map[string]struct{}, len(roles))
	for role, keys := range roles {
		set := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			set[key] = struct{}{}
		}
		grants[role] = set
	}
	return &Table{grants: grants}
}

// Allowed reports whether the role holds the permission key. [AdminRole]
// always does; unknown roles and unknown keys never do.
func (t *Table) Allowed(role, key string) bool {
	if role == AdminRole {
		return true
	}
	set, ok := t.grants[role]
	if !ok {
		return false
	}
	_, ok = set[key]
	return ok
}

// Roles returns the registered role names in sorted order. AdminRole is
// implicit and only listed when explicitly registered.
func (t *Table) Roles() []string {
	roles := make([]string, 0, len(t.grants))
	for role := range t.grants {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Grants returns the permission keys held by the role, sorted. For AdminRole
// it returns nil: the grant set is unbounded.
func (t *Table) Grants(role string) []string {
	if role == AdminRole {
		return nil
	}
	set, ok := t.grants[role]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DefaultRoles is the gvero application's built-in role table.
func DefaultRoles() map[string][]string {
	return map[string][]string{
		"gerente":  {"view:all", "edit:projects", "view:reports"},
		"vendedor": {"view:sales", "edit:leads"},
		"usuario":  {"view:assigned"},
	}
}
