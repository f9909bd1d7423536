package permission

import "testing"

func TestAdminRoleHoldsEveryKey(t *testing.T) {
	table := NewTable(DefaultRoles())

	for _, key := range []string{"view:all", "edit:leads", "made:up", ""} {
		if !table.Allowed(AdminRole, key) {
			t.Fatalf("admin must hold %q", key)
		}
	}
}

func TestAllowedIsMembershipWithDefaultDeny(t *testing.T) {
	table := NewTable(DefaultRoles())

	cases := []struct {
		role    string
		key     string
		allowed bool
	}{
		{"gerente", "view:all", true},
		{"gerente", "edit:projects", true},
		{"gerente", "edit:leads", false},
		{"vendedor", "view:sales", true},
		{"vendedor", "edit:leads", true},
		{"vendedor", "view:all", false},
		{"usuario", "view:assigned", true},
		{"usuario", "view:sales", false},
		{"unknown-role", "view:all", false},
		{"", "view:all", false},
	}

	for _, tc := range cases {
		if got := table.Allowed(tc.role, tc.key); got != tc.allowed {
			t.Fatalf("Allowed(%q, %q) = %v, expected %v", tc.role, tc.key, got, tc.allowed)
		}
	}
}

func TestAllowedIsPure(t *testing.T) {
	table := NewTable(DefaultRoles())

	first := table.Allowed("vendedor", "view:sales")
	second := table.Allowed("vendedor", "view:sales")
	if first != second {
		t.Fatal("repeated lookups diverged")
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	roles := map[string][]string{"tester": {"run:tests"}}
	table := NewTable(roles)

	roles["tester"] = nil
	delete(roles, "tester")

	if !table.Allowed("tester", "run:tests") {
		t.Fatal("table must not alias caller-owned maps")
	}
}

func TestGrantsSortedAndAdminUnbounded(t *testing.T) {
	table := NewTable(DefaultRoles())

	grants := table.Grants("gerente")
	expected := []string{"edit:projects", "view:all", "view:reports"}
	if len(grants) != len(expected) {
		t.Fatalf("expected %d grants, got %d", len(expected), len(grants))
	}
	for i := range expected {
		if grants[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, grants)
		}
	}

	if table.Grants(AdminRole) != nil {
		t.Fatal("admin grants must be reported as unbounded (nil)")
	}
	if table.Grants("unknown") != nil {
		t.Fatal("unknown role must have no grants")
	}
}
