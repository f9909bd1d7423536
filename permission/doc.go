// Package permission implements the static role-to-capability table used for
// client-side authorization checks.
//
// A [Table] maps role names to sets of permission keys (e.g. "edit:projects").
// Lookups are pure and allocation-free: the table is built once and never
// mutated afterwards. The role [AdminRole] implicitly holds every key; unknown
// roles and unknown keys are denied.
//
// The table mirrors what the backend enforces. It exists so UIs can gate
// navigation and hide controls without a round-trip — it is not a security
// boundary on its own.
package permission
