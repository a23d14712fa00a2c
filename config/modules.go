package config

// roleModules maps a role to the dashboard modules it can open.
// Initialized at package load and read-only afterwards, so concurrent
// lookups need no locking.
var roleModules = map[string][]string{
	"Principal":   {"analytics", "approvals", "alerts"},
	"Coordinator": {"requests", "approvals", "stock"},
	"Storekeeper": {"stock", "issue", "transformation"},
	"Teacher":     {"issue", "bulk", "accept"},
}

// ModulesForRole returns the module list for a role. Unknown roles get the
// Teacher modules, the lowest-privilege set.
func ModulesForRole(role string) []string {
	if modules, ok := roleModules[role]; ok {
		return modules
	}
	return roleModules["Teacher"]
}
