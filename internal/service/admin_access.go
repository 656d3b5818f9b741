package service

import "strings"

// AdminAccess decides whether an opaque caller identity belongs to the
// configured set of administrators. The allowlist is fixed at construction;
// there is no ambient state and no side effects.
type AdminAccess struct {
	allowed map[string]struct{}
}

// NewAdminAccess builds the check from the parsed allowlist. Blank entries
// are ignored so a stray comma in the configuration cannot admit the
// anonymous caller.
func NewAdminAccess(ids []string) *AdminAccess {
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			continue
		}
		allowed[trimmed] = struct{}{}
	}
	return &AdminAccess{allowed: allowed}
}

// IsAdmin reports whether identity is on the allowlist. An empty identity is
// never an admin.
func (a *AdminAccess) IsAdmin(identity string) bool {
	trimmed := strings.TrimSpace(identity)
	if trimmed == "" {
		return false
	}
	_, ok := a.allowed[trimmed]
	return ok
}
