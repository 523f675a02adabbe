package authz

import "fmt"

// RoleSeed is one built-in role definition.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds returns the role matrix seeded on startup. Owners manage
// everything under their business; staff handle the order desk.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "owner",
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
		{
			Role: "staff",
			Policies: []Policy{
				{Object: "/admin/orders", Action: "GET"},
				{Object: "/admin/orders/:id", Action: "GET"},
				{Object: "/admin/orders/:id/status", Action: "PUT"},
				{Object: "/admin/tables", Action: "GET"},
				{Object: "/admin/categories", Action: "GET"},
				{Object: "/admin/products", Action: "GET"},
				{Object: "/admin/profile", Action: "GET"},
				{Object: "/admin/password", Action: "PUT"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the built-in roles and their policies.
// Re-running it is safe; existing rules are left alone.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := s.EnsureRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
