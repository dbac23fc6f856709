package permission

import (
	"fmt"

	"jannivaran/internal/shared/logger"
)

// InitDefaultPolicies seeds the role policies for the three portal roles.
// AddPolicy is idempotent in casbin, so running this on every startup is safe.
func InitDefaultPolicies(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - full access
		{"admin", "complaint", "create"},
		{"admin", "complaint", "read"},
		{"admin", "complaint", "update"},
		{"admin", "complaint", "delete"},
		{"admin", "complaint", "assign"},
		{"admin", "complaint", "intervene"},
		{"admin", "escalation", "create"},
		{"admin", "escalation", "read"},
		{"admin", "escalation", "resolve"},
		{"admin", "audit", "read"},
		{"admin", "dashboard", "read"},
		{"admin", "user", "create"},
		{"admin", "user", "read"},
		{"admin", "sweep", "run"},

		// Official permissions - work complaints in their department
		{"official", "complaint", "read"},
		{"official", "complaint", "update"},
		{"official", "complaint", "assign"},
		{"official", "escalation", "create"},
		{"official", "escalation", "read"},
		{"official", "escalation", "resolve"},
		{"official", "audit", "read"},
		{"official", "dashboard", "read"},

		// Citizen permissions - file and follow their own complaints
		{"citizen", "complaint", "create"},
		{"citizen", "complaint", "read"},
		{"citizen", "complaint", "delete"},
		{"citizen", "complaint", "intervene"},
		{"citizen", "escalation", "read"},
		{"citizen", "audit", "read"},
	}

	for _, policy := range policies {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("role policies initialized successfully")
	return nil
}
