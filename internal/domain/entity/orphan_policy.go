package entity

import "estate/internal/errors"

// OrphanPolicy decides what happens to favorites whose property is deleted.
type OrphanPolicy string

const (
	// OrphanPolicyCascade deletes the favorites together with the property.
	OrphanPolicyCascade OrphanPolicy = "cascade"
	// OrphanPolicyRetain keeps the favorite rows; listings skip them at read time.
	// The favorites.property_id foreign key must be absent for deletes to succeed.
	OrphanPolicyRetain OrphanPolicy = "retain"

	// DefaultOrphanPolicy applies when no policy is configured.
	DefaultOrphanPolicy = OrphanPolicyCascade
)

// String returns the string representation of the OrphanPolicy.
func (p OrphanPolicy) String() string {
	return string(p)
}

// IsValid checks if the OrphanPolicy is a valid value.
func (p OrphanPolicy) IsValid() bool {
	switch p {
	case OrphanPolicyCascade, OrphanPolicyRetain:
		return true
	default:
		return false
	}
}

// ParseOrphanPolicy converts a configuration value into an OrphanPolicy.
// An empty value selects DefaultOrphanPolicy; anything else must match a
// known policy exactly.
func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	if s == "" {
		return DefaultOrphanPolicy, nil
	}

	policy := OrphanPolicy(s)
	if !policy.IsValid() {
		return "", errors.Errorf("unknown orphan policy %q, expected %q or %q", s, OrphanPolicyCascade, OrphanPolicyRetain)
	}

	return policy, nil
}
