package services

import "strings"

// Category group names used by the person analytics breakdown.
const (
	GroupEssential     = "Essential"
	GroupDiscretionary = "Discretionary"
	GroupTransport     = "Transport"
	GroupHealthcare    = "Healthcare"
	GroupEducation     = "Education"
	GroupOther         = "Other"
)

// GroupRules maps category names to spending groups. The dimension value wins
// when it names a known group; otherwise the name rules decide, and anything
// unmatched lands in Other.
type GroupRules struct {
	byName map[string]string
}

// NewGroupRules builds rules from an explicit name-to-group mapping.
func NewGroupRules(byName map[string]string) *GroupRules {
	rules := &GroupRules{byName: make(map[string]string, len(byName))}
	for name, group := range byName {
		rules.byName[strings.ToLower(name)] = group
	}
	return rules
}

// DefaultGroupRules returns the standard category classification.
func DefaultGroupRules() *GroupRules {
	return NewGroupRules(map[string]string{
		"groceries":     GroupEssential,
		"rent":          GroupEssential,
		"utilities":     GroupEssential,
		"insurance":     GroupEssential,
		"entertainment": GroupDiscretionary,
		"dining":        GroupDiscretionary,
		"restaurants":   GroupDiscretionary,
		"shopping":      GroupDiscretionary,
		"travel":        GroupDiscretionary,
		"hobbies":       GroupDiscretionary,
		"transport":     GroupTransport,
		"fuel":          GroupTransport,
		"parking":       GroupTransport,
		"healthcare":    GroupHealthcare,
		"pharmacy":      GroupHealthcare,
		"fitness":       GroupHealthcare,
		"education":     GroupEducation,
		"books":         GroupEducation,
		"courses":       GroupEducation,
	})
}

// knownGroups guards against free-text dimension values leaking into the
// group breakdown columns.
var knownGroups = map[string]bool{
	GroupEssential:     true,
	GroupDiscretionary: true,
	GroupTransport:     true,
	GroupHealthcare:    true,
	GroupEducation:     true,
	GroupOther:         true,
}

// Classify resolves the spending group for a category. dimensionGroup is the
// value carried on the category dimension, which may be empty.
func (r *GroupRules) Classify(categoryName, dimensionGroup string) string {
	if knownGroups[dimensionGroup] {
		return dimensionGroup
	}
	if group, ok := r.byName[strings.ToLower(categoryName)]; ok {
		return group
	}
	return GroupOther
}
