package species

import (
	"fmt"
	"strings"
)

// validate checks a species list for structural problems and reports all of
// them at once.
func validate(list []Species) error {
	var errs []string

	seen := make(map[ID]bool, len(list))
	for _, s := range list {
		if s.ID <= 0 {
			errs = append(errs, fmt.Sprintf("species %q has non-positive id %d", s.Name, s.ID))
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate species id: %d", s.ID))
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Sprintf("species %d has empty name", s.ID))
		}
		if s.StarterCost < 1 || s.StarterCost > 10 {
			errs = append(errs, fmt.Sprintf("species %d starter cost %d out of range [1,10]", s.ID, s.StarterCost))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
