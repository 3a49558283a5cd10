package fieldset

import "strings"

// Remove strips the given field names from every group. A grouped row
// collapses to a single-field row when one member remains; rows and groups
// left without fields are dropped. Removing an absent name is a no-op, so
// the operation is idempotent. The input is never mutated.
func Remove(sets List, names ...string) List {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		drop[trimmed] = struct{}{}
	}

	out := make(List, 0, len(sets))
	for _, set := range sets {
		rows := make([]FieldRef, 0, len(set.Options.Fields))
		for _, ref := range set.Options.Fields {
			kept := make(FieldRef, 0, len(ref))
			for _, name := range ref {
				if _, ok := drop[name]; ok {
					continue
				}
				kept = append(kept, name)
			}
			if len(kept) == 0 {
				continue
			}
			rows = append(rows, kept)
		}
		if len(rows) == 0 {
			continue
		}
		cloned := set.Clone()
		cloned.Options.Fields = rows
		out = append(out, cloned)
	}
	return out
}
