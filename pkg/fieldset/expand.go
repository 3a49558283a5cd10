package fieldset

// Expand replaces the placeholder row with every name from available that
// is not already specified in sets and not filtered by the exclude or
// readonly options. Remaining fields keep the order of available. The input
// is never mutated.
//
// Only the first placeholder occurrence is honored; later occurrences are
// dropped so no sentinel survives expansion. When sets holds no placeholder
// the structure is returned unchanged (as a clone). A name that is both
// explicit and excluded stays: exclusion only filters the remaining pool.
func Expand(available []string, sets List, options ...Option) List {
	cfg := newConfig(options...)

	specified := make(map[string]struct{})
	honoredGroup, honoredRow := -1, -1
	for gi, set := range sets {
		for ri, ref := range set.Options.Fields {
			if ref.isPlaceholder(cfg.placeholder) {
				if honoredGroup < 0 {
					honoredGroup, honoredRow = gi, ri
				}
				continue
			}
			for _, name := range ref {
				specified[name] = struct{}{}
			}
		}
	}

	if honoredGroup < 0 {
		return sets.Clone()
	}

	remaining := make([]FieldRef, 0, len(available))
	for _, name := range available {
		if _, ok := specified[name]; ok {
			continue
		}
		if _, ok := cfg.exclude[name]; ok {
			continue
		}
		if _, ok := cfg.readonly[name]; ok {
			continue
		}
		remaining = append(remaining, Ref(name))
	}

	out := make(List, 0, len(sets))
	for gi, set := range sets {
		rows := make([]FieldRef, 0, len(set.Options.Fields)+len(remaining))
		for ri, ref := range set.Options.Fields {
			if ref.isPlaceholder(cfg.placeholder) {
				if gi == honoredGroup && ri == honoredRow {
					rows = append(rows, cloneRows(remaining)...)
				}
				continue
			}
			rows = append(rows, ref.Clone())
		}
		// A group that held nothing but unhonored duplicate placeholders
		// would otherwise survive empty.
		if len(rows) == 0 && len(set.Options.Fields) > 0 && gi != honoredGroup {
			continue
		}
		cloned := set.Clone()
		cloned.Options.Fields = rows
		out = append(out, cloned)
	}
	return out
}

func cloneRows(rows []FieldRef) []FieldRef {
	out := make([]FieldRef, len(rows))
	for i, ref := range rows {
		out[i] = ref.Clone()
	}
	return out
}
