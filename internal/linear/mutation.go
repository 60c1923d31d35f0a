package linear

// Input is a partial create/update payload. Only keys the caller explicitly
// set appear in the outgoing mutation variables; a key set to nil marshals
// as an explicit JSON null, which the API treats as "clear this field".
// Omitted and null are therefore distinct, matching the API's semantics.
type Input map[string]any

// Set records an explicit value for key.
func (in Input) Set(key string, value any) {
	in[key] = value
}

// Clear records an explicit null for key.
func (in Input) Clear(key string) {
	in[key] = nil
}

// SetNonEmpty records value only when it is non-empty. Used for create
// payloads where an empty optional flag means "not provided".
func (in Input) SetNonEmpty(key, value string) {
	if value != "" {
		in[key] = value
	}
}

// Empty reports whether no field was explicitly set.
func (in Input) Empty() bool {
	return len(in) == 0
}

// LabelMode controls how labels on an update merge with existing ones.
type LabelMode string

const (
	// LabelModeAdding unions the given labels with the issue's existing
	// labels.
	LabelModeAdding LabelMode = "adding"
	// LabelModeOverwriting replaces the issue's labels outright.
	LabelModeOverwriting LabelMode = "overwriting"
)

// mergeLabelIDs applies the label mode: adding unions resolved with
// existing (stable order, existing first), overwriting returns resolved.
// The result is never nil: a nil slice marshals as JSON null, which the
// API reads as "field not provided" instead of a clear.
func mergeLabelIDs(mode LabelMode, existing, resolved []string) []string {
	if mode != LabelModeAdding {
		if resolved == nil {
			return []string{}
		}
		return resolved
	}
	seen := make(map[string]bool, len(existing)+len(resolved))
	merged := make([]string, 0, len(existing)+len(resolved))
	for _, id := range existing {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}
	for _, id := range resolved {
		if !seen[id] {
			seen[id] = true
			merged = append(merged, id)
		}
	}
	return merged
}
