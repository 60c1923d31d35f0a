package linear

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// IdentifierKind classifies a user-supplied reference string.
type IdentifierKind int

const (
	// KindOpaque is the API's primary key shape: a UUID. References of
	// this kind are used as-is, no lookup needed.
	KindOpaque IdentifierKind = iota
	// KindIssueRef is a compound issue identifier like "ABC-123".
	KindIssueRef
	// KindName is anything a user would naturally type: a team key, a
	// project name, a label name, an email. Requires resolution.
	KindName
)

var issueRefPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*-[0-9]+$`)

// ClassifyIdentifier determines whether s is an opaque identifier, an issue
// identifier like "TEAM-123", or a human-readable name. Pure function.
func ClassifyIdentifier(s string) IdentifierKind {
	s = strings.TrimSpace(s)
	// uuid.Parse also accepts urn: and braced forms; the API only ever
	// hands out the canonical hyphenated shape, so require that.
	if len(s) == 36 {
		if _, err := uuid.Parse(s); err == nil {
			return KindOpaque
		}
	}
	if issueRefPattern.MatchString(s) {
		return KindIssueRef
	}
	return KindName
}

// IsOpaque reports whether s already has the API's primary key shape.
func IsOpaque(s string) bool {
	return ClassifyIdentifier(s) == KindOpaque
}
