package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IdentifierKind
	}{
		{
			name:  "canonical UUID",
			input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			want:  KindOpaque,
		},
		{
			name:  "uppercase UUID",
			input: "6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
			want:  KindOpaque,
		},
		{
			name:  "UUID with surrounding whitespace",
			input: "  6ba7b810-9dad-11d1-80b4-00c04fd430c8  ",
			want:  KindOpaque,
		},
		{
			name:  "braced UUID is not canonical",
			input: "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
			want:  KindName,
		},
		{
			name:  "hex without hyphens is not canonical",
			input: "6ba7b8109dad11d180b400c04fd430c8",
			want:  KindName,
		},
		{
			name:  "issue identifier",
			input: "ABC-123",
			want:  KindIssueRef,
		},
		{
			name:  "lowercase issue identifier",
			input: "eng-7",
			want:  KindIssueRef,
		},
		{
			name:  "alphanumeric team key",
			input: "T2-99",
			want:  KindIssueRef,
		},
		{
			name:  "trailing letters break the issue shape",
			input: "ABC-123x",
			want:  KindName,
		},
		{
			name:  "leading digit breaks the issue shape",
			input: "1BC-123",
			want:  KindName,
		},
		{
			name:  "team key",
			input: "ENG",
			want:  KindName,
		},
		{
			name:  "project name with spaces",
			input: "Mobile app",
			want:  KindName,
		},
		{
			name:  "email",
			input: "sam@example.com",
			want:  KindName,
		},
		{
			name:  "empty string",
			input: "",
			want:  KindName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIdentifier(tt.input))
		})
	}
}

func TestIsOpaque(t *testing.T) {
	assert.True(t, IsOpaque("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, IsOpaque("ABC-123"))
	assert.False(t, IsOpaque("Roadmap"))
}
