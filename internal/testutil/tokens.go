package testutil

import (
	"testing"

	"github.com/chaisql/onecode/internal/encoding"
	"github.com/google/go-cmp/cmp"
)

// Tokens splits an encoded value into its tokens, container markers
// being tokens of their own, so that diffs point at the first
// differing token rather than at a byte offset.
// Anything that can't be tokenized is returned as a single last token.
func Tokens(s string) []string {
	var tokens []string

	c := encoding.NewCursor(s)
	for !c.Done() {
		start := c.Offset()

		var err error
		switch s[start] {
		case encoding.EndMarker:
			// EndList and EndDict only check for the marker
			err = c.EndList()
		case encoding.ListMarker:
			err = c.BeginList()
		case encoding.DictMarker:
			err = c.BeginDict()
		default:
			err = c.Skip()
		}
		if err != nil {
			return append(tokens, s[start:])
		}

		tokens = append(tokens, s[start:c.Offset()])
	}

	return tokens
}

// RequireTokens compares two encoded values token by token.
func RequireTokens(t testing.TB, want, got string) {
	t.Helper()

	if diff := cmp.Diff(Tokens(want), Tokens(got)); diff != "" {
		t.Fatalf("encoded values mismatch (-want +got):\n%s", diff)
	}
}

// RequireEqual compares two decoded values using go-cmp.
func RequireEqual(t testing.TB, want, got any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
