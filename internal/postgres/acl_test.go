package postgres_test

import (
	"testing"

	r "github.com/stretchr/testify/require"

	"github.com/theory/pg-priv/internal/postgres"
)

func TestSplitACL(t *testing.T) {
	items := postgres.SplitACL(`{alice=arwdxt/bob,=r/bob}`)
	r.Equal(t, []string{"alice=arwdxt/bob", "=r/bob"}, items)
}

func TestSplitACLBare(t *testing.T) {
	// Braces are optional.
	items := postgres.SplitACL(`alice=r/bob`)
	r.Equal(t, []string{"alice=r/bob"}, items)
}

func TestSplitACLQuoted(t *testing.T) {
	items := postgres.SplitACL(`{"my role=U/bob",alice=r/bob}`)
	r.Equal(t, []string{"my role=U/bob", "alice=r/bob"}, items)
}

func TestSplitACLQuotedComma(t *testing.T) {
	items := postgres.SplitACL(`{"we,ird=r/bob",=r/bob}`)
	r.Equal(t, []string{"we,ird=r/bob", "=r/bob"}, items)
}

func TestSplitACLEscapes(t *testing.T) {
	items := postgres.SplitACL(`{"he said \"hi\"=r/bob"}`)
	r.Equal(t, []string{`he said "hi"=r/bob`}, items)
}

func TestSplitACLEmpty(t *testing.T) {
	r.Empty(t, postgres.SplitACL(""))
	r.Empty(t, postgres.SplitACL("{}"))
	r.Empty(t, postgres.SplitACL("  {}  "))
}

func TestScopes(t *testing.T) {
	r.Equal(t, []string{"database", "schema", "table"}, postgres.Scopes())
}
