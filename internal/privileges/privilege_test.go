package privileges_test

import (
	"testing"

	r "github.com/stretchr/testify/require"

	"github.com/theory/pg-priv/internal/privileges"
)

func TestCanCodes(t *testing.T) {
	p := privileges.New("alice", "bob", "rw")

	r.True(t, p.Can("r"))
	r.True(t, p.Can("w"))
	r.False(t, p.Can("a"))
	r.False(t, p.Can("x"))
}

func TestCanLabels(t *testing.T) {
	p := privileges.New("alice", "bob", "rwT")

	r.True(t, p.Can("SELECT"))
	r.True(t, p.Can("select"))
	r.True(t, p.Can("Update"))
	r.True(t, p.Can("TEMPORARY"))
	r.True(t, p.Can("TEMP"))
	r.False(t, p.Can("DELETE"))
	r.False(t, p.Can("NOSUCHPRIV"))
}

func TestCanAnd(t *testing.T) {
	p := privileges.New("alice", "bob", "rw")

	r.True(t, p.Can("r", "w"))
	r.True(t, p.Can("select", "update"))
	r.False(t, p.Can("r", "x"))
	r.False(t, p.Can("r", "NOSUCHPRIV"))
}

func TestCanEmpty(t *testing.T) {
	p := privileges.New("alice", "bob", "")

	r.False(t, p.Can("r"))
	r.False(t, p.Can("SELECT"))
}

func TestCanZeroValue(t *testing.T) {
	var p privileges.Privilege

	r.False(t, p.Can("r"))
}

func TestCanDuplicateCodes(t *testing.T) {
	p := privileges.New("alice", "bob", "rrr")

	r.True(t, p.Can("r"))
	r.Equal(t, []string{"SELECT"}, p.Labels())
}

func TestCanCodeLabelAgreement(t *testing.T) {
	pairs := map[string]string{
		"r": "SELECT", "w": "UPDATE", "a": "INSERT", "d": "DELETE",
		"D": "TRUNCATE", "x": "REFERENCE", "t": "TRIGGER", "X": "EXECUTE",
		"U": "USAGE", "C": "CREATE", "c": "CONNECT", "T": "TEMPORARY",
	}
	granted := privileges.New("alice", "bob", "arwdDxtXUCcT")
	denied := privileges.New("alice", "bob", "")
	for code, label := range pairs {
		r.Equal(t, granted.Can(code), granted.Can(label), code)
		r.Equal(t, denied.Can(code), denied.Can(label), code)
		r.True(t, granted.Can(code), code)
	}
}

func TestLabels(t *testing.T) {
	p := privileges.New("alice", "bob", "arwdxt")

	r.ElementsMatch(t,
		[]string{"INSERT", "SELECT", "UPDATE", "DELETE", "REFERENCE", "TRIGGER"},
		p.Labels())
}

func TestLabelsUnknownCode(t *testing.T) {
	p := privileges.New("alice", "bob", "r?")

	r.Equal(t, []string{"SELECT"}, p.Labels())
	r.True(t, p.Can("?"))
	r.False(t, p.Can("??"))
}

func TestNamedPredicates(t *testing.T) {
	p := privileges.New("alice", "bob", "arwdDxtXUCcT")

	r.True(t, p.CanSelect())
	r.True(t, p.CanRead())
	r.True(t, p.CanUpdate())
	r.True(t, p.CanWrite())
	r.True(t, p.CanInsert())
	r.True(t, p.CanAppend())
	r.True(t, p.CanDelete())
	r.True(t, p.CanReference())
	r.True(t, p.CanTrigger())
	r.True(t, p.CanExecute())
	r.True(t, p.CanUsage())
	r.True(t, p.CanCreate())
	r.True(t, p.CanConnect())
	r.True(t, p.CanTemporary())
	r.True(t, p.CanTemp())

	none := privileges.New("alice", "bob", "")
	r.False(t, none.CanSelect())
	r.False(t, none.CanExecute())
	r.False(t, none.CanTemp())
}

func TestString(t *testing.T) {
	p := privileges.New("alice", "bob", "rw")
	r.Equal(t, "SELECT, UPDATE TO alice GRANTED BY bob", p.String())

	p = privileges.New("public", "bob", "")
	r.Equal(t, "NOTHING TO public GRANTED BY bob", p.String())
}
