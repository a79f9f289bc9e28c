package privileges

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// Privilege holds one decoded ACL item: who granted what to whom.
//
// It's the Go face of PostgreSQL's aclitem. Role is the grantee, By the
// grantor and Privs the raw privilege letters as Postgres serializes them.
// A Privilege is a pure value, immutable once built.
type Privilege struct {
	Role  string
	By    string
	Privs string

	parsed mapset.Set[string]
}

// New builds a Privilege from raw aclitem fields.
//
// Privilege letters are decoded once here. Unknown letters are kept but
// never resolve to a label nor satisfy Can().
func New(role, by, privs string) Privilege {
	parsed := mapset.NewThreadUnsafeSet[string]()
	for _, c := range privs {
		parsed.Add(string(c))
	}
	return Privilege{
		Role:   role,
		By:     by,
		Privs:  privs,
		parsed: parsed,
	}
}

// Labels returns the privilege type names for the letters in Privs.
//
// Letters without a well-known privilege type are omitted. Order is
// unspecified.
func (p Privilege) Labels() (labels []string) {
	if p.parsed == nil {
		return
	}
	for _, code := range p.parsed.ToSlice() {
		label, ok := codeLabels[code]
		if !ok {
			continue
		}
		labels = append(labels, label)
	}
	return
}

// Can tells whether the privilege set covers all wanted privileges.
//
// Each want is either a single privilege letter or a privilege type name,
// case insensitive: Can("r"), Can("SELECT") and Can("select") are
// equivalent. A want that resolves to no known privilege never matches.
func (p Privilege) Can(wants ...string) bool {
	for _, want := range wants {
		code := want
		if len(want) > 1 {
			var ok bool
			code, ok = labelCodes[strings.ToUpper(want)]
			if !ok {
				return false
			}
		}
		if p.parsed == nil || !p.parsed.Contains(code) {
			return false
		}
	}
	return true
}

func (p Privilege) CanSelect() bool    { return p.Can("r") }
func (p Privilege) CanRead() bool      { return p.Can("r") }
func (p Privilege) CanUpdate() bool    { return p.Can("w") }
func (p Privilege) CanWrite() bool     { return p.Can("w") }
func (p Privilege) CanInsert() bool    { return p.Can("a") }
func (p Privilege) CanAppend() bool    { return p.Can("a") }
func (p Privilege) CanDelete() bool    { return p.Can("d") }
func (p Privilege) CanReference() bool { return p.Can("x") }
func (p Privilege) CanTrigger() bool   { return p.Can("t") }
func (p Privilege) CanExecute() bool   { return p.Can("X") }
func (p Privilege) CanUsage() bool     { return p.Can("U") }
func (p Privilege) CanCreate() bool    { return p.Can("C") }
func (p Privilege) CanConnect() bool   { return p.Can("c") }
func (p Privilege) CanTemporary() bool { return p.Can("T") }
func (p Privilege) CanTemp() bool      { return p.Can("T") }

func (p Privilege) String() string {
	labels := p.Labels()
	slices.Sort(labels)

	b := strings.Builder{}
	if len(labels) == 0 {
		b.WriteString("NOTHING")
	} else {
		b.WriteString(strings.Join(labels, ", "))
	}
	b.WriteString(" TO ")
	b.WriteString(p.Role)
	if p.By != "" {
		b.WriteString(" GRANTED BY ")
		b.WriteString(p.By)
	}
	return b.String()
}
