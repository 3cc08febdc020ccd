package library

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/database"
)

// assignment is one SET clause of an update.
type assignment struct {
	col   column
	value any
}

// Patch is a validated partial update of an entry's mutable fields.
type Patch struct {
	assignments []assignment
}

// Len returns the number of fields the patch sets.
func (p Patch) Len() int { return len(p.assignments) }

// ParsePatch validates a field-name to value mapping against the allow-list
// of mutable attributes. Unknown or immutable names are rejected; when a
// field is supplied under more than one spelling the preferred spelling
// wins.
func ParsePatch(fields map[string]json.RawMessage) (Patch, error) {
	if len(fields) == 0 {
		return Patch{}, &ValidationError{Message: "No updates provided"}
	}

	seen := make(map[Field]bool)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var unknown []string
	for _, name := range names {
		spec, ok := fieldsByName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		seen[spec.field] = true
	}
	if len(unknown) > 0 {
		return Patch{}, &ValidationError{
			Field:   strings.Join(unknown, ", "),
			Message: "not an updatable field",
		}
	}

	var p Patch
	scratch := &Entry{}
	for i := range fieldSpecs {
		spec := &fieldSpecs[i]
		if !seen[spec.field] {
			continue
		}
		raw, _ := spec.pick(fields)
		if err := spec.decode(scratch, raw); err != nil {
			return Patch{}, err
		}
		p.assignments = append(p.assignments, assignment{col: spec.column, value: spec.bind(scratch)})
	}
	return p, nil
}

// render produces an UPDATE scoped to owner and id that stamps updated_at
// and returns the updated row.
func (p Patch) render(d database.Dialect, owner, id string, now time.Time) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(p.assignments)+3)

	args = append(args, now)
	b.WriteString("UPDATE entries SET ")
	b.WriteString(string(colUpdatedAt))
	b.WriteString(" = ")
	b.WriteString(d.Placeholder(len(args)))

	for _, a := range p.assignments {
		args = append(args, a.value)
		b.WriteString(", ")
		b.WriteString(string(a.col))
		b.WriteString(" = ")
		b.WriteString(d.Placeholder(len(args)))
	}

	args = append(args, id)
	b.WriteString(" WHERE ")
	b.WriteString(string(colID))
	b.WriteString(" = ")
	b.WriteString(d.Placeholder(len(args)))

	args = append(args, owner)
	b.WriteString(" AND ")
	b.WriteString(string(colOwner))
	b.WriteString(" = ")
	b.WriteString(d.Placeholder(len(args)))

	b.WriteString(" RETURNING ")
	b.WriteString(selectColumns)

	return b.String(), args
}
