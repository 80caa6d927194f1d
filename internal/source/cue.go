package source

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/respwin/internal/record"
)

// parseCUE evaluates a CUE record set. Records are read through the value
// API so CUE defaults, references and arithmetic resolve before decoding.
func parseCUE(data []byte, cols Columns) (*Set, error) {
	value := cuecontext.New().CompileBytes(data)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}

	set := &Set{}
	set.Name, _ = lookupString(value, "name")
	docStart, _ := lookupString(value, "start_column")
	docEnd, _ := lookupString(value, "end_column")
	set.StartColumn, set.EndColumn = resolve(cols, docStart, docEnd)

	recordsVal := value.LookupPath(cue.ParsePath("records"))
	if !recordsVal.Exists() {
		set.Records = []record.FlowRecord[int64]{}
		return set, nil
	}
	iter, err := recordsVal.List()
	if err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}

	set.Records = []record.FlowRecord[int64]{}
	for i := 0; iter.Next(); i++ {
		row := iter.Value()
		sv := row.LookupPath(cue.MakePath(cue.Str(set.StartColumn)))
		ev := row.LookupPath(cue.MakePath(cue.Str(set.EndColumn)))
		if !sv.Exists() || !ev.Exists() {
			set.Skipped++
			continue
		}
		s, err := sv.Int64()
		if err != nil {
			return nil, fmt.Errorf("records[%d].%s: %w", i, set.StartColumn, err)
		}
		e, err := ev.Int64()
		if err != nil {
			return nil, fmt.Errorf("records[%d].%s: %w", i, set.EndColumn, err)
		}
		set.Records = append(set.Records, record.FlowRecord[int64]{Start: s, End: e})
	}
	return set, nil
}

func lookupString(v cue.Value, field string) (string, bool) {
	f := v.LookupPath(cue.ParsePath(field))
	if !f.Exists() {
		return "", false
	}
	s, err := f.String()
	if err != nil {
		return "", false
	}
	return s, true
}
