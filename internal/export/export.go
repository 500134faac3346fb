// Package export renders records and aggregate tables as CSV or JSON
// text. All functions are pure: they never touch the file system, and
// persistence is the caller's job.
package export

import (
	"encoding/json"
	"strings"

	"github.com/wavtools/wavmeta/internal/aggregate"
	"github.com/wavtools/wavmeta/internal/metadata"
)

// lineBreak terminates rendered lines. Kept local to the exporters;
// nothing else in the system needs a shared notion of one.
const lineBreak = "\n"

// jsonIndent is the fixed indentation of all JSON documents.
const jsonIndent = "    "

// RecordCSV renders a single record's fields as name,value lines, one
// per selected field, each line terminated, in catalog order.
//
// Values are written verbatim: embedded commas are not quoted or
// escaped, matching the aggregate CSV's documented limitation.
func RecordCSV(fm *metadata.FieldMap) string {
	var sb strings.Builder
	for _, f := range fm.Fields() {
		v, _ := fm.Value(f)
		sb.WriteString(f.DisplayName())
		sb.WriteString(",")
		sb.WriteString(metadata.FormatValue(v))
		sb.WriteString(lineBreak)
	}
	return sb.String()
}

// RecordJSON renders a single record's fields as a JSON object with
// lexicographically sorted keys and four-space indentation.
func RecordJSON(fm *metadata.FieldMap) (string, error) {
	b, err := json.MarshalIndent(fm.DisplayMap(), "", jsonIndent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// TableCSV renders a flat table: the header row, then one data row per
// file, cells comma-joined and rows newline-separated. There is no
// trailing newline and no quoting/escaping of embedded commas.
func TableCSV(t aggregate.Table) string {
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, strings.Join(t.Header, ","))
	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, lineBreak)
}

// AggregateJSON renders the whole aggregate as a nested JSON object:
// filename → field display name → value, both key levels sorted
// lexicographically, four-space indentation.
func AggregateJSON(a *aggregate.Aggregator) (string, error) {
	nested := make(map[string]map[string]any, a.Len())
	for _, name := range a.Names() {
		fm, _ := a.Fields(name)
		nested[name] = fm.DisplayMap()
	}
	b, err := json.MarshalIndent(nested, "", jsonIndent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
