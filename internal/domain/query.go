package domain

// QueryResult is the classified outcome of one external command invocation.
// OK is true only when the process launched, exited with status zero, and its
// stdout decoded as UTF-8. Text holds stdout with all whitespace removed; the
// queries issued here return short tokens (branch names, hashes, context
// names), so compaction is safe.
type QueryResult struct {
	Text string
	OK   bool
}

// Value reduces the result to an optional string. A failed query or one whose
// output is empty after stripping both count as absent. Probes that only care
// about the exit status or raw emptiness read OK and Text directly instead.
func (q QueryResult) Value() (string, bool) {
	if !q.OK || q.Text == "" {
		return "", false
	}
	return q.Text, true
}
