package cleaner

import "encoding/json"

// ReportStat is one per-pattern row of the structured report.
type ReportStat struct {
	Pattern   string `json:"pattern"`
	Count     int    `json:"count"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

// ReportSummary holds the run totals of the structured report.
type ReportSummary struct {
	TotalCount     int    `json:"total_count"`
	TotalSize      int64  `json:"total_size"`
	TotalSizeHuman string `json:"total_size_human"`
	DryRun         bool   `json:"dry_run"`
}

// Report is the machine-readable result of a run. Its shape is consumed
// verbatim by downstream tooling.
type Report struct {
	Matches  []MatchedItem `json:"matches"`
	Summary  ReportSummary `json:"summary"`
	Stats    []ReportStat  `json:"stats"`
	Failures []Failure     `json:"failures"`
}

// Report builds the structured result for the completed run.
func (j *Job) Report() *Report {
	r := &Report{
		Matches: j.Matched,
		Summary: ReportSummary{
			TotalCount:     j.Counter,
			TotalSize:      j.Size,
			TotalSizeHuman: FormatSize(j.Size),
			DryRun:         j.opts.DryRun,
		},
		Stats:    j.sortedStats(),
		Failures: j.FailedDeletions,
	}
	// Empty collections serialize as [], not null.
	if r.Matches == nil {
		r.Matches = []MatchedItem{}
	}
	if r.Failures == nil {
		r.Failures = []Failure{}
	}
	return r
}

// JSON renders the structured report.
func (j *Job) JSON() ([]byte, error) {
	return json.MarshalIndent(j.Report(), "", "  ")
}
