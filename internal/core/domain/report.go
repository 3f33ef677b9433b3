package domain

import "strings"

// ReportDivider separates the title and the fields of a report block.
const ReportDivider = "-----------------------------------"

// reportBuilder assembles a fixed-format report block:
// title, divider, one line per field, divider.
type reportBuilder struct {
	sb strings.Builder
}

func newReport(title string) *reportBuilder {
	r := &reportBuilder{}
	r.sb.WriteString(title)
	r.sb.WriteString("\n")
	r.sb.WriteString(ReportDivider)
	r.sb.WriteString("\n")
	return r
}

func (r *reportBuilder) line(s string) {
	r.sb.WriteString(s)
	r.sb.WriteString("\n")
}

// param writes the parameter's report line, skipping absent parameters.
func (r *reportBuilder) param(p *Parameter) {
	if p == nil {
		return
	}
	r.line(p.Report())
}

// finish writes the closing divider and returns the block.
func (r *reportBuilder) finish() string {
	r.sb.WriteString(ReportDivider)
	r.sb.WriteString("\n")
	return r.sb.String()
}
