package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/docck/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	skipped = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	skipStyle     = lipgloss.NewStyle().Foreground(skipped)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	projectStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats an aggregate report for terminal output. Projects are
// listed in processing order, each with its findings.
func RenderReport(report *domain.AggregateReport) string {
	var b strings.Builder

	// ── Header ──
	errs, warns := report.Totals()
	title := headerStyle.Render("docck")
	subtitle := dimStyle.Render("Documentation Check")
	var verdict string
	if report.HasErrors() {
		verdict = failStyle.Bold(true).Render("FAILED")
	} else {
		verdict = passStyle.Bold(true).Render("PASSED")
	}
	counts := dimStyle.Render(fmt.Sprintf("%s checked  %s  %s",
		domain.Plural(len(report.Projects), "project"),
		domain.Plural(errs, "error"),
		domain.Plural(warns, "warning")))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "\n" + counts))
	b.WriteString("\n\n")

	// ── Projects ──
	for _, p := range report.Projects {
		renderProject(&b, p)
	}

	if len(report.Skipped) > 0 {
		b.WriteString("  " + separatorLine + "\n\n")
		for _, name := range report.Skipped {
			fmt.Fprintf(&b, "  %s %s %s\n", skipStyle.Render("○"), skipStyle.Render(name),
				skipStyle.Render("skipped (unsupported packaging)"))
		}
	}

	b.WriteString("\n")
	if !report.HasErrors() {
		b.WriteString("  " + passStyle.Render("No documentation errors were found.") + "\n\n")
	}
	return b.String()
}

func renderProject(b *strings.Builder, p domain.ProjectReport) {
	var icon string
	switch {
	case p.Errors > 0:
		icon = failStyle.Render("●")
	case p.Warnings > 0:
		icon = warnTagStyle.Render("●")
	default:
		icon = passStyle.Render("●")
	}

	fmt.Fprintf(b, "  %s %s  ", icon, projectStyle.Render(p.Project))
	if p.Errors > 0 {
		b.WriteString(errorTagStyle.Render(domain.Plural(p.Errors, "error")) + "  ")
	}
	if p.Warnings > 0 {
		b.WriteString(warnTagStyle.Render(domain.Plural(p.Warnings, "warning")))
	}
	if len(p.Findings) == 0 {
		b.WriteString(passStyle.Render("complete"))
	}
	b.WriteString("\n")

	for _, f := range p.Findings {
		renderFinding(b, f)
	}
	b.WriteString("\n")
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	lines := strings.Split(f.Message, "\n")
	fmt.Fprintf(b, "    %s %s\n", severityTag(f.Severity), dimStyle.Render(lines[0]))
	for _, l := range lines[1:] {
		fmt.Fprintf(b, "          %s\n", faintStyle.Render(l))
	}
}

func severityTag(severity domain.Severity) string {
	if severity == domain.SeverityError {
		return errorTagStyle.Render("error")
	}
	return warnTagStyle.Render("warn ")
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		status := passStyle.Render("pass")
		if !e.Passed {
			status = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			status,
			errorTagStyle.Render(domain.Plural(e.Errors, "error")),
			warnTagStyle.Render(domain.Plural(e.Warnings, "warning")),
		)

		if i > 0 {
			diff := e.Errors - entries[i-1].Errors
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
