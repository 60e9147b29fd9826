// Package tui renders audit reports for the terminal.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
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

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	naStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563"))
	criticalStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	highStyle     = lipgloss.NewStyle().Foreground(warning).Bold(true)
	mediumStyle   = lipgloss.NewStyle().Foreground(info)
	lowStyle      = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders the full audit report: score box, per-section roll-up
// and the priority fix queue, in evaluation order.
func RenderReport(result *domain.AuditResult) string {
	var b strings.Builder

	// ── Header ──
	grade := result.Grade()
	title := headerStyle.Render("pagelint")
	subtitle := dimStyle.Render(result.URL)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100", result.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Sections ──
	for _, family := range checks.Registry() {
		section, ok := result.Sections[family.SectionID]
		if !ok {
			continue
		}
		renderSection(&b, section)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Priority fixes ──
	if len(result.Fixes) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Priority fixes"))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d open", len(result.Fixes))))
		b.WriteString("\n\n")
		for _, fix := range result.Fixes {
			renderFix(&b, fix)
		}
	} else {
		b.WriteString("  " + passStyle.Render("Nothing to fix.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf(
		"%d checks: %d passed, %d failed, %d partial, %d not applicable",
		result.TotalChecks, result.Passed, result.Failed, result.Partial, result.NotApplicable)))
	b.WriteString("\n")
	return b.String()
}

func renderSection(b *strings.Builder, section domain.SectionResult) {
	counts := fmt.Sprintf("%d/%d", section.Passed, section.Total-countNA(section))
	var color lipgloss.Style
	switch {
	case section.Failed == 0:
		color = passStyle
	case section.Passed == 0:
		color = failStyle
	default:
		color = warnStyle
	}
	fmt.Fprintf(b, "  %s %s\n", sectionStyle.Render(padRight(section.Label, 28)), color.Render(counts))
	ids := make([]string, 0, len(section.Items))
	for id := range section.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		renderItem(b, section.Items[id])
	}
}

func countNA(section domain.SectionResult) int {
	na := 0
	for _, item := range section.Items {
		if item.Status == domain.StatusNotApplicable {
			na++
		}
	}
	return na
}

func renderItem(b *strings.Builder, item domain.ItemResult) {
	var icon string
	switch item.Status {
	case domain.StatusDone:
		icon = passStyle.Render("●")
	case domain.StatusPartial:
		icon = warnStyle.Render("●")
	case domain.StatusNotApplicable:
		icon = naStyle.Render("○")
	default:
		icon = failStyle.Render("●")
	}
	if item.Detail != "" {
		fmt.Fprintf(b, "    %s %s  %s\n", icon, padRight(item.Label, 34), faintStyle.Render(item.Detail))
	} else {
		fmt.Fprintf(b, "    %s %s\n", icon, item.Label)
	}
}

func renderFix(b *strings.Builder, fix domain.PriorityFix) {
	fmt.Fprintf(b, "    %s %s\n", priorityTag(fix.Priority), titleStyle.Render(fix.Label))
	if fix.Hint != "" {
		fmt.Fprintf(b, "             %s\n", dimStyle.Render(fix.Hint))
	}
}

func priorityTag(priority string) string {
	switch priority {
	case domain.PriorityCritical:
		return criticalStyle.Render("critical")
	case domain.PriorityHigh:
		return highStyle.Render("high    ")
	case domain.PriorityMedium:
		return mediumStyle.Render("medium  ")
	default:
		return lowStyle.Render("low     ")
	}
}

// RenderHistory renders past audit entries for one URL.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history.") + "\n"
	}
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Audit history") + "\n\n")
	for _, e := range entries {
		grade := domain.GradeFor(e.Score)
		scoreStyled := lipgloss.NewStyle().Foreground(gradeColor(grade)).Render(fmt.Sprintf("%3d %s", e.Score, grade))
		fmt.Fprintf(&b, "    %s  %s  %s\n",
			dimStyle.Render(e.AuditedAt.Format("2006-01-02 15:04")),
			scoreStyled,
			faintStyle.Render(fmt.Sprintf("%d passed / %d checks", e.Passed, e.TotalChecks)))
	}
	return b.String()
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return danger
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
