package main

import (
	"fmt"
	"io"
	"strings"

	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/filter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89")).Width(7).Align(lipgloss.Right)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A9B1D6")).Width(12)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565F89"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E"))
)

func renderListing(w io.Writer, page *domain.ListingPage, entries []domain.EntrySummary) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Catalog (%d total)", page.TotalCount)))

	for _, e := range entries {
		id := "?"
		if n, ok := filter.ExtractID(e.DetailRef); ok {
			id = fmt.Sprintf("#%d", n)
		}
		fmt.Fprintf(w, "%s  %s\n", idStyle.Render(id), e.Name)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no matching entries"))
	}

	var nav []string
	if page.HasPrevious() {
		nav = append(nav, "previous: "+page.PreviousPageRef)
	}
	if page.HasNext() {
		nav = append(nav, "next: "+page.NextPageRef)
	}
	if len(nav) > 0 {
		fmt.Fprintln(w, mutedStyle.Render(strings.Join(nav, "\n")))
	}
}

func renderDetail(w io.Writer, detail *domain.EntryDetail) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("#%d %s", detail.ID, detail.Name)))

	row := func(label, value string) {
		fmt.Fprintf(w, "%s%s\n", labelStyle.Render(label), value)
	}
	// Height is in decimetres and weight in hectograms.
	row("Height", fmt.Sprintf("%.1f m", float64(detail.Height)/10))
	row("Weight", fmt.Sprintf("%.1f kg", float64(detail.Weight)/10))
	row("Types", strings.Join(detail.Categories, ", "))
	if detail.ThumbnailRef != "" {
		row("Sprite", detail.ThumbnailRef)
	}
}

func renderError(w io.Writer, message string) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+message))
}
