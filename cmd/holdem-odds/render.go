package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdemeval/poker"
	"github.com/lox/holdemeval/sdk/analysis"
)

type styles struct {
	header   lipgloss.Style
	hand     lipgloss.Style
	win      lipgloss.Style
	tie      lipgloss.Style
	category lipgloss.Style
	percent  lipgloss.Style
}

// newStyles builds the output styles for w. color "auto" lets termenv
// detect the terminal; "always" and "never" force a profile.
func newStyles(w io.Writer, color string) styles {
	r := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		percent:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderEquity prints win, tie and loss rates with a 95% interval.
func (a *App) renderEquity(label string, result analysis.EquityResult) error {
	s := a.Styles
	w := newTable(a.Out)

	lower, upper := result.ConfidenceInterval()
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("mode"), label)
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("win"), s.win.Render(pct(result.WinRate())))
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("tie"), s.tie.Render(pct(result.TieRate())))
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("loss"), s.percent.Render(pct(result.LossRate())))
	fmt.Fprintf(w, "%s\t%s (%s - %s)\n", s.header.Render("equity"),
		s.win.Render(pct(result.Equity())), pct(lower), pct(upper))
	fmt.Fprintf(w, "%s\t%d\n", s.header.Render("trials"), result.TotalSimulations)
	return w.Flush()
}

// renderOdds prints the two sides' shares and, if asked, the split by the
// winning hand type, strongest first.
func (a *App) renderOdds(label string, odds analysis.HandOdds, breakdown bool) error {
	s := a.Styles
	w := newTable(a.Out)

	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("mode"), label)
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("player"), s.win.Render(pct(odds.PlayerWin())))
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("opponent"), s.percent.Render(pct(odds.OpponentWin())))
	if err := w.Flush(); err != nil {
		return err
	}
	if !breakdown {
		return nil
	}

	fmt.Fprintln(a.Out)
	w = newTable(a.Out)
	fmt.Fprintf(w, "%s\t%s\t%s\n", s.category.Render("hand"), s.hand.Render("player"), s.hand.Render("opponent"))
	for t := poker.NumHandTypes - 1; t >= 0; t-- {
		p, o := odds.Player[t], odds.Opponent[t]
		if p == 0 && o == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.category.Render(poker.HandType(t).String()), cell(s, p), cell(s, o))
	}
	return w.Flush()
}

func cell(s styles, v float64) string {
	if v == 0 {
		return s.percent.Render(".")
	}
	return s.percent.Render(pct(v))
}
