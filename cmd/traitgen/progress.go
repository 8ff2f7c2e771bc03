package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/traitgen"
)

var (
	countStyle = lipgloss.NewStyle().Bold(true)
	hashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// progressLine redraws a single terminal line per finished edition.
type progressLine struct {
	w   io.Writer
	bar progress.Model
}

func newProgressLine(w io.Writer) *progressLine {
	return &progressLine{
		w:   w,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Update renders p. It is registered with traitgen.WithProgress.
func (l *progressLine) Update(p traitgen.Progress) {
	count := countStyle.Render(fmt.Sprintf("%d/%d", p.Current, p.Total))
	tail := hashStyle.Render(shortHash(p.DNAHash))
	if p.Err != nil {
		tail = errorStyle.Render("failed")
	}
	fmt.Fprintf(l.w, "\r%s %s %s", l.bar.ViewAs(float64(p.Percentage)/100), count, tail)
}

// Done ends the progress line.
func (l *progressLine) Done() {
	fmt.Fprintln(l.w)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
