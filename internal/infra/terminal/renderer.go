// Package terminal draws schedule views on a terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"server_event_timer/internal/app"
)

const clearScreen = "\033[H\033[2J"

// Renderer writes views to out. With Live set, every render repaints the screen.
type Renderer struct {
	out     io.Writer
	live    bool
	active  *color.Color
	waiting *color.Color
	idle    *color.Color
	label   *color.Color
}

func NewRenderer(out io.Writer, live, noColor bool) *Renderer {
	r := &Renderer{
		out:     out,
		live:    live,
		active:  color.New(color.FgGreen, color.Bold),
		waiting: color.New(color.FgYellow, color.Bold),
		idle:    color.New(color.FgHiBlack),
		label:   color.New(color.FgCyan),
	}
	if noColor {
		for _, c := range []*color.Color{r.active, r.waiting, r.idle, r.label} {
			c.DisableColor()
		}
	}
	return r
}

// Render draws one view.
func (r *Renderer) Render(v *app.View) error {
	var b strings.Builder
	if r.live {
		b.WriteString(clearScreen)
	}
	r.write(&b, v)
	if r.live {
		b.WriteString("\n" + r.idle.Sprint("Type a region (e.g. EU, US) and press Enter to switch. Ctrl+C quits.") + "\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderAll draws several views separated by blank lines.
func (r *Renderer) RenderAll(views []*app.View) error {
	var b strings.Builder
	for i, v := range views {
		if i > 0 {
			b.WriteString("\n")
		}
		r.write(&b, v)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) write(b *strings.Builder, v *app.View) {
	fmt.Fprintf(b, "%s (%s)  %s\n", v.Region.DisplayName(), v.Region.ID, r.status(v))
	fmt.Fprintf(b, "  %s %s [%s]  %s %s [%s]  %s %s\n",
		r.label.Sprint("Server time:"), v.Now.Server, v.ServerOffset,
		r.label.Sprint("Local time:"), v.Now.Local, v.LocalOffset,
		r.label.Sprint("UTC:"), v.Now.UTC)

	switch v.Status {
	case app.StatusActive:
		fmt.Fprintf(b, "  %s %s\n", r.label.Sprint("Ends in:"), r.active.Sprint(v.Countdown))
		fmt.Fprintf(b, "  %s %s - %s (local %s - %s)\n", r.label.Sprint("Current:"),
			v.CurrentStart.Server, v.CurrentEnd.Server, v.CurrentStart.Local, v.CurrentEnd.Local)
	case app.StatusWaiting:
		fmt.Fprintf(b, "  %s %s\n", r.label.Sprint("Starts in:"), r.waiting.Sprint(v.Countdown))
		fmt.Fprintf(b, "  %s %s - %s (local %s - %s)\n", r.label.Sprint("Next:"),
			v.CurrentStart.Server, v.CurrentEnd.Server, v.CurrentStart.Local, v.CurrentEnd.Local)
	default:
		fmt.Fprintf(b, "  %s\n", r.idle.Sprint("No reference time is configured for this region yet."))
		return
	}

	if len(v.Upcoming) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s\n", r.label.Sprint("Upcoming:"))
	for _, o := range v.Upcoming {
		fmt.Fprintf(b, "    %s - %s (local %s)\n", o.Start.Server, o.End.Server, o.Start.Local)
	}
}

func (r *Renderer) status(v *app.View) string {
	switch v.Status {
	case app.StatusActive:
		return r.active.Sprint(v.Status)
	case app.StatusWaiting:
		return r.waiting.Sprint(v.Status)
	default:
		return r.idle.Sprint(v.Status)
	}
}
