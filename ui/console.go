package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"crate/model"

	"github.com/charmbracelet/lipgloss"
)

const bannerWidth = 50

type styles struct {
	banner  lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	dim     lipgloss.Style
}

// Console is the line-based terminal: prompts on one line, answers
// terminated by Enter. Colors are dropped when out is not a terminal.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		styles: styles{
			banner:  r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			title:   r.NewStyle().Foreground(lipgloss.Color("11")),
			success: r.NewStyle().Foreground(lipgloss.Color("10")),
			failure: r.NewStyle().Foreground(lipgloss.Color("9")),
			dim:     r.NewStyle().Faint(true),
		},
	}
}

// Prompt prints label and returns the trimmed answer. It returns io.EOF
// only when the input is exhausted before any character was read.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		fmt.Fprintln(c.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm accepts "y" or "yes" in any case. Everything else, including a
// blank line or end of input, is a decline.
func (c *Console) Confirm(label string) bool {
	answer, err := c.Prompt(c.styles.title.Render(label))
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// Pause waits for Enter.
func (c *Console) Pause() {
	_, _ = c.Prompt(c.styles.dim.Render("Press Enter to return to menu..."))
}

func (c *Console) Banner() {
	rule := strings.Repeat("=", bannerWidth)
	title := lipgloss.PlaceHorizontal(bannerWidth, lipgloss.Center, "MUSIC LIBRARY MANAGER")
	fmt.Fprintln(c.out, c.styles.banner.Render(rule))
	fmt.Fprintln(c.out, c.styles.banner.Render(title))
	fmt.Fprintln(c.out, c.styles.banner.Render(rule))
}

func (c *Console) Title(msg string) {
	fmt.Fprintln(c.out, c.styles.title.Render(msg))
}

func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Dim(msg string) {
	fmt.Fprintln(c.out, c.styles.dim.Render(msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.styles.success.Render(msg))
}

// Warn and Error are both red; a warning does not abort anything.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.styles.failure.Render(msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.styles.failure.Render(msg))
}

// Tracks renders a table, or the no-records notice.
func (c *Console) Tracks(tracks []*model.Track) {
	if len(tracks) == 0 {
		c.Dim(NoRecords)
		return
	}
	RenderTracks(c.out, tracks)
}
