package viz

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/paramosc/internal/figure"
)

// Viewer pages through a fixed set of figures until the user closes it.
type Viewer struct {
	figs   []figure.Figure
	header string
	theme  Theme
	idx    int

	// maxCols, maxRows are the configured canvas size; cols, rows what fits
	maxCols, maxRows int
	cols, rows       int
	width, height    int

	cache    map[cacheKey]string
	quitting bool
}

type cacheKey struct {
	fig, cols, rows int
	theme           string
}

func NewViewer(figs []figure.Figure, header string, th Theme, cols, rows int) Viewer {
	return Viewer{
		figs:    figs,
		header:  header,
		theme:   th,
		maxCols: cols,
		maxRows: rows,
		cols:    cols,
		rows:    rows,
		cache:   make(map[cacheKey]string),
	}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			v.quitting = true
			return v, tea.Quit
		case "tab", "right", "l", "n":
			v.idx = (v.idx + 1) % max(1, len(v.figs))
		case "shift+tab", "left", "h", "p":
			v.idx = (v.idx - 1 + len(v.figs)) % max(1, len(v.figs))
		case "t":
			v.theme = nextTheme(v.theme)
		default:
			var n int
			if _, err := fmt.Sscanf(msg.String(), "%d", &n); err == nil && n >= 1 && n <= len(v.figs) {
				v.idx = n - 1
			}
		}
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.fit()
	}
	return v, nil
}

// fit sizes the canvas to the window, never beyond the configured size.
func (v *Viewer) fit() {
	panels := 1
	for _, f := range v.figs {
		panels = max(panels, len(f.Panels))
	}
	// gutter + frame per panel, two spaces between panels
	avail := (v.width-2*(panels-1))/panels - gutter - 2
	v.cols = v.maxCols
	if avail >= 8 {
		v.cols = min(v.maxCols, avail)
	}
	// title, figure title, ticks, labels, frame, header and help
	availRows := v.height - 10 - strings.Count(v.header, "\n")
	v.rows = v.maxRows
	if availRows >= 4 {
		v.rows = min(v.maxRows, availRows)
	}
}

func (v Viewer) View() string {
	if v.quitting {
		return ""
	}
	if len(v.figs) == 0 {
		return v.theme.muted().Render("nothing to show · q quit") + "\n"
	}

	key := cacheKey{fig: v.idx, cols: v.cols, rows: v.rows, theme: v.theme.Name}
	body, ok := v.cache[key]
	if !ok {
		body = RenderFigure(v.figs[v.idx], v.cols, v.rows, v.theme)
		v.cache[key] = body
	}

	help := v.theme.muted().Render(fmt.Sprintf("figure %d/%d · tab next · shift+tab prev · t theme · q close", v.idx+1, len(v.figs)))
	parts := []string{}
	if v.header != "" {
		parts = append(parts, v.header, "")
	}
	parts = append(parts, body, "", help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func nextTheme(cur Theme) Theme {
	for i, t := range Themes {
		if t.Name == cur.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// RunViewer blocks until the viewer is closed.
func RunViewer(v Viewer, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(v, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	_, err := p.Run()
	return err
}

// Static writes every figure once, for terminals without a TTY program.
func Static(w io.Writer, figs []figure.Figure, th Theme, cols, rows int) error {
	for i, f := range figs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, RenderFigure(f, cols, rows, th)); err != nil {
			return err
		}
	}
	return nil
}
