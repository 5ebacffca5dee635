package tui

import (
	"fmt"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	"github.com/vdobler/brush"
	"github.com/vdobler/brush/link"
	"github.com/vdobler/brush/view"
)

var (
	borderColor = styles.AdaptiveColor{Light: "#555", Dark: "#555"}
	statusColor = styles.AdaptiveColor{Light: "1", Dark: "9"}
	paneStyle   = styles.NewStyle().
			BorderStyle(styles.NormalBorder()).
			BorderForeground(borderColor)
	statusStyle = styles.NewStyle().Foreground(statusColor)
)

// Model is the bubbletea model of a brushing session. The scatter pane sits
// top left, the histogram pane top right and the profile pane below both.
type Model struct {
	surface *brush.Surface

	scatter *Scatter
	hist    *Histogram
	profile *Profile

	help help.Model
	keys keyMap

	width, height int
	sel           link.Selection
	series, bin   link.Index // keyboard cursors
}

// NewModel returns a model showing s. The panes of the model become the
// click targets of s. Colors are faded into a dark or a light background.
func NewModel(s *brush.Surface, dark bool) (*Model, error) {
	lo, hi := s.Histogram().Domain()
	cmap, err := view.Colormap(s.Options().Colormap, lo, hi)
	if err != nil {
		return nil, err
	}
	values := s.Values()
	m := &Model{
		surface: s,
		scatter: NewScatter(s.Series(), values, s.SeriesOpacity(), cmap, dark),
		hist:    NewHistogram(s.Histogram(), s.BinOpacity(), cmap, dark),
		profile: NewProfile(s.Series(), s.SeriesOpacity(), dark),
		help:    help.New(),
		keys:    keys,
		series:  link.None,
		bin:     link.None,
	}
	s.Bind(m.scatter, m.hist)
	m.resize(80, 24)
	return m, nil
}

// Selection returns the outcome of the last selecting input.
func (m *Model) Selection() link.Selection { return m.sel }

// resize lays out the panes for a w x h terminal. Each pane has a one cell
// border; status and help take the last two rows.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	available := max(h-2, 6)
	top := max(available*2/3, 3)
	left := w / 2
	m.scatter.SetBounds(1, 1, left-2, top-2)
	m.hist.SetBounds(left+1, 1, w-left-2, top-2)
	m.profile.Resize(w-2, max(available-top-2, 1))
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		m.click(pointerEvent(msg))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Reset):
			m.sel = m.surface.Reset()
		case key.Matches(msg, m.keys.NextSeries):
			m.series = step(m.series, 1, len(m.surface.Series()))
			m.sel = m.surface.SelectSeries(m.series)
		case key.Matches(msg, m.keys.PrevSeries):
			m.series = step(m.series, -1, len(m.surface.Series()))
			m.sel = m.surface.SelectSeries(m.series)
		case key.Matches(msg, m.keys.NextBin):
			m.bin = step(m.bin, 1, m.surface.Histogram().Len())
			m.sel = m.surface.SelectBin(m.bin)
		case key.Matches(msg, m.keys.PrevBin):
			m.bin = step(m.bin, -1, m.surface.Histogram().Len())
			m.sel = m.surface.SelectBin(m.bin)
		}
	}
	return m, nil
}

// click routes ev to the pane under the pointer. Events outside both panes
// are dropped.
func (m *Model) click(ev link.PointerEvent) {
	var (
		sel link.Selection
		ok  bool
	)
	switch {
	case m.scatter.Region().Contains(ev.X, ev.Y):
		sel, ok = m.surface.ClickScatter(ev)
	case m.hist.Region().Contains(ev.X, ev.Y):
		sel, ok = m.surface.ClickHistogram(ev)
	}
	if !ok {
		return
	}
	m.sel = sel
	switch sel.Kind {
	case link.SeriesSelected:
		m.series, m.bin = sel.Series[0], sel.Bin
	case link.BinSelected:
		m.bin = sel.Bin
	}
}

// step moves cursor i by d through n elements, wrapping around. From None
// it starts at the first or last element.
func step(i link.Index, d, n int) link.Index {
	if n == 0 {
		return link.None
	}
	if i == link.None {
		if d > 0 {
			return 0
		}
		return link.Index(n - 1)
	}
	return link.Index(((int(i)+d)%n + n) % n)
}

func pointerEvent(msg tea.MouseMsg) link.PointerEvent {
	ev := link.PointerEvent{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = link.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = link.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = link.ButtonRight
	case tea.MouseButtonWheelUp:
		ev.Button = link.ButtonWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = link.ButtonWheelDown
	default:
		ev.Button = link.ButtonNone
	}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = link.Press
	case tea.MouseActionRelease:
		ev.Action = link.Release
	default:
		ev.Action = link.Motion
	}
	return ev
}

// status describes the current selection.
func (m *Model) status() string {
	h := m.surface.Histogram()
	switch m.sel.Kind {
	case link.SeriesSelected:
		i := m.sel.Series[0]
		bin := "outside all bins"
		if m.sel.Bin != link.None {
			bin = "bin " + m.sel.Bin.String() + " " + h.Bin(m.sel.Bin).String()
		}
		return fmt.Sprintf("series %s  value %.4g  %s", i, m.surface.Values()[i], bin)
	case link.BinSelected:
		values := m.surface.Values()
		members := make([]float64, len(m.sel.Series))
		for k, i := range m.sel.Series {
			members[k] = values[i]
		}
		text := fmt.Sprintf("bin %s %s  %d series", m.sel.Bin, h.Bin(m.sel.Bin), len(members))
		if len(members) > 0 {
			text += fmt.Sprintf("  mean %.4g", stats.Mean(members))
		}
		return text
	}
	return fmt.Sprintf("%d series  %d bins  %d values outside", len(m.surface.Series()), h.Len(), h.Outside())
}

// View implements tea.Model.
func (m *Model) View() string {
	top := styles.JoinHorizontal(styles.Top,
		paneStyle.Render(m.scatter.View()),
		paneStyle.Render(m.hist.View()),
	)
	profile := paneStyle.Render(m.profile.View())
	lines := []string{top, profile, statusStyle.Render(m.status()), m.help.View(m.keys)}
	return strings.TrimRight(styles.JoinVertical(styles.Left, lines...), "\n")
}

type keyMap struct {
	NextSeries key.Binding
	PrevSeries key.Binding
	NextBin    key.Binding
	PrevBin    key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Reset, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Reset, k.Help},
		{k.NextSeries, k.PrevSeries, k.NextBin, k.PrevBin},
	}
}

var keys = keyMap{
	NextSeries: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next series"),
	),
	PrevSeries: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "previous series"),
	),
	NextBin: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next bin"),
	),
	PrevBin: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous bin"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r", "esc"),
		key.WithHelp("r/esc", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
