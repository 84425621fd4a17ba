package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/footbagworks/panelcut/pkg/pipeline"
	"github.com/footbagworks/panelcut/pkg/settings"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuneField is one adjustable control. adjust moves the value one step in
// direction dir (+1 or -1); toggles ignore dir.
type tuneField struct {
	label  string
	value  func(s settings.Snapshot) string
	adjust func(s *settings.Snapshot, dir float64)
}

func num(format string, get func(s settings.Snapshot) float64) func(settings.Snapshot) string {
	return func(s settings.Snapshot) string { return fmt.Sprintf(format, get(s)) }
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

var tuneFields = []tuneField{
	{"shape", func(s settings.Snapshot) string {
		if s.Shape == settings.StarSides {
			return "star"
		}
		return fmt.Sprintf("%d sides", s.Shape)
	}, func(s *settings.Snapshot, d float64) { s.Shape += int(d) }},
	{"side", num("%.0fmm", func(s settings.Snapshot) float64 { return s.Side }),
		func(s *settings.Snapshot, d float64) { s.Side += d }},
	{"seam", num("%.1fmm", func(s settings.Snapshot) float64 { return s.Seam }),
		func(s *settings.Snapshot, d float64) { s.Seam += 0.5 * d }},
	{"stitches", func(s settings.Snapshot) string { return fmt.Sprint(s.Stitches) },
		func(s *settings.Snapshot, d float64) { s.Stitches += int(d) }},
	{"curved", func(s settings.Snapshot) string { return onOff(s.Curved) },
		func(s *settings.Snapshot, _ float64) { s.Curved = !s.Curved }},
	{"curve factor", num("%.2f", func(s settings.Snapshot) float64 { return s.CurveFactor }),
		func(s *settings.Snapshot, d float64) { s.CurveFactor += 0.05 * d; s.CurveRadius = 0 }},
	{"corner margin", num("%.1fmm", func(s settings.Snapshot) float64 { return s.CornerMargin }),
		func(s *settings.Snapshot, d float64) { s.CornerMargin = max(0, s.CornerMargin+0.5*d) }},
	{"hole spacing", num("%.2fmm", func(s settings.Snapshot) float64 { return s.HoleSpacing }),
		func(s *settings.Snapshot, d float64) { s.HoleSpacing += 0.25 * d }},
	{"corner stitch", func(s settings.Snapshot) string { return onOff(s.CornerStitch.Enabled) },
		func(s *settings.Snapshot, _ float64) { s.CornerStitch.Enabled = !s.CornerStitch.Enabled }},
	{"corner distance", num("%.1fmm", func(s settings.Snapshot) float64 { return s.CornerStitch.Distance }),
		func(s *settings.Snapshot, d float64) { s.CornerStitch.Distance += 0.5 * d }},
	{"hex type", func(s settings.Snapshot) string { return s.Hex.Type },
		func(s *settings.Snapshot, _ float64) {
			if s.Hex.Type == settings.HexTruncated {
				s.Hex.Type = settings.HexRegular
			} else {
				s.Hex.Type = settings.HexTruncated
			}
		}},
	{"hex long", num("%.0fmm", func(s settings.Snapshot) float64 { return s.Hex.Long }),
		func(s *settings.Snapshot, d float64) { s.Hex.Long += d }},
	{"hex ratio", num("%.2f", func(s settings.Snapshot) float64 { return s.Hex.Ratio }),
		func(s *settings.Snapshot, d float64) { s.Hex.Ratio += 0.05 * d }},
	{"star radius", num("%.0fmm", func(s settings.Snapshot) float64 { return s.Star.OuterRadius }),
		func(s *settings.Snapshot, d float64) { s.Star.OuterRadius += d }},
	{"root angle", num("%.0f°", func(s settings.Snapshot) float64 { return s.Star.RootAngle }),
		func(s *settings.Snapshot, d float64) { s.Star.RootAngle += d }},
	{"root offset", num("%.2f", func(s settings.Snapshot) float64 { return s.Star.RootOffset }),
		func(s *settings.Snapshot, d float64) { s.Star.RootOffset += 0.25 * d }},
	{"dot size", num("%.1fmm", func(s settings.Snapshot) float64 { return s.DotSize }),
		func(s *settings.Snapshot, d float64) { s.DotSize += 0.1 * d }},
	{"grid", func(s settings.Snapshot) string { return onOff(s.ShowGrid) },
		func(s *settings.Snapshot, _ float64) { s.ShowGrid = !s.ShowGrid }},
	{"rows", func(s settings.Snapshot) string { return fmt.Sprint(s.Layout.Rows) },
		func(s *settings.Snapshot, d float64) { s.Layout.Rows += int(d) }},
	{"cols", func(s settings.Snapshot) string { return fmt.Sprint(s.Layout.Cols) },
		func(s *settings.Snapshot, d float64) { s.Layout.Cols += int(d) }},
	{"h space", num("%.0fmm", func(s settings.Snapshot) float64 { return s.Layout.HSpace }),
		func(s *settings.Snapshot, d float64) { s.Layout.HSpace = max(0, s.Layout.HSpace+d) }},
	{"v space", num("%.0fmm", func(s settings.Snapshot) float64 { return s.Layout.VSpace }),
		func(s *settings.Snapshot, d float64) { s.Layout.VSpace = max(0, s.Layout.VSpace+d) }},
	{"invert odd", func(s settings.Snapshot) string { return onOff(s.Layout.InvertOdd) },
		func(s *settings.Snapshot, _ float64) { s.Layout.InvertOdd = !s.Layout.InvertOdd }},
	{"nesting offset", num("%.0fmm", func(s settings.Snapshot) float64 { return s.Layout.NestingOffset }),
		func(s *settings.Snapshot, d float64) { s.Layout.NestingOffset += d }},
}

// tuneMetrics are the live measurements shown under the field list.
type tuneMetrics struct {
	holes       int
	stitched    float64
	spacing     float64
	maxSpacing  float64
	area        float64
	utilization float64
}

// savedMsg reports the outcome of a save or export.
type savedMsg struct {
	path string
	err  error
}

// TuneModel is the bubbletea model for the interactive settings editor.
type TuneModel struct {
	Snap   settings.Snapshot
	Path   string
	Cursor int
	Height int
	Offset int

	metrics tuneMetrics
	status  string
	err     error
}

// NewTuneModel creates an editor for snap. Saves go to path.
func NewTuneModel(snap settings.Snapshot, path string) TuneModel {
	m := TuneModel{Snap: snap.Clamp(), Path: path, Height: len(tuneFields)}
	m.recompute()
	return m
}

// recompute runs the pipeline without rendering to refresh the metrics.
func (m *TuneModel) recompute() {
	res, err := m.Snap.Resolve()
	if err != nil {
		m.err = err
		return
	}
	r := pipeline.NewRunner(nil, discardLogger())
	out, err := r.Execute(context.Background(), res.Panel, pipeline.Options{
		Formats: []string{pipeline.FormatJSON},
		Sheet:   &res.Layout,
	})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.metrics = tuneMetrics{
		holes:       out.Stats.HoleCount,
		stitched:    out.Panel.StitchedSideLength,
		spacing:     res.Panel.HoleSpacing,
		maxSpacing:  res.MaxHoleSpacing,
		area:        out.Area,
		utilization: out.Utilization,
	}
}

func (m TuneModel) Init() tea.Cmd {
	return nil
}

func (m TuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(tuneFields)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "left", "h", "-":
			m.adjust(-1)
		case "right", "l", "+", " ":
			m.adjust(1)
		case "s":
			m.status = "saving..."
			return m, saveCmd(m.Path, m.Snap)
		case "w":
			m.status = "exporting..."
			return m, exportCmd(m.Path, m.Snap)
		}
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-8)
	case savedMsg:
		if msg.err != nil {
			m.status = StyleWarning.Render("error: " + msg.err.Error())
		} else {
			m.status = StyleSuccess.Render("wrote " + msg.path)
		}
	}
	return m, nil
}

func (m *TuneModel) adjust(dir float64) {
	tuneFields[m.Cursor].adjust(&m.Snap, dir)
	m.Snap = m.Snap.Clamp()
	m.status = ""
	m.recompute()
}

func (m TuneModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tune Panel"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ adjust  s save  w export svg  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(tuneFields))
	for i := m.Offset; i < end; i++ {
		f := tuneFields[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, f.label, f.value(m.Snap))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
	} else {
		mt := m.metrics
		fmt.Fprintf(&b, "  %s holes  %s stitched side  %s spacing (max %.2f)\n",
			StyleNumber.Render(fmt.Sprint(mt.holes)),
			StyleNumber.Render(fmt.Sprintf("%.1fmm", mt.stitched)),
			StyleNumber.Render(fmt.Sprintf("%.2fmm", mt.spacing)), mt.maxSpacing)
		fmt.Fprintf(&b, "  %s area  %s utilization",
			StyleNumber.Render(fmt.Sprintf("%.0fmm²", mt.area)),
			StyleNumber.Render(fmt.Sprintf("%.1f%%", mt.utilization)))
	}
	if m.status != "" {
		b.WriteString("\n\n  " + m.status)
	}
	return b.String()
}

func saveCmd(path string, snap settings.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{path: path, err: settings.Save(path, snap)}
	}
}

// exportCmd writes the panel SVG next to the settings file.
func exportCmd(path string, snap settings.Snapshot) tea.Cmd {
	return func() tea.Msg {
		res, err := snap.Resolve()
		if err != nil {
			return savedMsg{err: err}
		}
		r := pipeline.NewRunner(nil, discardLogger())
		out, err := r.Execute(context.Background(), res.Panel, pipeline.Options{
			Formats:  []string{pipeline.FormatSVG},
			DotSize:  res.DotSize,
			ShowGrid: res.ShowGrid,
		})
		if err != nil {
			return savedMsg{err: err}
		}
		svgPath := outputStem(path, false) + ".svg"
		if err := os.WriteFile(svgPath, out.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: svgPath}
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
