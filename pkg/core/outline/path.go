package outline

import (
	"strconv"
	"strings"

	"github.com/footbagworks/panelcut/pkg/core/geom"
)

// Op is a path command verb.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
	ArcTo  Op = 'A'
	Close  Op = 'Z'
)

// Command is one outline path command. Radius is set for ArcTo only.
type Command struct {
	Op     Op         `json:"op"`
	To     geom.Point `json:"to"`
	Radius float64    `json:"radius,omitempty"`
}

// MarshalText lets Op render as its SVG letter in JSON.
func (o Op) MarshalText() ([]byte, error) { return []byte{byte(o)}, nil }

// Path is a closed outline made of line and arc segments.
type Path struct {
	Commands []Command
}

// Outline builds the cut path for loop. Each edge becomes an arc of radius r
// when r is valid for that edge's chord, otherwise a straight line. Pass
// r <= 0 for a polygon with straight edges.
func Outline(loop geom.Loop, r float64) Path {
	n := loop.Len()
	if n == 0 {
		return Path{}
	}
	cmds := make([]Command, 0, n+2)
	cmds = append(cmds, Command{Op: MoveTo, To: loop.Vertices[0].P})
	for i := range n {
		a, b := loop.Edge(i)
		if ValidRadius(r, geom.Distance(a, b)) {
			cmds = append(cmds, Command{Op: ArcTo, To: b, Radius: r})
		} else {
			cmds = append(cmds, Command{Op: LineTo, To: b})
		}
	}
	cmds = append(cmds, Command{Op: Close})
	return Path{Commands: cmds}
}

// String renders the path as SVG path data with three decimals.
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(c.Op))
		switch c.Op {
		case MoveTo, LineTo:
			sb.WriteByte(' ')
			writeCoords(&sb, c.To.X, c.To.Y)
		case ArcTo:
			sb.WriteByte(' ')
			writeCoords(&sb, c.Radius, c.Radius)
			sb.WriteString(" 0 0 1 ")
			writeCoords(&sb, c.To.X, c.To.Y)
		}
	}
	return sb.String()
}

func writeCoords(sb *strings.Builder, x, y float64) {
	sb.WriteString(Fmt(x))
	sb.WriteByte(' ')
	sb.WriteString(Fmt(y))
}

// Fmt formats a coordinate with three decimals, folding negative zero.
func Fmt(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// Polyline flattens the path into points, splitting each arc into segs
// straight pieces. The closing point is not repeated.
func (p Path) Polyline(segs int) []geom.Point {
	if segs < 1 {
		segs = 1
	}
	var pts []geom.Point
	var cur geom.Point
	for _, c := range p.Commands {
		switch c.Op {
		case MoveTo, LineTo:
			pts = append(pts, c.To)
		case ArcTo:
			arc, ok := NewArc(cur, c.To, c.Radius)
			if !ok {
				pts = append(pts, c.To)
				break
			}
			for k := 1; k <= segs; k++ {
				pts = append(pts, arc.At(float64(k)/float64(segs)))
			}
		}
		if c.Op != Close {
			cur = c.To
		}
	}
	if n := len(pts); n > 1 && geom.Distance(pts[0], pts[n-1]) < Epsilon {
		pts = pts[:n-1]
	}
	return pts
}
