package card

import "github.com/naka-gawa/github-profile-assets/internal/svg"

// Dark palette matching GitHub's dark theme.
const (
	colorBackground  = "#0d1117"
	colorCard        = "#161b22"
	colorText        = "#c9d1d9"
	colorMuted       = "#8b949e"
	colorTrack       = "#21262d"
	colorBar         = "#8A2BE2"
	colorBarEnd      = "#a855f7"
	colorPlaceholder = "#111827"
	colorPlaceText   = "#e5e7eb"
	colorPlaceMuted  = "#9ca3af"
	colorPlaceBg     = "#0b1020"
)

const barHeight = 10

const fontStack = "ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Arial"

var cardStyle = svg.Style{CSS: ".title{font:700 18px " + fontStack + ";}" +
	".sub{font:500 12px " + fontStack + ";}" +
	".label{font:600 12px " + fontStack + ";}" +
	".count{font:700 13px " + fontStack + ";}" +
	".meta{font:500 11px " + fontStack + ";}"}

// frame returns the outer background and the inset card.
func frame(height int, background, card string) []svg.Node {
	return []svg.Node{
		svg.Rect{Width: Width, Height: height, RX: 14, Fill: background},
		svg.Rect{X: inset, Y: inset, Width: Width - 2*inset, Height: height - 2*inset, RX: 12, Fill: card},
	}
}

// placeholder renders the card shown when a view has no rows.
func placeholder(v View, title, message, hint string) svg.Document {
	height := v.Height(0)
	children := frame(height, colorPlaceBg, colorPlaceholder)
	children = append(children,
		svg.Text{X: Padding, Y: 60, Fill: colorPlaceText, FontSize: 18, FontWeight: "700", Content: title},
		svg.Text{X: Padding, Y: 90, Fill: colorPlaceMuted, FontSize: 14, Content: message},
	)
	if hint != "" {
		children = append(children, svg.Text{X: Padding, Y: 120, Fill: colorPlaceMuted, FontSize: 13, Content: hint})
	}
	return svg.Document{Width: Width, Height: height, Title: title, Children: children}
}

// track returns the background track and, when width is positive, the filled bar.
func track(x, y, length, width int, fill string) []svg.Node {
	nodes := []svg.Node{svg.Rect{X: x, Y: y, Width: length, Height: barHeight, RX: 5, Fill: colorTrack}}
	if width > 0 {
		nodes = append(nodes, svg.Rect{X: x, Y: y, Width: width, Height: barHeight, RX: 5, Fill: fill})
	}
	return nodes
}
