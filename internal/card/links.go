package card

import (
	"fmt"

	"github.com/naka-gawa/github-profile-assets/internal/config"
	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/naka-gawa/github-profile-assets/internal/svg"
)

// LinksHeight is the fixed height of the links card.
const LinksHeight = 180

const linksCSS = ".contact-card{cursor:pointer;}" +
	".contact-card:hover .icon-circle{fill:url(#bgGrad);}" +
	".contact-title{font:600 11px " + fontStack + ";}"

// LinksData is the input of the links card.
type LinksData struct {
	Title    string
	Subtitle string
	Links    []config.Link
}

// LinksCard lays out contact links spread evenly across the canvas.
// It reports false when there is nothing to draw.
func LinksCard(data LinksData) (svg.Document, bool) {
	if len(data.Links) == 0 {
		return svg.Document{}, false
	}

	children := []svg.Node{
		svg.Style{CSS: linksCSS},
		svg.Rect{Width: Width, Height: LinksHeight, RX: 16, Fill: colorBackground},
		svg.Rect{X: 8, Y: 8, Width: Width - 16, Height: LinksHeight - 16, RX: 12, Fill: colorCard},
		svg.Text{X: Width / 2, Y: 35, Anchor: "middle", Fill: colorText, FontSize: 20, FontWeight: "700", Content: data.Title},
		svg.Text{X: Width / 2, Y: 55, Anchor: "middle", Fill: colorMuted, FontSize: 12, Content: data.Subtitle},
	}

	slot := Width / len(data.Links)
	const cy = 90
	for i, link := range data.Links {
		cx := slot*i + slot/2
		color := link.Color
		if color == "" {
			color = domain.AccentColor
		}
		icon := []svg.Node{svg.Circle{Class: "icon-circle", CX: cx, CY: cy, R: 24, Fill: colorTrack, Opacity: "0.8"}}
		if link.Icon != "" {
			icon = append(icon, svg.Group{
				Transform: fmt.Sprintf("translate(%d, %d)", cx-12, cy-12),
				Children:  []svg.Node{svg.Path{D: link.Icon, Fill: color, Opacity: "0.9"}},
			})
		}
		icon = append(icon, svg.Text{X: cx, Y: cy + 42, Class: "contact-title", Anchor: "middle", Fill: colorMuted, Content: link.Name})
		children = append(children, svg.Anchor{Href: link.URL, Class: "contact-card", Children: []svg.Node{svg.Group{Children: icon}}})
	}

	return svg.Document{
		Width:  Width,
		Height: LinksHeight,
		Title:  data.Title,
		Defs: []svg.Node{svg.LinearGradient{
			ID: "bgGrad", X1: "0%", Y1: "0%", X2: "100%", Y2: "100%",
			Stops: []svg.Stop{{Offset: "0%", Color: "#667eea", Opacity: "0.1"}, {Offset: "100%", Color: "#764ba2", Opacity: "0.1"}},
		}},
		Children: children,
	}, true
}
