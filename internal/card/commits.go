package card

import (
	"fmt"

	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/naka-gawa/github-profile-assets/internal/svg"
)

const barGradientID = "barGradient"

// Row is one render-ready line of a card.
type Row struct {
	Label string
	Href  string
	Value int
	// Bar is the filled bar length in px.
	Bar      int
	Color    string
	Language string
	Stars    int
	Date     string
}

// CommitsData is the input of the commit contributions card.
type CommitsData struct {
	Login       string
	PeriodLabel string
	// Contributions must already be ranked and truncated.
	Contributions []domain.Contribution
	Total         int
}

// CommitRows projects ranked contributions onto the commits view.
func CommitRows(contributions []domain.Contribution) []Row {
	values := make([]int, len(contributions))
	for i, c := range contributions {
		values[i] = c.Commits
	}
	largest := Largest(values)

	rows := make([]Row, len(contributions))
	for i, c := range contributions {
		rows[i] = Row{
			Label: Commits.Label(c.NameWithOwner),
			Href:  c.URL,
			Value: c.Commits,
			Bar:   Commits.Bar(c.Commits, largest),
			Color: svg.URL(barGradientID),
		}
	}
	return rows
}

// CommitsCard lays out the top repositories by commit contributions.
func CommitsCard(data CommitsData) svg.Document {
	title := "Commits by repository — " + data.PeriodLabel
	rows := CommitRows(data.Contributions)
	if len(rows) == 0 {
		return placeholder(Commits, title,
			"No commits found in the selected period.",
			"This happens on a first run or when there was no recent public activity.")
	}

	height := Commits.Height(len(rows))
	subtitle := fmt.Sprintf("@%s • Top %d (by commits) • %d commits", data.Login, len(rows), data.Total)

	children := frame(height, colorBackground, colorCard)
	children = append(children,
		cardStyle,
		svg.Text{X: Padding, Y: Padding + 18, Class: "title", Fill: colorText, Content: title},
		svg.Text{X: Padding, Y: Padding + 38, Class: "sub", Fill: colorMuted, Content: subtitle},
	)

	startY := Padding + Commits.TitleHeight + 16
	barX := Padding + 320
	for i, r := range rows {
		y := startY + i*Commits.RowHeight
		children = append(children, svg.Anchor{Href: r.Href, Children: []svg.Node{
			svg.Text{X: Padding, Y: y, Class: "label", Fill: colorText, Content: r.Label},
		}})
		children = append(children, track(barX, y-barHeight, Commits.Track, r.Bar, r.Color)...)
		children = append(children, svg.Text{X: barX + Commits.Track + 10, Y: y, Class: "count", Fill: colorMuted, Content: fmt.Sprint(r.Value)})
	}

	return svg.Document{
		Width:  Width,
		Height: height,
		Title:  title,
		Defs: []svg.Node{svg.LinearGradient{
			ID: barGradientID, X1: "0%", Y1: "0%", X2: "100%", Y2: "0%",
			Stops: []svg.Stop{{Offset: "0%", Color: colorBar}, {Offset: "100%", Color: colorBarEnd}},
		}},
		Children: children,
	}
}
