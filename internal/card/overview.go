package card

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/naka-gawa/github-profile-assets/internal/svg"
)

// OverviewData is the input of the repository overview card.
type OverviewData struct {
	Login string
	// Name is the display name shown next to the login, optional.
	Name string
	// Repositories must already be ranked; the card shows all of them.
	Repositories []domain.Repository
	// Count, Total and Median describe the whole ranked set, which may be
	// longer than Repositories.
	Count  int
	Total  int
	Median float64
}

// Column offsets of the overview rows.
const (
	overviewDotX      = Padding + 6
	overviewLabelX    = Padding + 20
	overviewLanguageX = 260
	overviewBarX      = 360
	overviewCountX    = overviewBarX + 280 + 10
	overviewStarsX    = 720
	overviewDateX     = 790
)

// OverviewRows projects ranked repositories onto the overview view.
func OverviewRows(repos []domain.Repository) []Row {
	values := make([]int, len(repos))
	for i, r := range repos {
		values[i] = r.Commits
	}
	largest := Largest(values)

	rows := make([]Row, len(repos))
	for i, r := range repos {
		rows[i] = Row{
			Label:    Overview.Label(r.ShortName()),
			Href:     r.URL,
			Value:    r.Commits,
			Bar:      Overview.Bar(r.Commits, largest),
			Color:    domain.LanguageColor(r.Language),
			Language: domain.LanguageLabel(r.Language),
			Stars:    r.Stars,
			Date:     domain.FormatDate(r.PushedAt),
		}
	}
	return rows
}

// OverviewCard lays out repositories ranked by default-branch commits.
func OverviewCard(data OverviewData) svg.Document {
	const title = "Repository overview"
	rows := OverviewRows(data.Repositories)
	if len(rows) == 0 {
		return placeholder(Overview, title, "No repositories found.", "")
	}

	height := Overview.Height(len(rows))
	header := []string{"@" + data.Login}
	if data.Name != "" && data.Name != data.Login {
		header = append(header, data.Name)
	}
	header = append(header,
		fmt.Sprintf("%d repositories", data.Count),
		fmt.Sprintf("%d commits", data.Total),
		fmt.Sprintf("median %s", formatMedian(data.Median)),
	)

	children := frame(height, colorBackground, colorCard)
	children = append(children,
		cardStyle,
		svg.Text{X: Padding, Y: Padding + 20, Class: "title", Fill: colorText, Content: title},
		svg.Text{X: Padding, Y: Padding + 44, Class: "sub", Fill: colorMuted, Content: strings.Join(header, " • ")},
	)

	startY := Padding + Overview.TitleHeight + 18
	for i, r := range rows {
		y := startY + i*Overview.RowHeight
		children = append(children,
			svg.Circle{CX: overviewDotX, CY: y - 4, R: 5, Fill: r.Color},
			svg.Anchor{Href: r.Href, Children: []svg.Node{
				svg.Text{X: overviewLabelX, Y: y, Class: "label", Fill: colorText, Content: r.Label},
			}},
			svg.Text{X: overviewLanguageX, Y: y, Class: "meta", Fill: colorMuted, Content: r.Language},
		)
		children = append(children, track(overviewBarX, y-barHeight, Overview.Track, r.Bar, r.Color)...)
		children = append(children,
			svg.Text{X: overviewCountX, Y: y, Class: "count", Fill: colorText, Content: fmt.Sprint(r.Value)},
			svg.Text{X: overviewStarsX, Y: y, Class: "meta", Fill: colorMuted, Content: fmt.Sprintf("★ %d", r.Stars)},
			svg.Text{X: overviewDateX, Y: y, Class: "meta", Fill: colorMuted, Content: r.Date},
		)
	}

	return svg.Document{Width: Width, Height: height, Title: title, Children: children}
}

func formatMedian(m float64) string {
	if m == float64(int(m)) {
		return fmt.Sprint(int(m))
	}
	return fmt.Sprintf("%.1f", m)
}
