// Package markdown renders repository lists as a Markdown table and as the
// HTML card block spliced into the profile README.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/naka-gawa/github-profile-assets/internal/config"
	"github.com/naka-gawa/github-profile-assets/internal/domain"
	"github.com/naka-gawa/github-profile-assets/internal/svg"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

// cell makes s safe to place inside a table cell.
func cell(s string) string {
	return cellEscaper.Replace(s)
}

// Table renders every repository in the given order with its language,
// stars and last push date.
func Table(login string, repos []domain.Repository, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Repositories (%s)\n\n", cell(login))
	fmt.Fprintf(&b, "Updated automatically on %s.\n\n", generatedAt.UTC().Format("2006-01-02 15:04 UTC"))
	b.WriteString("| Repository | Language | Stars | Last push |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, r := range repos {
		language := r.Language
		if language == "" {
			language = domain.Placeholder
		}
		fmt.Fprintf(&b, "| [%s](%s) | %s | %d | %s |\n",
			cell(r.NameWithOwner), cell(r.URL), cell(language), r.Stars, domain.FormatDate(r.PushedAt))
	}
	return b.String()
}

// ReadmeBlock renders the first limit repositories as HTML cards, two per
// line, followed by a count of the ones left out. The output contains no
// timestamp, so identical input always gives identical output.
func ReadmeBlock(repos []domain.Repository, limit int) string {
	if limit <= 0 {
		limit = config.DefaultReadmeCards
	}
	shown := repos
	if len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	b.WriteString("<div align=\"center\">\n\n")
	if len(shown) == 0 {
		b.WriteString("<p><em>No public repositories yet.</em></p>\n")
	}
	for i, r := range shown {
		writeCard(&b, r)
		if (i+1)%2 == 0 {
			b.WriteString("<br>\n")
		}
	}
	if rest := len(repos) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n<p style=\"color: #8b949e; font-size: 14px;\"><em>… and %d more repositories on the profile</em></p>\n", rest)
	}
	b.WriteString("\n</div>")
	return b.String()
}

func writeCard(b *strings.Builder, r domain.Repository) {
	language := domain.LanguageLabel(r.Language)
	esc := svg.Escape
	fmt.Fprintf(b, "<a href=\"%s\" style=\"text-decoration: none; display: inline-block; margin: 8px;\">\n", esc(r.URL))
	b.WriteString("  <div style=\"width: 400px; height: 120px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 12px; padding: 20px;\">\n")
	fmt.Fprintf(b, "    <h3 style=\"color: #fff; margin: 0 0 8px 0; font-size: 18px; font-weight: 700;\">📦 %s</h3>\n", esc(r.ShortName()))
	b.WriteString("    <div style=\"display: flex; gap: 12px; align-items: center; margin-top: 12px;\">\n")
	fmt.Fprintf(b, "      <span style=\"background: %s; padding: 4px 10px; border-radius: 12px; font-size: 12px; color: #fff; font-weight: 600;\">%s</span>\n",
		domain.LanguageColor(r.Language), esc(language))
	fmt.Fprintf(b, "      <span style=\"color: rgba(255,255,255,0.9); font-size: 13px;\">⭐ %d</span>\n", r.Stars)
	fmt.Fprintf(b, "      <span style=\"color: rgba(255,255,255,0.75); font-size: 12px; margin-left: auto;\">📅 %s</span>\n", domain.FormatDate(r.PushedAt))
	b.WriteString("    </div>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</a>\n")
}
