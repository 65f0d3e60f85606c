// Package report renders the current standings as a markdown report and an
// HTML page derived from it, for publishing alongside the JSON indexes.
package report

import (
	"fmt"
	"strings"

	"wolfboard/app"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Generator builds standings reports from a leaderboard
type Generator struct{}

// NewGenerator creates a report generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Markdown renders the leaderboard as a markdown standings report
func (g *Generator) Markdown(board *app.Leaderboard) string {
	var b strings.Builder

	b.WriteString("# Werewolf League Standings\n\n")
	fmt.Fprintf(&b, "Updated %s. %d agents ranked across %d games.\n\n",
		board.GeneratedAt.String(), board.League.TotalAgents, board.League.TotalGames)
	fmt.Fprintf(&b, "League rating: mean %.0f, median %.0f, p90 %.0f.\n\n",
		board.League.MeanRating, board.League.Median, board.League.P90)

	b.WriteString("| Rank | Agent | ELO | Games | W/L | Win % | Mean Score |\n")
	b.WriteString("|------|-------|-----|-------|-----|-------|------------|\n")
	for _, r := range board.Rankings {
		fmt.Fprintf(&b, "| %d | %s | %.0f | %d | %d/%d | %.1f | %.3f |\n",
			r.Rank, r.AgentID, r.GeneralRating, r.GamesPlayed,
			r.Wins, r.Losses, r.WinRate, r.MeanAggregate)
	}
	return b.String()
}

// HTML renders the markdown standings report to HTML
func (g *Generator) HTML(board *app.Leaderboard) []byte {
	md := g.Markdown(board)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
