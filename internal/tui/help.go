package tui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# SEO Radar

Terminal browser for the rewrite-priority report.

## Keys

| Key | Action |
|-----|--------|
| s   | cycle sort mode (rewrite priority / CVR x position / impressions x revenue) |
| t   | toggle excluding pages already ranked in the top 3 |
| r   | refresh the dataset from the upstream sheet |
| ?   | toggle this help screen |
| q   | quit |

## Sort modes

- **rewrite priority** — composite score of sales, conversions, traffic,
  impressions and rank trend, penalized by current rank. Pages with no
  revenue signal or already top-3 in both windows are excluded.
- **CVR x position** — conversion rate over clicks, scaled by rank.
- **impressions x revenue** — demand times monetization proxy.
`

// renders the help screen once per session
func renderHelp(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}

	return out
}
