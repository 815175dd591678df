package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vovakirdan/subkiller/internal/storage"
)

const pageStyle = `body { background: #001a33; color: #e0e0e0; font-family: monospace; margin: 2rem; }
h1 { color: #ffd700; }
table { border-collapse: collapse; }
th, td { padding: 0.3rem 1rem; text-align: right; }
th { border-bottom: 1px solid #888; }
td.player { text-align: left; }
`

// LeaderboardPage renders the best games of the running server.
func LeaderboardPage(results []storage.Result) templ.Component {
	var body templ.Component = emptyBoard()
	if len(results) > 0 {
		body = leaderboard(results)
	}
	return layout("Submarine Killer", body)
}

// layout wraps body in the HTML document.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>"+templ.EscapeString(title)+"</title>\n<style>\n"+pageStyle+"</style>\n</head>\n<body>\n<h1>"+templ.EscapeString(title)+"</h1>\n"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<p>Connect with <code>ssh</code> to play.</p>\n</body>\n</html>\n")
		return err
	})
}

func emptyBoard() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>No games finished yet.</p>\n")
		return err
	})
}

// leaderboard is the results table, best first.
func leaderboard(results []storage.Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table>\n<tr><th>#</th><th>Player</th><th>Hits</th><th>Misses</th><th>Accuracy</th></tr>\n"); err != nil {
			return err
		}
		for i, res := range results {
			if err := resultRow(i+1, res).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}

func resultRow(rank int, res storage.Result) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		player := res.Player
		if player == "" {
			player = "anonymous"
		}
		_, err := io.WriteString(w, "<tr><td>"+strconv.Itoa(rank)+
			"</td><td class=\"player\">"+templ.EscapeString(player)+
			"</td><td>"+strconv.Itoa(res.Hits)+
			"</td><td>"+strconv.Itoa(res.Misses)+
			"</td><td>"+strconv.FormatFloat(res.Accuracy*100, 'f', 1, 64)+"%"+
			"</td></tr>\n")
		return err
	})
}
