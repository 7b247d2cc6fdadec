package cuer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CuecardPath returns the API path serving the rendered document of a cuesheet.
func CuecardPath(id string) string {
	return "/v2/cuecards/" + url.PathEscape(strings.TrimSpace(id))
}

// CuecardURL returns the absolute URL of a cuesheet's rendered document.
func (c *Client) CuecardURL(id string) string {
	if c == nil || c.baseURL == nil {
		return CuecardPath(id)
	}
	rel, err := url.Parse(CuecardPath(id))
	if err != nil {
		return c.baseURL.String() + CuecardPath(id)
	}
	return c.baseURL.ResolveReference(rel).String()
}

// Cuecard fetches the HTML document the server renders for a cuesheet.
func (c *Client) Cuecard(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("cuesheet id is empty")
	}
	resp, err := c.Do(ctx, Request{
		Method:  http.MethodGet,
		Path:    CuecardPath(id),
		Headers: map[string]string{"Accept": "text/html"},
	})
	if err != nil {
		return "", fmt.Errorf("fetch cuesheet %s: %w", id, err)
	}
	return string(resp.Body), nil
}

// CuecardText flattens a rendered cuesheet into plain text for the terminal.
// Block elements start new lines, list items get a dash, and table cells are
// separated by bars.
func CuecardText(document string) (string, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("%w: cuesheet document: %w", ErrDecode, err)
	}
	w := &textWriter{}
	w.walk(root)
	return w.String(), nil
}

type textWriter struct {
	b     strings.Builder
	space bool
	pre   int
	cells int
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		case atom.Br:
			w.breakLine(1)
			return
		case atom.Hr:
			w.breakLine(2)
			w.write("---")
			w.breakLine(2)
			return
		}
	}

	w.open(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	w.close(n)
}

func (w *textWriter) open(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	switch n.DataAtom {
	case atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Table, atom.Blockquote:
		w.breakLine(2)
	case atom.Pre:
		w.breakLine(2)
		w.pre++
	case atom.Div, atom.Tr:
		w.breakLine(1)
		w.cells = 0
	case atom.Li:
		w.breakLine(1)
		w.write("- ")
	case atom.Td, atom.Th:
		if w.cells > 0 {
			w.write(" | ")
		}
		w.cells++
	}
}

func (w *textWriter) close(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	switch n.DataAtom {
	case atom.P, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Table, atom.Blockquote:
		w.breakLine(2)
	case atom.Pre:
		w.pre--
		w.breakLine(2)
	case atom.Div, atom.Tr, atom.Li:
		w.breakLine(1)
	}
}

func (w *textWriter) text(s string) {
	if w.pre > 0 {
		w.write(s)
		return
	}
	if s != "" && isSpace(s[0]) {
		w.space = true
	}
	words := strings.Fields(s)
	for i, word := range words {
		if i > 0 {
			w.space = true
		}
		w.write(word)
	}
	if len(words) > 0 && isSpace(s[len(s)-1]) {
		w.space = true
	}
}

func (w *textWriter) write(s string) {
	if s == "" {
		return
	}
	if w.space && w.b.Len() > 0 && !w.atLineStart() {
		w.b.WriteByte(' ')
	}
	w.space = false
	w.b.WriteString(s)
}

// breakLine ends the current line so that at least n newlines trail the text.
func (w *textWriter) breakLine(n int) {
	w.space = false
	if w.b.Len() == 0 {
		return
	}
	s := w.b.String()
	trailing := len(s) - len(strings.TrimRight(s, "\n"))
	for ; trailing < n; trailing++ {
		w.b.WriteByte('\n')
	}
}

func (w *textWriter) atLineStart() bool {
	s := w.b.String()
	return s == "" || s[len(s)-1] == '\n'
}

func (w *textWriter) String() string {
	lines := strings.Split(w.b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}
