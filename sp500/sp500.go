// Package sp500 fetches the current list of S&P 500 constituents from
// Wikipedia, with their company name and GICS sector.
package sp500

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

const constituentsURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

// Constituent is one index member.
type Constituent struct {
	Symbol   string // provider-compatible ticker, e.g. "BRK-B"
	Security string // company name
	Sector   string // GICS sector
}

// Fetch downloads and parses the constituents table.
func Fetch(client *http.Client) ([]Constituent, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(constituentsURL)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch constituents: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cannot fetch constituents: %v", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse constituents page: %w", err)
	}
	return parse(doc)
}

// Sectors returns the ticker to GICS sector mapping of the constituents.
func Sectors(constituents []Constituent) map[string]string {
	sectors := make(map[string]string, len(constituents))
	for _, c := range constituents {
		sectors[c.Symbol] = c.Sector
	}
	return sectors
}

// parse extracts the constituents out of the page's table with
// id="constituents". Rows are returned sorted by symbol.
func parse(doc *html.Node) ([]Constituent, error) {
	table := findTable(doc, "constituents")
	if table == nil {
		return nil, fmt.Errorf("constituents table not found")
	}

	var constituents []Constituent
	for row := range descendants(table, "tr") {
		cells := cellTexts(row)
		// header row has no td cells
		if len(cells) < 3 {
			continue
		}
		constituents = append(constituents, Constituent{
			Symbol:   Normalize(cells[0]),
			Security: cells[1],
			Sector:   cells[2],
		})
	}
	if len(constituents) == 0 {
		return nil, fmt.Errorf("constituents table is empty")
	}
	sort.Slice(constituents, func(i, j int) bool { return constituents[i].Symbol < constituents[j].Symbol })
	return constituents, nil
}

// Normalize converts an index-style share class symbol like "BRK.B" into the
// dash form "BRK-B" used by the market data provider.
func Normalize(symbol string) string {
	return strings.ReplaceAll(strings.TrimSpace(symbol), ".", "-")
}

// findTable returns the first <table> with the given id, depth first.
func findTable(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c, id); t != nil {
			return t
		}
	}
	return nil
}

// descendants yields every descendant element with the given tag name.
func descendants(n *html.Node, tag string) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(n *html.Node) bool {
			if n.Type == html.ElementNode && n.Data == tag {
				return yield(n)
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

// cellTexts returns the trimmed text of each <td> cell of a row.
func cellTexts(row *html.Node) []string {
	var cells []string
	for td := range descendants(row, "td") {
		cells = append(cells, strings.TrimSpace(text(td)))
	}
	return cells
}

// text concatenates all text nodes under n.
func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
