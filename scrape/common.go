package scrape

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// errLayoutChanged means the page loaded but the expected price row was
// not found; the retailer likely changed its table layout.
var errLayoutChanged = errors.New("price row not found, page layout may have changed")

var nonDigit = regexp.MustCompile(`[^\d]`)

// parsePrice turns a Vietnamese price string into a number. Both dots
// and commas appear as thousand separators ("15.550.000", "15,550,000"),
// so every non-digit is stripped.
func parsePrice(s string) (decimal.Decimal, error) {
	cleaned := nonDigit.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" {
		return decimal.Zero, errors.New("no digits in price text: " + s)
	}
	return decimal.NewFromString(cleaned)
}

// eachTableRow walks every <tr> of every <table> in the document,
// handing the trimmed <td> texts to fn. Iteration stops once fn returns
// true.
func eachTableRow(doc *goquery.Document, fn func(cells []string) bool) {
	done := false
	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := make([]string, 0, 8)
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 && fn(cells) {
			done = true
		}
		return !done
	})
}
