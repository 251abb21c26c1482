package parser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ResearchCatalog/internal/catalog"
)

const defaultTableSelector = "table"

// sheetRow is one data row keyed by the header cell text.
type sheetRow map[string]string

// get returns the trimmed cell value; spreadsheet placeholders read as empty.
func (r sheetRow) get(column string) string {
	v := strings.TrimSpace(r[column])
	switch strings.ToLower(v) {
	case "nan", "none", "null":
		return ""
	}
	return v
}

func fetchSheet(ctx context.Context, client *http.Client, location string) (*goquery.Document, error) {
	body, err := openSheet(ctx, client, location)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

func openSheet(ctx context.Context, client *http.Client, location string) (io.ReadCloser, error) {
	if !catalog.IsRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("open sheet: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "ResearchCatalog/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request sheet: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("sheet returned %s", resp.Status)
	}
	return resp.Body, nil
}

// readTable maps every row after the first to the header names of the first
// row. Blank rows are kept so row positions match the sheet.
func readTable(doc *goquery.Document, selector string) ([]sheetRow, error) {
	if selector == "" {
		selector = defaultTableSelector
	}
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table matches %q", selector)
	}

	var (
		headers []string
		rows    []sheetRow
	)
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("th, td")
		if headers == nil {
			headers = make([]string, cells.Length())
			cells.Each(func(j int, cell *goquery.Selection) {
				headers[j] = strings.TrimSpace(cell.Text())
			})
			return
		}

		row := sheetRow{}
		cells.Each(func(j int, cell *goquery.Selection) {
			if j >= len(headers) || headers[j] == "" {
				return
			}
			row[headers[j]] = cellText(cell)
		})
		rows = append(rows, row)
	})

	if headers == nil {
		return nil, fmt.Errorf("table %q has no header row", selector)
	}
	return rows, nil
}

// cellText prefers the visible text and falls back to a link target.
func cellText(cell *goquery.Selection) string {
	text := strings.TrimSpace(cell.Text())
	if text != "" {
		return text
	}
	if href, ok := cell.Find("a[href]").First().Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	return ""
}
