package mnsra

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"mnsreestr/cmd/internal/domain/entity"
)

// minCells is the number of columns a results row must carry to be
// considered a complete record.
const minCells = 7

var statusReplacer = strings.NewReplacer("\u00a0", " ", "<br>", "")

// ExtractRecords converts the rows of a registry results table into records of
// the given kind. The first row is the header and is always skipped.
func ExtractRecords(table *goquery.Selection, kind entity.Kind) []entity.Record {
	records := make([]entity.Record, 0)

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}

		cells := row.Find("td")
		if cells.Length() < minCells {
			return
		}

		cell := func(n int) string {
			return strings.TrimSpace(cells.Eq(n).Text())
		}

		records = append(records, entity.Record{
			Name:              cell(0),
			INN:               cell(1),
			RegistrationDate:  cell(2),
			CertificateNumber: cell(3),
			OGRN:              cell(4),
			TaxpayerStatus:    cell(5),
			Status:            cleanStatus(cell(6)),
			Kind:              kind,
		})
	})
	return records
}

func cleanStatus(s string) string {
	return strings.TrimSpace(statusReplacer.Replace(s))
}

// findResultsTable returns nil when the page has no results table, which is how
// the registry answers a search without matches.
func findResultsTable(doc *goquery.Document) *goquery.Selection {
	table := doc.Find("table.results").First()
	if table.Length() == 0 {
		return nil
	}
	return table
}
