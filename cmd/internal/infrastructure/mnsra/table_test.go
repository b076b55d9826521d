package mnsra

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mnsreestr/cmd/internal/domain/entity"
)

func parseTable(t *testing.T, page string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	table := findResultsTable(doc)
	require.NotNil(t, table)
	return table
}

func TestExtractRecords_MapsCellsByPosition(t *testing.T) {
	table := parseTable(t, `<table class="results">
		<tr><th>Наименование</th><th>ИНН</th></tr>
		<tr>
			<td>  ООО "Апсны"  </td><td> 1104007890 </td><td>12.03.2004</td><td>АА 0001</td>
			<td>1040000000001</td><td>Действующий</td><td>Действует</td><td>лишняя</td>
		</tr>
	</table>`)

	records := ExtractRecords(table, entity.KindOrganization)
	require.Len(t, records, 1)

	assert.Equal(t, entity.Record{
		Name:              `ООО "Апсны"`,
		INN:               "1104007890",
		RegistrationDate:  "12.03.2004",
		CertificateNumber: "АА 0001",
		OGRN:              "1040000000001",
		TaxpayerStatus:    "Действующий",
		Status:            "Действует",
		Kind:              entity.KindOrganization,
	}, records[0])
}

func TestExtractRecords_DropsShortRows(t *testing.T) {
	table := parseTable(t, `<table class="results">
		<tr><th>header</th></tr>
		<tr><td>A</td><td>1</td><td>d</td><td>c</td><td>o</td><td>t</td><td>s</td></tr>
		<tr><td>broken</td><td>2</td><td>d</td><td>c</td><td>o</td><td>t</td></tr>
		<tr><td>C</td><td>3</td><td>d</td><td>c</td><td>o</td><td>t</td><td>s</td></tr>
	</table>`)

	records := ExtractRecords(table, entity.KindEntrepreneur)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, "C", records[1].Name)
	assert.Equal(t, entity.KindEntrepreneur, records[1].Kind)
}

func TestExtractRecords_NormalizesStatus(t *testing.T) {
	table := parseTable(t, `<table class="results">
		<tr><th>header</th></tr>
		<tr><td>A</td><td>1</td><td>d</td><td>c</td><td>o</td><td>t</td>
			<td> &nbsp;Ликвидирована&nbsp;с 01.01.2020&lt;br&gt; </td></tr>
	</table>`)

	records := ExtractRecords(table, entity.KindOrganization)
	require.Len(t, records, 1)
	assert.Equal(t, "Ликвидирована с 01.01.2020", records[0].Status)
}

func TestExtractRecords_HeaderOnly(t *testing.T) {
	table := parseTable(t, `<table class="results"><tr><th>header</th></tr></table>`)

	records := ExtractRecords(table, entity.KindOrganization)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestFindResultsTable_Missing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<table class="other"><tr><td>x</td></tr></table>`))
	require.NoError(t, err)

	assert.Nil(t, findResultsTable(doc))
}

func TestCleanStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Действует", "Действует"},
		{"Действует\u00a0с 2010", "Действует с 2010"},
		{"Приостановлена<br>", "Приостановлена"},
		{"\u00a0<br>\u00a0", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, cleanStatus(test.input), "cleanStatus(%q)", test.input)
	}
}
