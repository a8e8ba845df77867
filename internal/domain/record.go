package domain

import "strconv"

// Record is one raw victim report from the upstream API. Every field is
// optional; absent keys decode to zero values. Press and Duplicates stay
// loosely typed because upstream emits absent, null, string, or list for
// them depending on the record.
type Record struct {
	Victim      string `json:"victim"`
	Domain      string `json:"domain"`
	Country     string `json:"country"`
	Group       string `json:"group"`
	Activity    string `json:"activity"`
	AttackDate  string `json:"attackdate"`
	Discovered  string `json:"discovered"`
	Date        string `json:"date"`
	Description string `json:"description"`
	ClaimURL    string `json:"claim_url"`
	URL         string `json:"url"`
	Screenshot  string `json:"screenshot"`
	Press       any    `json:"press"`
	Duplicates  any    `json:"duplicates"`
}

// ExportRow is the flat, fixed-column projection written to CSV and, when
// the Kafka sink is enabled, published as JSON. JSON tags match the CSV
// column names.
type ExportRow struct {
	IDBase64        string `json:"id_base64"`
	Victim          string `json:"victim"`
	Domain          string `json:"domain"`
	Country         string `json:"country"`
	Group           string `json:"group"`
	Activity        string `json:"activity"`
	AttackDate      string `json:"attackdate"`
	Discovered      string `json:"discovered"`
	Description     string `json:"description"`
	ClaimURL        string `json:"claim_url"`
	DetailURL       string `json:"detail_url"`
	ScreenshotURL   string `json:"screenshot_url"`
	PressURLs       string `json:"press_urls"`
	DuplicatesCount int    `json:"duplicates_count"`
}

// CSVColumns is the fixed CSV header, in output order.
var CSVColumns = []string{
	"id_base64",
	"victim",
	"domain",
	"country",
	"group",
	"activity",
	"attackdate",
	"discovered",
	"description",
	"claim_url",
	"detail_url",
	"screenshot_url",
	"press_urls",
	"duplicates_count",
}

// CSVValues returns the row's fields as strings, aligned with CSVColumns.
func (r ExportRow) CSVValues() []string {
	return []string{
		r.IDBase64,
		r.Victim,
		r.Domain,
		r.Country,
		r.Group,
		r.Activity,
		r.AttackDate,
		r.Discovered,
		r.Description,
		r.ClaimURL,
		r.DetailURL,
		r.ScreenshotURL,
		r.PressURLs,
		strconv.Itoa(r.DuplicatesCount),
	}
}
