package event

import "strconv"

// Flat is the serialized view of an Event: one level deep, fixed field
// order, suitable for CSV columns or a JSON Lines object. Start and
// end collapse to their ISO-8601 strings, so a record whose time was
// known but whose date was not comes out null.
type Flat struct {
	Title                 *string  `json:"title"`
	Start                 *string  `json:"start"`
	End                   *string  `json:"end"`
	Description           *string  `json:"description"`
	URL                   *string  `json:"url"`
	Virtual               *bool    `json:"virtual"`
	LocationCountry       *string  `json:"location_country"`
	LocationRegion        *string  `json:"location_region"`
	LocationCity          *string  `json:"location_city"`
	AccessibleToCanadians *float64 `json:"accessible_to_canadians"`
	OpenToPublic          *float64 `json:"open_to_public"`
	Approved              string   `json:"approved"`
	ScrapeSource          string   `json:"scrape_source"`
	ScrapeDatetime        string   `json:"scrape_datetime"`
}

// Columns returns the output field names in serialization order.
func Columns() []string {
	return []string{
		"title",
		"start",
		"end",
		"description",
		"url",
		"virtual",
		"location_country",
		"location_region",
		"location_city",
		"accessible_to_canadians",
		"open_to_public",
		"approved",
		"scrape_source",
		"scrape_datetime",
	}
}

// Flat converts the event to its serialized view.
func (e *Event) Flat() Flat {
	return Flat{
		Title:                 e.Title,
		Start:                 isoOrNil(e.Start),
		End:                   isoOrNil(e.End),
		Description:           e.Description,
		URL:                   e.URL,
		Virtual:               e.Virtual,
		LocationCountry:       e.LocationCountry,
		LocationRegion:        e.LocationRegion,
		LocationCity:          e.LocationCity,
		AccessibleToCanadians: e.AccessibleToCanadians,
		OpenToPublic:          e.OpenToPublic,
		Approved:              e.Approved.String(),
		ScrapeSource:          e.ScrapeSource,
		ScrapeDatetime:        e.ScrapeDatetime.Format("2006-01-02T15:04:05-07:00"),
	}
}

// Record returns the CSV row for the flat view, in Columns order.
// Unknown values become empty cells.
func (f Flat) Record() []string {
	boolCell := func(b *bool) string {
		switch {
		case b == nil:
			return ""
		case *b:
			return "true"
		default:
			return "false"
		}
	}
	floatCell := func(v *float64) string {
		if v == nil {
			return ""
		}
		return trimFloat(*v)
	}
	return []string{
		strCell(f.Title),
		strCell(f.Start),
		strCell(f.End),
		strCell(f.Description),
		strCell(f.URL),
		boolCell(f.Virtual),
		strCell(f.LocationCountry),
		strCell(f.LocationRegion),
		strCell(f.LocationCity),
		floatCell(f.AccessibleToCanadians),
		floatCell(f.OpenToPublic),
		f.Approved,
		f.ScrapeSource,
		f.ScrapeDatetime,
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func strCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isoOrNil(dt *DateAndTime) *string {
	s := dt.String()
	if s == "" {
		return nil
	}
	return &s
}
