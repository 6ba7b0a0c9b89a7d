package service

// FilterRequest carries the selector values of one dashboard interaction.
// Empty date bounds default to the dataset's observed range; an empty country
// list keeps every location.
type FilterRequest struct {
	DateFrom  string   `json:"date_from"`
	DateTo    string   `json:"date_to"`
	Countries []string `json:"countries"`
}

// IndicatorRequest is a filter plus the indicator column to visualize.
type IndicatorRequest struct {
	FilterRequest
	Indicator string `json:"indicator"`
}

// CountryOption is one entry of the country selector.
type CountryOption struct {
	ISOCode    string  `json:"iso_code"`
	Location   string  `json:"location"`
	Population float64 `json:"population"`
}

// DateRange bounds the dashboard's date pickers.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is one line of the time-series chart.
type Series struct {
	ISOCode  string        `json:"iso_code"`
	Location string        `json:"location"`
	Points   []SeriesPoint `json:"points"`
}

// CountrySummary aggregates one indicator per country over the filtered
// range; it feeds the map and the secondary indicator chart.
type CountrySummary struct {
	ISOCode  string  `json:"iso_code"`
	Location string  `json:"location"`
	Latest   float64 `json:"latest"`
	Mean     float64 `json:"mean"`
	Max      float64 `json:"max"`
}
