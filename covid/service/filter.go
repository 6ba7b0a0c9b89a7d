package service

import (
	"github.com/covidboard/api/covid/domain"
)

// filterRecords applies the inclusive date range predicate and, when a
// country set is given, the location membership predicate. Missing range
// bounds default to the dataset's observed min/max date. The input slice is
// never modified and row order is preserved; dates are stored in the
// YYYY-MM-DD layout, so plain string comparison orders them chronologically.
func filterRecords(records []domain.Record, req FilterRequest) []domain.Record {
	dateFrom, dateTo := req.DateFrom, req.DateTo

	if dateFrom == "" || dateTo == "" {
		minDate, maxDate := dateBounds(records)

		if dateFrom == "" {
			dateFrom = minDate
		}

		if dateTo == "" {
			dateTo = maxDate
		}
	}

	var countries map[string]struct{}

	if len(req.Countries) > 0 {
		countries = make(map[string]struct{}, len(req.Countries))
		for _, c := range req.Countries {
			countries[c] = struct{}{}
		}
	}

	matched := make([]domain.Record, 0)

	for _, r := range records {
		if r.Date < dateFrom || r.Date > dateTo {
			continue
		}

		if countries != nil {
			if _, ok := countries[r.Location]; !ok {
				continue
			}
		}

		matched = append(matched, r)
	}

	return matched
}

// dateBounds scans for the min and max stored date, skipping rows whose date
// was imputed away during loading.
func dateBounds(records []domain.Record) (string, string) {
	var minDate, maxDate string

	for _, r := range records {
		if r.Date == "" {
			continue
		}

		if minDate == "" || r.Date < minDate {
			minDate = r.Date
		}

		if r.Date > maxDate {
			maxDate = r.Date
		}
	}

	return minDate, maxDate
}
