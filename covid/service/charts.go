package service

import (
	"bytes"
	"context"
	"encoding/csv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/covidboard/api/covid/domain"
)

// Series shapes the filtered records into one time series per country for
// the requested indicator, line-chart ready. Countries appear in row order,
// points keep the source's chronological ordering.
func (s *CovidService) Series(ctx context.Context, req IndicatorRequest) ([]Series, error) {
	if !domain.ValidIndicator(req.Indicator) {
		return nil, domain.ErrInvalidIndicator
	}

	rows, err := s.Filter(ctx, req.FilterRequest)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	series := make([]Series, 0)

	for _, r := range rows {
		value, _ := r.IndicatorValue(req.Indicator)
		point := SeriesPoint{Date: r.Date, Value: value}

		if i, ok := seen[r.Location]; ok {
			series[i].Points = append(series[i].Points, point)
			continue
		}

		seen[r.Location] = len(series)
		series = append(series, Series{
			ISOCode:  r.ISOCode,
			Location: r.Location,
			Points:   []SeriesPoint{point},
		})
	}

	return series, nil
}

// Summary aggregates the requested indicator per country over the filtered
// range. Latest is the value of the last matching row, which feeds the map;
// mean and max feed the secondary indicator chart.
func (s *CovidService) Summary(ctx context.Context, req IndicatorRequest) ([]CountrySummary, error) {
	if !domain.ValidIndicator(req.Indicator) {
		return nil, domain.ErrInvalidIndicator
	}

	rows, err := s.Filter(ctx, req.FilterRequest)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	values := make([][]float64, 0)
	summaries := make([]CountrySummary, 0)

	for _, r := range rows {
		value, _ := r.IndicatorValue(req.Indicator)

		if i, ok := seen[r.Location]; ok {
			values[i] = append(values[i], value)
			continue
		}

		seen[r.Location] = len(summaries)
		values = append(values, []float64{value})
		summaries = append(summaries, CountrySummary{
			ISOCode:  r.ISOCode,
			Location: r.Location,
		})
	}

	for i := range summaries {
		v := values[i]
		summaries[i].Latest = v[len(v)-1]
		summaries[i].Mean = stat.Mean(v, nil)
		summaries[i].Max = floats.Max(v)
	}

	return summaries, nil
}

// ExportCSV renders the filtered records back into the projected 25-column
// CSV layout for download.
func (s *CovidService) ExportCSV(ctx context.Context, req FilterRequest) ([]byte, error) {
	rows, err := s.Filter(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(domain.Columns); err != nil {
		return nil, err
	}

	for _, r := range rows {
		if err := w.Write(r.Row()); err != nil {
			return nil, err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
