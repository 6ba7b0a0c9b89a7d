package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/covidboard/api/covid/domain"
	"github.com/covidboard/api/covid/service"
)

type CovidIface struct {
	mock.Mock
}

func (m *CovidIface) LoadDataset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CovidIface) Filter(ctx context.Context, req service.FilterRequest) ([]domain.Record, error) {
	args := m.Called(ctx, req)

	var records []domain.Record
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Record)
	}

	return records, args.Error(1)
}

func (m *CovidIface) Countries(ctx context.Context) ([]service.CountryOption, error) {
	args := m.Called(ctx)

	var options []service.CountryOption
	if args.Get(0) != nil {
		options = args.Get(0).([]service.CountryOption)
	}

	return options, args.Error(1)
}

func (m *CovidIface) DateRange(ctx context.Context) (*service.DateRange, error) {
	args := m.Called(ctx)

	var dateRange *service.DateRange
	if args.Get(0) != nil {
		dateRange = args.Get(0).(*service.DateRange)
	}

	return dateRange, args.Error(1)
}

func (m *CovidIface) Indicators(ctx context.Context) []string {
	args := m.Called(ctx)

	var indicators []string
	if args.Get(0) != nil {
		indicators = args.Get(0).([]string)
	}

	return indicators
}

func (m *CovidIface) Series(ctx context.Context, req service.IndicatorRequest) ([]service.Series, error) {
	args := m.Called(ctx, req)

	var series []service.Series
	if args.Get(0) != nil {
		series = args.Get(0).([]service.Series)
	}

	return series, args.Error(1)
}

func (m *CovidIface) Summary(ctx context.Context, req service.IndicatorRequest) ([]service.CountrySummary, error) {
	args := m.Called(ctx, req)

	var summaries []service.CountrySummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]service.CountrySummary)
	}

	return summaries, args.Error(1)
}

func (m *CovidIface) ExportCSV(ctx context.Context, req service.FilterRequest) ([]byte, error) {
	args := m.Called(ctx, req)

	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}

	return data, args.Error(1)
}
