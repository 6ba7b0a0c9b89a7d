package iface

import (
	"context"

	"github.com/covidboard/api/covid/domain"
	"github.com/covidboard/api/covid/service"
)

//go:generate mockery --name CovidIface --output ../mocks
type CovidIface interface {
	LoadDataset(ctx context.Context) error
	Filter(ctx context.Context, req service.FilterRequest) ([]domain.Record, error)
	Countries(ctx context.Context) ([]service.CountryOption, error)
	DateRange(ctx context.Context) (*service.DateRange, error)
	Indicators(ctx context.Context) []string
	Series(ctx context.Context, req service.IndicatorRequest) ([]service.Series, error)
	Summary(ctx context.Context, req service.IndicatorRequest) ([]service.CountrySummary, error)
	ExportCSV(ctx context.Context, req service.FilterRequest) ([]byte, error)
}
