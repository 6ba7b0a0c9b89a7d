package service

import (
	"context"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/covidboard/api/covid/dal"
	"github.com/covidboard/api/covid/dal/iface"
	"github.com/covidboard/api/covid/domain"
	"github.com/covidboard/api/framework/connection"
	"github.com/covidboard/api/logger"
)

type CovidService struct {
	loggerProvider logger.Provider
	owid           iface.OWID
	store          iface.Store
	loadGroup      singleflight.Group
}

func NewCovidService(log logger.Provider, conn *connection.Connection) *CovidService {
	return &CovidService{
		log,
		dal.NewOWIDClient(log, conn),
		dal.NewInMemoryStore(),
		singleflight.Group{},
	}
}

// LoadDataset fetches the remote dataset, drops the provider's aggregate
// rows, and swaps the cleaned table into the store. Concurrent calls share a
// single fetch; on failure the previously stored dataset stays in place.
func (s *CovidService) LoadDataset(ctx context.Context) error {
	_, err, _ := s.loadGroup.Do("load", func() (interface{}, error) {
		log := s.loggerProvider(ctx)

		dataset, err := s.owid.FetchDataset(ctx)
		if err != nil {
			return nil, err
		}

		records := make([]domain.Record, 0, len(dataset.Records))

		for _, r := range dataset.Records {
			if r.IsAggregate() {
				continue
			}

			records = append(records, r)
		}

		s.store.Replace(&domain.Dataset{Records: records})

		log.Infof("covid: dataset loaded with %d rows (%d aggregate rows dropped)",
			len(records), len(dataset.Records)-len(records))

		return nil, nil
	})

	return err
}

// Filter returns the records matching the selectors; an over-restrictive or
// nonsensical selection yields an empty result, never an error.
func (s *CovidService) Filter(ctx context.Context, req FilterRequest) ([]domain.Record, error) {
	dataset, err := s.dataset()
	if err != nil {
		return nil, err
	}

	return filterRecords(dataset.Records, req), nil
}

// Countries lists the distinct locations present in the dataset, with their
// latest known population, sorted by display name.
func (s *CovidService) Countries(ctx context.Context) ([]CountryOption, error) {
	dataset, err := s.dataset()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	options := make([]CountryOption, 0)

	for _, r := range dataset.Records {
		if i, ok := seen[r.Location]; ok {
			if r.Population > 0 {
				options[i].Population = r.Population
			}

			continue
		}

		seen[r.Location] = len(options)
		options = append(options, CountryOption{
			ISOCode:    r.ISOCode,
			Location:   r.Location,
			Population: r.Population,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Location < options[j].Location
	})

	return options, nil
}

// DateRange returns the observed min and max date of the dataset.
func (s *CovidService) DateRange(ctx context.Context) (*DateRange, error) {
	dataset, err := s.dataset()
	if err != nil {
		return nil, err
	}

	from, to := dateBounds(dataset.Records)

	return &DateRange{From: from, To: to}, nil
}

// Indicators lists the numeric columns a user may chart.
func (s *CovidService) Indicators(ctx context.Context) []string {
	return domain.Indicators
}

func (s *CovidService) dataset() (*domain.Dataset, error) {
	dataset, ok := s.store.Dataset()
	if !ok {
		return nil, domain.ErrDatasetNotLoaded
	}

	return dataset, nil
}
