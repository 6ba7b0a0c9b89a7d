package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/covidboard/api/covid/dal/mocks"
	"github.com/covidboard/api/covid/domain"
	"github.com/covidboard/api/logger"
)

func newTestService(owid *mocks.OWID, store *mocks.Store) *CovidService {
	return &CovidService{
		loggerProvider: logger.FromContext,
		owid:           owid,
		store:          store,
	}
}

func TestCovidService_LoadDataset(t *testing.T) {
	ctx := context.Background()

	fetched := &domain.Dataset{Records: []domain.Record{
		{ISOCode: "CAN", Location: "Canada", Date: "2021-01-01", TotalCases: 100},
		{ISOCode: "OWID_WRL", Location: "World", Date: "2021-01-01", TotalCases: 9999},
		{ISOCode: "FRA", Location: "France", Date: "2021-01-01", TotalCases: 50},
	}}

	owid := &mocks.OWID{}
	owid.On("FetchDataset", ctx).Return(fetched, nil)

	store := &mocks.Store{}
	store.On("Replace", mock.MatchedBy(func(d *domain.Dataset) bool {
		if len(d.Records) != 2 {
			return false
		}

		return d.Records[0].ISOCode == "CAN" && d.Records[1].ISOCode == "FRA"
	})).Return()

	s := newTestService(owid, store)

	err := s.LoadDataset(ctx)
	assert.NoError(t, err)

	owid.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCovidService_LoadDatasetFetchError(t *testing.T) {
	ctx := context.Background()

	owid := &mocks.OWID{}
	owid.On("FetchDataset", ctx).Return(nil, domain.ErrDataSourceUnavailable)

	store := &mocks.Store{}

	s := newTestService(owid, store)

	err := s.LoadDataset(ctx)
	assert.Error(t, err)
	assert.True(t, err == domain.ErrDataSourceUnavailable)

	store.AssertNotCalled(t, "Replace", mock.Anything)
}

func TestCovidService_FilterBeforeLoad(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("Dataset").Return(nil, false)

	s := newTestService(&mocks.OWID{}, store)

	_, err := s.Filter(ctx, FilterRequest{})
	assert.True(t, err == domain.ErrDatasetNotLoaded)
}

func TestCovidService_Countries(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("Dataset").Return(&domain.Dataset{Records: []domain.Record{
		{ISOCode: "FRA", Location: "France", Date: "2021-01-01", Population: 67000000},
		{ISOCode: "CAN", Location: "Canada", Date: "2021-01-01", Population: 0},
		{ISOCode: "CAN", Location: "Canada", Date: "2021-01-02", Population: 38000000},
	}}, true)

	s := newTestService(&mocks.OWID{}, store)

	countries, err := s.Countries(ctx)
	assert.NoError(t, err)
	assert.DeepEqual(t, []CountryOption{
		{ISOCode: "CAN", Location: "Canada", Population: 38000000},
		{ISOCode: "FRA", Location: "France", Population: 67000000},
	}, countries)
}

func TestCovidService_DateRange(t *testing.T) {
	ctx := context.Background()

	store := &mocks.Store{}
	store.On("Dataset").Return(&domain.Dataset{Records: []domain.Record{
		{ISOCode: "CAN", Location: "Canada", Date: "2021-01-02"},
		{ISOCode: "FRA", Location: "France", Date: "2021-01-01"},
	}}, true)

	s := newTestService(&mocks.OWID{}, store)

	dateRange, err := s.DateRange(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "2021-01-01", dateRange.From)
	assert.Equal(t, "2021-01-02", dateRange.To)
}

func TestCovidService_Indicators(t *testing.T) {
	s := newTestService(&mocks.OWID{}, &mocks.Store{})

	indicators := s.Indicators(context.Background())
	assert.Equal(t, len(domain.Indicators), len(indicators))
	assert.Equal(t, "total_cases", indicators[0])
}
