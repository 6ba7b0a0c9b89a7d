package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/covidboard/api/covid/domain"
)

type OWID struct {
	mock.Mock
}

func (m *OWID) FetchDataset(ctx context.Context) (*domain.Dataset, error) {
	args := m.Called(ctx)

	var dataset *domain.Dataset
	if args.Get(0) != nil {
		dataset = args.Get(0).(*domain.Dataset)
	}

	return dataset, args.Error(1)
}
