package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/covidboard/api/covid/domain"
)

type Store struct {
	mock.Mock
}

func (m *Store) Replace(dataset *domain.Dataset) {
	m.Called(dataset)
}

func (m *Store) Dataset() (*domain.Dataset, bool) {
	args := m.Called()

	var dataset *domain.Dataset
	if args.Get(0) != nil {
		dataset = args.Get(0).(*domain.Dataset)
	}

	return dataset, args.Bool(1)
}
