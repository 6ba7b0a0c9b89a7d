package iface

import (
	"context"

	"github.com/covidboard/api/covid/domain"
)

//go:generate mockery --name OWID --output ../mocks
type OWID interface {
	// FetchDataset retrieves and parses the remote dataset. The returned
	// dataset is projected to the column whitelist and has no missing
	// values, but still contains the provider's aggregate rows.
	FetchDataset(ctx context.Context) (*domain.Dataset, error)
}

//go:generate mockery --name Store --output ../mocks
type Store interface {
	// Replace atomically swaps the stored dataset.
	Replace(dataset *domain.Dataset)

	// Dataset returns the stored dataset, reporting false before the
	// first Replace.
	Dataset() (*domain.Dataset, bool)
}
