package domain

import "errors"

var (
	// ErrDataSourceUnavailable is returned when the remote dataset could not
	// be fetched or parsed. The underlying cause is logged, never surfaced.
	ErrDataSourceUnavailable = errors.New("the covid data source is unreachable")

	// ErrSchemaMismatch is returned when the fetched content parses as a
	// table but lacks one or more of the expected columns.
	ErrSchemaMismatch = errors.New("covid data source schema mismatch")

	// ErrDatasetNotLoaded is returned when a query arrives before the
	// dataset was loaded.
	ErrDatasetNotLoaded = errors.New("covid dataset is not loaded")

	// ErrInvalidIndicator is returned for indicator names outside the
	// projected column whitelist.
	ErrInvalidIndicator = errors.New("invalid indicator")
)
