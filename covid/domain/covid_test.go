package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAggregate(t *testing.T) {
	assert.True(t, Record{ISOCode: "OWID_WRL"}.IsAggregate())
	assert.True(t, Record{ISOCode: "OWID_EUR"}.IsAggregate())
	assert.False(t, Record{ISOCode: "CAN"}.IsAggregate())
	assert.False(t, Record{ISOCode: ""}.IsAggregate())
}

func TestValidIndicator(t *testing.T) {
	for _, name := range Indicators {
		assert.True(t, ValidIndicator(name), name)
	}

	assert.False(t, ValidIndicator("iso_code"))
	assert.False(t, ValidIndicator("date"))
	assert.False(t, ValidIndicator("gdp_per_capita"))
}

func TestIndicatorValue(t *testing.T) {
	r := Record{NewCases: 42, Population: 38000000}

	v, ok := r.IndicatorValue("new_cases")
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)

	v, ok = r.IndicatorValue("population")
	assert.True(t, ok)
	assert.Equal(t, 38000000.0, v)

	_, ok = r.IndicatorValue("location")
	assert.False(t, ok)
}

func TestRowFollowsColumnOrder(t *testing.T) {
	r := Record{
		ISOCode:    "CAN",
		Continent:  "North America",
		Location:   "Canada",
		Date:       "2021-01-01",
		TotalCases: 100.5,
	}

	row := r.Row()
	assert.Len(t, row, len(Columns))
	assert.Equal(t, "CAN", row[0])
	assert.Equal(t, "2021-01-01", row[3])
	assert.Equal(t, "100.5", row[4])
	assert.Equal(t, "0", row[len(row)-1])
}
