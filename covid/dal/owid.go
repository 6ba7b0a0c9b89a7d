package dal

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	resty "github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/covidboard/api/common"
	"github.com/covidboard/api/covid/domain"
	"github.com/covidboard/api/framework/connection"
	"github.com/covidboard/api/logger"
	"github.com/covidboard/api/times"
)

const (
	// owidDataURL is where Our World in Data publishes the full dataset;
	// the provider refreshes it daily.
	owidDataURL = "https://covid.ourworldindata.org/data/owid-covid-data.csv"

	dataURLEnv = "COVID_DATA_URL"
)

// OWIDClient fetches the published COVID-19 dataset over HTTPS and decodes
// it into the projected in-memory table.
type OWIDClient struct {
	loggerProvider logger.Provider
	http           *resty.Client
	url            string
}

func NewOWIDClient(log logger.Provider, conn *connection.Connection) *OWIDClient {
	return NewOWIDClientWithURL(log, conn.HTTP, common.GetEnv(dataURLEnv, owidDataURL))
}

func NewOWIDClientWithURL(log logger.Provider, client *resty.Client, url string) *OWIDClient {
	return &OWIDClient{
		log,
		client,
		url,
	}
}

// FetchDataset performs one GET of the dataset and decodes the CSV body.
// Transport and parse failures are logged with their cause and surfaced as
// the sanitized ErrDataSourceUnavailable.
func (d *OWIDClient) FetchDataset(ctx context.Context) (*domain.Dataset, error) {
	log := d.loggerProvider(ctx)

	resp, err := d.http.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(d.url)
	if err != nil {
		log.Errorf("owid: fetch %s failed: %v", d.url, err)
		return nil, domain.ErrDataSourceUnavailable
	}

	if resp.IsError() {
		log.Errorf("owid: fetch %s failed: status %d", d.url, resp.StatusCode())
		return nil, domain.ErrDataSourceUnavailable
	}

	dataset, err := d.decode(ctx, resp.Body())
	if err != nil {
		return nil, err
	}

	return dataset, nil
}

func (d *OWIDClient) decode(ctx context.Context, body []byte) (*domain.Dataset, error) {
	log := d.loggerProvider(ctx)

	reader := csv.NewReader(bytes.NewReader(body))

	header, err := reader.Read()
	if err != nil {
		log.Errorf("owid: reading csv header failed: %v", err)
		return nil, domain.ErrDataSourceUnavailable
	}

	columns, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		// A malformed row means the body is not the published dataset;
		// a truncated table must not pass for a loaded one.
		if err != nil {
			log.Errorf("owid: reading csv body failed: %v", err)
			return nil, domain.ErrDataSourceUnavailable
		}

		records = append(records, decodeRecord(row, columns))
	}

	return &domain.Dataset{Records: records}, nil
}

// columnIndexes maps every whitelisted column to its position in the source
// header. The source carries dozens of extra columns; those are ignored.
// Every missing required column is reported, not just the first one.
func columnIndexes(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	var missing *multierror.Error

	columns := make(map[string]int, len(domain.Columns))

	for _, name := range domain.Columns {
		i, ok := positions[name]
		if !ok {
			missing = multierror.Append(missing, fmt.Errorf("missing column %q", name))
			continue
		}

		columns[name] = i
	}

	if err := missing.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSchemaMismatch, err)
	}

	return columns, nil
}

func decodeRecord(row []string, columns map[string]int) domain.Record {
	text := func(name string) string {
		return row[columns[name]]
	}

	// Missing numeric values are imputed with zero; unparseable cells are
	// treated the same as missing ones.
	number := func(name string) float64 {
		v := strings.TrimSpace(text(name))
		if v == "" {
			return 0
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}

		return f
	}

	// Dates are normalized through the day layout so that stored dates
	// order lexicographically; anything unparseable collapses to the
	// string imputation default.
	date, _ := times.NormalizeDay(text("date"))

	return domain.Record{
		ISOCode:                        text("iso_code"),
		Continent:                      text("continent"),
		Location:                       text("location"),
		Date:                           date,
		TotalCases:                     number("total_cases"),
		NewCases:                       number("new_cases"),
		TotalDeaths:                    number("total_deaths"),
		NewDeaths:                      number("new_deaths"),
		TotalCasesPerMillion:           number("total_cases_per_million"),
		NewCasesPerMillion:             number("new_cases_per_million"),
		TotalDeathsPerMillion:          number("total_deaths_per_million"),
		NewDeathsPerMillion:            number("new_deaths_per_million"),
		ICUPatients:                    number("icu_patients"),
		ICUPatientsPerMillion:          number("icu_patients_per_million"),
		HospPatients:                   number("hosp_patients"),
		HospPatientsPerMillion:         number("hosp_patients_per_million"),
		WeeklyICUAdmissions:            number("weekly_icu_admissions"),
		WeeklyICUAdmissionsPerMillion:  number("weekly_icu_admissions_per_million"),
		WeeklyHospAdmissions:           number("weekly_hosp_admissions"),
		WeeklyHospAdmissionsPerMillion: number("weekly_hosp_admissions_per_million"),
		TotalVaccinations:              number("total_vaccinations"),
		PeopleVaccinated:               number("people_vaccinated"),
		PeopleFullyVaccinated:          number("people_fully_vaccinated"),
		NewVaccinations:                number("new_vaccinations"),
		Population:                     number("population"),
	}
}
