package domain

import (
	"strconv"
)

// AggregatePrefix marks synthetic aggregate rows (world, continents, income
// groups) injected by the data provider. Rows whose iso_code starts with this
// prefix are not real countries and are dropped while loading.
const AggregatePrefix = "OWID"

// Record is a single (location, date) observation of the OWID COVID-19
// dataset, projected down to the columns the dashboard consumes.
type Record struct {
	ISOCode                        string  `json:"iso_code"`
	Continent                      string  `json:"continent"`
	Location                       string  `json:"location"`
	Date                           string  `json:"date"`
	TotalCases                     float64 `json:"total_cases"`
	NewCases                       float64 `json:"new_cases"`
	TotalDeaths                    float64 `json:"total_deaths"`
	NewDeaths                      float64 `json:"new_deaths"`
	TotalCasesPerMillion           float64 `json:"total_cases_per_million"`
	NewCasesPerMillion             float64 `json:"new_cases_per_million"`
	TotalDeathsPerMillion          float64 `json:"total_deaths_per_million"`
	NewDeathsPerMillion            float64 `json:"new_deaths_per_million"`
	ICUPatients                    float64 `json:"icu_patients"`
	ICUPatientsPerMillion          float64 `json:"icu_patients_per_million"`
	HospPatients                   float64 `json:"hosp_patients"`
	HospPatientsPerMillion         float64 `json:"hosp_patients_per_million"`
	WeeklyICUAdmissions            float64 `json:"weekly_icu_admissions"`
	WeeklyICUAdmissionsPerMillion  float64 `json:"weekly_icu_admissions_per_million"`
	WeeklyHospAdmissions           float64 `json:"weekly_hosp_admissions"`
	WeeklyHospAdmissionsPerMillion float64 `json:"weekly_hosp_admissions_per_million"`
	TotalVaccinations              float64 `json:"total_vaccinations"`
	PeopleVaccinated               float64 `json:"people_vaccinated"`
	PeopleFullyVaccinated          float64 `json:"people_fully_vaccinated"`
	NewVaccinations                float64 `json:"new_vaccinations"`
	Population                     float64 `json:"population"`
}

// Columns is the projected column whitelist, in output order. The source
// dataset carries dozens of additional columns; everything outside this list
// is dropped while loading.
var Columns = []string{
	"iso_code",
	"continent",
	"location",
	"date",
	"total_cases",
	"new_cases",
	"total_deaths",
	"new_deaths",
	"total_cases_per_million",
	"new_cases_per_million",
	"total_deaths_per_million",
	"new_deaths_per_million",
	"icu_patients",
	"icu_patients_per_million",
	"hosp_patients",
	"hosp_patients_per_million",
	"weekly_icu_admissions",
	"weekly_icu_admissions_per_million",
	"weekly_hosp_admissions",
	"weekly_hosp_admissions_per_million",
	"total_vaccinations",
	"people_vaccinated",
	"people_fully_vaccinated",
	"new_vaccinations",
	"population",
}

// Indicators are the numeric columns a user may chart.
var Indicators = Columns[4:]

// indicatorValues maps an indicator column name to its record accessor.
var indicatorValues = map[string]func(Record) float64{
	"total_cases":                        func(r Record) float64 { return r.TotalCases },
	"new_cases":                          func(r Record) float64 { return r.NewCases },
	"total_deaths":                       func(r Record) float64 { return r.TotalDeaths },
	"new_deaths":                         func(r Record) float64 { return r.NewDeaths },
	"total_cases_per_million":            func(r Record) float64 { return r.TotalCasesPerMillion },
	"new_cases_per_million":              func(r Record) float64 { return r.NewCasesPerMillion },
	"total_deaths_per_million":           func(r Record) float64 { return r.TotalDeathsPerMillion },
	"new_deaths_per_million":             func(r Record) float64 { return r.NewDeathsPerMillion },
	"icu_patients":                       func(r Record) float64 { return r.ICUPatients },
	"icu_patients_per_million":           func(r Record) float64 { return r.ICUPatientsPerMillion },
	"hosp_patients":                      func(r Record) float64 { return r.HospPatients },
	"hosp_patients_per_million":          func(r Record) float64 { return r.HospPatientsPerMillion },
	"weekly_icu_admissions":              func(r Record) float64 { return r.WeeklyICUAdmissions },
	"weekly_icu_admissions_per_million":  func(r Record) float64 { return r.WeeklyICUAdmissionsPerMillion },
	"weekly_hosp_admissions":             func(r Record) float64 { return r.WeeklyHospAdmissions },
	"weekly_hosp_admissions_per_million": func(r Record) float64 { return r.WeeklyHospAdmissionsPerMillion },
	"total_vaccinations":                 func(r Record) float64 { return r.TotalVaccinations },
	"people_vaccinated":                  func(r Record) float64 { return r.PeopleVaccinated },
	"people_fully_vaccinated":            func(r Record) float64 { return r.PeopleFullyVaccinated },
	"new_vaccinations":                   func(r Record) float64 { return r.NewVaccinations },
	"population":                         func(r Record) float64 { return r.Population },
}

// ValidIndicator reports whether name is a chartable indicator column.
func ValidIndicator(name string) bool {
	_, ok := indicatorValues[name]
	return ok
}

// IndicatorValue returns the value of the named indicator column.
func (r Record) IndicatorValue(name string) (float64, bool) {
	f, ok := indicatorValues[name]
	if !ok {
		return 0, false
	}

	return f(r), true
}

// IsAggregate reports whether the record is a synthetic aggregate row.
func (r Record) IsAggregate() bool {
	return len(r.ISOCode) >= len(AggregatePrefix) && r.ISOCode[:len(AggregatePrefix)] == AggregatePrefix
}

// Row renders the record as CSV fields following the Columns order.
func (r Record) Row() []string {
	return []string{
		r.ISOCode,
		r.Continent,
		r.Location,
		r.Date,
		formatValue(r.TotalCases),
		formatValue(r.NewCases),
		formatValue(r.TotalDeaths),
		formatValue(r.NewDeaths),
		formatValue(r.TotalCasesPerMillion),
		formatValue(r.NewCasesPerMillion),
		formatValue(r.TotalDeathsPerMillion),
		formatValue(r.NewDeathsPerMillion),
		formatValue(r.ICUPatients),
		formatValue(r.ICUPatientsPerMillion),
		formatValue(r.HospPatients),
		formatValue(r.HospPatientsPerMillion),
		formatValue(r.WeeklyICUAdmissions),
		formatValue(r.WeeklyICUAdmissionsPerMillion),
		formatValue(r.WeeklyHospAdmissions),
		formatValue(r.WeeklyHospAdmissionsPerMillion),
		formatValue(r.TotalVaccinations),
		formatValue(r.PeopleVaccinated),
		formatValue(r.PeopleFullyVaccinated),
		formatValue(r.NewVaccinations),
		formatValue(r.Population),
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Dataset is the cleaned in-memory table the service reads on every
// interaction. It is built once and never mutated afterwards; rows keep the
// source ordering (by location, then date).
type Dataset struct {
	Records []Record
}
