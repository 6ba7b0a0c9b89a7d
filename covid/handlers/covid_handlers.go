package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/covidboard/api/covid/service"
	"github.com/covidboard/api/covid/service/iface"
	"github.com/covidboard/api/framework/connection"
	"github.com/covidboard/api/framework/web"
	"github.com/covidboard/api/logger"
)

type Covid struct {
	loggerProvider logger.Provider
	service        iface.CovidIface
}

func NewCovid(log logger.Provider, conn *connection.Connection) *Covid {
	s := service.NewCovidService(log, conn)

	return &Covid{
		log,
		s,
	}
}

// WarmUp loads the dataset before the server starts accepting traffic.
func (h *Covid) WarmUp(ctx context.Context) error {
	return h.service.LoadDataset(ctx)
}

func (h *Covid) RefreshDataset(ctx *gin.Context) error {
	if err := h.service.LoadDataset(ctx); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Covid) Countries(ctx *gin.Context) error {
	countries, err := h.service.Countries(ctx)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, countries, http.StatusOK)
}

func (h *Covid) DateRange(ctx *gin.Context) error {
	dateRange, err := h.service.DateRange(ctx)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, dateRange, http.StatusOK)
}

func (h *Covid) Indicators(ctx *gin.Context) error {
	return web.Respond(ctx, h.service.Indicators(ctx), http.StatusOK)
}

func (h *Covid) Filter(ctx *gin.Context) error {
	req, err := bindFilterRequest(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	records, err := h.service.Filter(ctx, req)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, records, http.StatusOK)
}

func (h *Covid) Series(ctx *gin.Context) error {
	var req service.IndicatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	series, err := h.service.Series(ctx, req)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, series, http.StatusOK)
}

func (h *Covid) Summary(ctx *gin.Context) error {
	req := service.IndicatorRequest{
		FilterRequest: service.FilterRequest{
			DateFrom:  ctx.Query("date_from"),
			DateTo:    ctx.Query("date_to"),
			Countries: ctx.QueryArray("countries"),
		},
		Indicator: ctx.Query("indicator"),
	}

	summaries, err := h.service.Summary(ctx, req)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, summaries, http.StatusOK)
}

func (h *Covid) ExportCSV(ctx *gin.Context) error {
	req, err := bindFilterRequest(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	data, err := h.service.ExportCSV(ctx, req)
	if err != nil {
		return translateServiceError(err)
	}

	return web.RespondDownloadFile(ctx, data, "owid-covid-data.csv")
}

// bindFilterRequest decodes the request body, treating an empty body as an
// empty selection (all rows).
func bindFilterRequest(ctx *gin.Context) (service.FilterRequest, error) {
	var req service.FilterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return service.FilterRequest{}, err
	}

	return req, nil
}
