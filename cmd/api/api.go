package api

import (
	"context"
	"net/http"
	"os"

	"github.com/covidboard/api/cmd/api/handlers"
	covidHandlers "github.com/covidboard/api/covid/handlers"
	"github.com/covidboard/api/framework/connection"
	"github.com/covidboard/api/framework/mid"
	"github.com/covidboard/api/framework/web"
	"github.com/covidboard/api/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns
// http.Handler interface. The dataset is loaded before the handler is
// returned so the routes never serve from an empty table.
func (a *API) Build(ctx context.Context) (http.Handler, error) {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, mid.Logger(), mid.Errors(), mid.Panics())

	covid := covidHandlers.NewCovid(loggerProvider, a.conn)

	if err := covid.WarmUp(ctx); err != nil {
		return nil, err
	}

	app.Get("/health", handlers.Ping)

	// SCHEDULED OR CLOUD TASKS
	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Post("/covid/refresh", covid.RefreshDataset)
	}

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		covidGroup := apiGroup.NewSubgroup("/covid")
		{
			covidGroup.Get("/countries", covid.Countries)
			covidGroup.Get("/date-range", covid.DateRange)
			covidGroup.Get("/indicators", covid.Indicators)
			covidGroup.Get("/summary", covid.Summary)
			covidGroup.Post("/filter", covid.Filter)
			covidGroup.Post("/series", covid.Series)
			covidGroup.Post("/export", covid.ExportCSV)
		}
	}

	return app, nil
}
