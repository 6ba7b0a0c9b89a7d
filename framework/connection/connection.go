package connection

import (
	"context"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"

	"github.com/covidboard/api/logger"
)

const (
	outboundTimeout = 2 * time.Minute

	retryCount       = 3
	retryWaitTime    = 5 * time.Second
	retryMaxWaitTime = 30 * time.Second
)

// Connection holds the process-wide outbound clients shared by the services.
type Connection struct {
	HTTP *resty.Client
}

// NewConnection initializes the outbound clients necessary for api support.
// The dataset the service fetches is large, hence the generous timeout.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	client := resty.New().
		SetTimeout(outboundTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Connection{
		HTTP: client,
	}, nil
}
