package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/covidboard/api/framework/web"
)

func Ping(ctx *gin.Context) error {
	_ = web.Respond(ctx, nil, http.StatusOK)
	return nil
}
