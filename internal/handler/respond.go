package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardbank/transaction-service/internal/apperr"
	"github.com/cardbank/transaction-service/internal/middleware"
)

// respondWithServiceError maps the service error taxonomy to HTTP statuses:
// invalid request -> 400, resource not found -> 404, anything else (storage
// faults) -> 500 with the fallback message so internals never leak.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case apperr.IsInvalid(err):
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		middleware.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
