package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns handler panics into a JSON 500. A store accessed outside of
// ProvideStores is reported with its own error code.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		if errors.Is(err, stores.ErrNotProvided) {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Handler used a store without a provider")
			utils.RespondWithError(c, utils.NewAPIError(
				http.StatusInternalServerError,
				utils.ErrCodeStoreNotProvided,
				"Store is not available for this route",
				err.Error(),
			))
			return
		}

		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		utils.RespondWithError(c, utils.NewAPIError(
			http.StatusInternalServerError,
			utils.ErrCodeInternalServerError,
			"Internal server error",
			"",
		))
	})
}
