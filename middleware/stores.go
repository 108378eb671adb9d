package middleware

import (
	"salonpro-desk/stores"

	"github.com/gin-gonic/gin"
)

// ProvideStores makes reg reachable from the request context of every
// handler below it, through the stores.Must accessors.
func ProvideStores(reg *stores.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(stores.NewContext(c.Request.Context(), reg))
		c.Next()
	}
}
