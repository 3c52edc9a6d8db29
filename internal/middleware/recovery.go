package middleware

import (
	"github.com/gin-gonic/gin"

	"pulse-srv/pkg/discord"
	"pulse-srv/pkg/log"
	"pulse-srv/pkg/response"
)

// Recovery answers 500 on panic and reports the stack to Discord when configured.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
