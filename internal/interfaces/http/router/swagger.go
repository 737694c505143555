package router

import (
	"net/netip"

	"github.com/gin-gonic/gin"
	_ "github.com/realestate/backend/docs"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SwaggerPath is where the API documentation UI is served
const SwaggerPath = "/swagger/*any"

// RegisterSwagger serves the generated API documentation to the clients
// in allowed, or to everyone when allowed is empty
func RegisterSwagger(engine *gin.Engine, allowed []netip.Prefix) {
	engine.GET(SwaggerPath,
		middleware.IPAllowList(allowed),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)
}
