package http_swagger

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AdAndRoll/movie-search-server/docs"
)

type Controller struct {
	handler gin.HandlerFunc
}

func New() *Controller {
	return &Controller{
		handler: ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
			ginSwagger.DefaultModelsExpandDepth(1),
		),
	}
}

// RegisterRoutes mounts the UI under the versioned group only.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	if router.BasePath() == docs.SwaggerInfo.BasePath {
		router.GET("/swagger/*any", c.handler)
	}
}
