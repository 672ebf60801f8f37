package selection

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, counties CountyLookup) {
	selectionController := &SelectionController{Counties: counties}

	group := r.Group("/api/selection")
	{
		group.GET("", selectionController.Current)
		group.PUT("", selectionController.Select)
		group.DELETE("", selectionController.Clear)
	}
}
