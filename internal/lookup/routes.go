package lookup

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, lookupService LookupServiceAPI) {
	lookupController := &LookupController{Service: lookupService}

	lookupGroup := r.Group("/api/lookup")
	{
		lookupGroup.GET("/countries", lookupController.GetCountries)
		lookupGroup.GET("/vocabularies", lookupController.GetVocabularies)
	}
}
