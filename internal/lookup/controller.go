package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LookupController struct {
	Service LookupServiceAPI
}

func (lc *LookupController) GetCountries(c *gin.Context) {
	countries, err := lc.Service.GetCountries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Countries fetched successfully",
		"countries": countries,
	})
}

func (lc *LookupController) GetVocabularies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":      "Vocabularies fetched successfully",
		"vocabularies": lc.Service.GetVocabularies(),
	})
}
