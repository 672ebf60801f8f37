package upload

import (
	"context"
	"errors"
	"io"
	"net/http"

	"county-portal-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (*Result, error)
}

type UploadController struct {
	Service    Uploader
	LogService logs.AuditLogger
}

func (uc *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	res, err := uc.Service.Upload(c.Request.Context(), fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoBucket):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed. Please try again."})
		}
		return
	}

	logs.Audit(uc.LogService, c, logs.SystemLog{
		Service: "upload",
		Action:  "UPLOAD",
		Message: "Uploaded " + res.Name,
	}, res)
	c.JSON(http.StatusCreated, res)
}
