package event

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"county-portal-api/internal/access"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"
	"county-portal-api/internal/selection"
	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	Service    EventServiceAPI
	LogService logs.AuditLogger
}

func (ec *EventController) List(c *gin.Context) {
	county, ok := selection.Require(c)
	if !ok {
		return
	}

	events, err := ec.Service.List(c.Request.Context(), ListFilter{
		County:   county,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Events fetched successfully",
		"county":  county,
		"events":  events,
	})
}

func (ec *EventController) Get(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := ec.Service.Detail(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event fetched successfully",
		"event":   detail,
	})
}

func (ec *EventController) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, _ := selection.Resolve(c)
	if req.County == "" && county == "" {
		c.JSON(http.StatusConflict, gin.H{"error": selection.ErrNoCounty})
		return
	}

	ev, err := ec.Service.Create(c.Request.Context(), req, middlewares.CurrentIdentity(c), county)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ec.audit(c, "CREATE", fmt.Sprintf("Created event %q", ev.Title), ev.County)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   ev,
	})
}

func (ec *EventController) Update(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch, cols, err := entity.DecodePatch[Event](body, updatableColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := ec.Service.Update(c.Request.Context(), id, patch, cols, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ec.audit(c, "UPDATE", fmt.Sprintf("Updated event %q", ev.Title), ev.County)
	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   ev,
	})
}

func (ec *EventController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := ec.Service.Delete(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ec.audit(c, "DELETE", fmt.Sprintf("Deleted event %d", id), ev.County)
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (ec *EventController) RSVP(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := ec.Service.ToggleRSVP(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	msg := "RSVP cancelled"
	if res.Attending {
		msg = "RSVP confirmed"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        msg,
		"attending":      res.Attending,
		"attendee_count": res.AttendeeCount,
	})
}

func (ec *EventController) Calendar(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := ec.Service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, icsFilename(ev)))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ICS(ev, time.Now())))
}

func (ec *EventController) audit(c *gin.Context, action, message, county string) {
	logs.Audit(ec.LogService, c, logs.SystemLog{
		Service: "event",
		Action:  action,
		Message: message,
		County:  county,
	}, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicate), errors.Is(err, ErrEventFull):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidField):
		return http.StatusBadRequest
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
