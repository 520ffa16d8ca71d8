package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/service"
	"github.com/lovedays/internal/timeline"
)

type importantDatePayload struct {
	CoupleID string `json:"coupleId"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Type     string `json:"type"`
}

// ListImportantDates 返回某对情侣的纪念日列表
func (a *API) ListImportantDates(c *gin.Context) {
	dates, err := a.dates.List(c.Param("coupleId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, dates)
}

// CreateImportantDate 新建纪念日
func (a *API) CreateImportantDate(c *gin.Context) {
	var payload importantDatePayload
	if !bindJSON(c, &payload, "invalid important date payload") {
		return
	}

	record, err := a.dates.Create(service.ImportantDateInput{
		CoupleID: payload.CoupleID,
		Title:    payload.Title,
		Date:     payload.Date,
		Type:     payload.Type,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// DeleteImportantDate 删除纪念日
func (a *API) DeleteImportantDate(c *gin.Context) {
	if err := a.dates.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListImportantDateCountdowns 返回每个纪念日距下次发生的天数
func (a *API) ListImportantDateCountdowns(c *gin.Context) {
	dates, err := a.dates.List(c.Param("coupleId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	now := a.now()
	items := make([]gin.H, 0, len(dates))
	for _, record := range dates {
		stored, err := timeline.ParseDate(record.Date)
		if err != nil {
			// Rows are validated on create; an unparseable date can only
			// come from manual edits. Skip rather than poison the list.
			continue
		}

		countdown := timeline.CountdownTo(stored, now)
		items = append(items, gin.H{
			"id":        record.ID,
			"coupleId":  record.CoupleID,
			"title":     record.Title,
			"date":      record.Date,
			"type":      record.Type,
			"nextDate":  countdown.NextDate,
			"daysUntil": countdown.DaysUntil,
			"status":    countdown.Status,
		})
	}

	c.JSON(http.StatusOK, items)
}
