package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/catalog"
	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/service"
	"github.com/lovedays/internal/timeline"
)

// loadConfiguredCouple 获取情侣记录并解析起始日期
// 记录缺失或起始日期损坏都视为未完成设置
func (a *API) loadConfiguredCouple(c *gin.Context) (*db.Couple, time.Time, bool) {
	couple, err := a.couples.GetFirst()
	if err != nil {
		if errors.Is(err, service.ErrCoupleNotFound) {
			respondError(c, http.StatusNotFound, "couple not configured")
		} else {
			respondError(c, http.StatusInternalServerError, "Server error")
		}
		return nil, time.Time{}, false
	}

	start, err := timeline.ParseDate(couple.StartDate)
	if err != nil {
		respondError(c, http.StatusNotFound, "couple not configured")
		return nil, time.Time{}, false
	}

	return couple, start, true
}

// GetStats 返回首页所需的全部派生状态：
// 原始时间差、展示用分解、里程碑进度与每日一句
func (a *API) GetStats(c *gin.Context) {
	couple, start, ok := a.loadConfiguredCouple(c)
	if !ok {
		return
	}

	now := a.now()
	elapsed := timeline.ElapsedSince(start, now)

	c.JSON(http.StatusOK, gin.H{
		"couple":      couple,
		"elapsed":     elapsed,
		"breakdown":   timeline.FormatBreakdown(elapsed),
		"milestones":  timeline.TrackMilestones(elapsed.Days, catalog.Milestones()),
		"quote":       timeline.QuoteOfDay(now, catalog.Quotes()),
		"generatedAt": now.Format(time.RFC3339),
	})
}

// GetMilestones 返回完整里程碑目录并标注达成状态
func (a *API) GetMilestones(c *gin.Context) {
	_, start, ok := a.loadConfiguredCouple(c)
	if !ok {
		return
	}

	elapsed := timeline.ElapsedSince(start, a.now())
	progress := timeline.TrackMilestones(elapsed.Days, catalog.Milestones())

	items := make([]gin.H, 0, len(catalog.Milestones()))
	for _, m := range catalog.Milestones() {
		items = append(items, gin.H{
			"days":          m.Days,
			"label":         m.Label,
			"description":   m.Description,
			"icon":          m.Icon,
			"reached":       m.Days <= elapsed.Days,
			"isToday":       m.Days == elapsed.Days,
			"daysRemaining": m.Days - elapsed.Days,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"daysElapsed":     elapsed.Days,
		"milestones":      items,
		"reachedCount":    progress.ReachedCount,
		"totalCount":      progress.TotalCount,
		"progressPercent": progress.ProgressPercent,
	})
}

// GetQuote 返回每日一句
func (a *API) GetQuote(c *gin.Context) {
	now := a.now()
	c.JSON(http.StatusOK, gin.H{
		"quote": timeline.QuoteOfDay(now, catalog.Quotes()),
		"date":  now.Format(timeline.DateLayout),
	})
}
