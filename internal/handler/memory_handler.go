package handler

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/service"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type memoryPayload struct {
	CoupleID string `json:"coupleId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	PhotoURI string `json:"photoUri"`
}

// renderMemoryContent 将回忆正文的 Markdown 渲染为净化后的 HTML
func renderMemoryContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

func memoryToJSON(m db.Memory) gin.H {
	return gin.H{
		"id":          m.ID,
		"coupleId":    m.CoupleID,
		"title":       m.Title,
		"content":     m.Content,
		"contentHtml": renderMemoryContent(m.Content),
		"date":        m.Date,
		"mood":        m.Mood,
		"photoUri":    m.PhotoURI,
		"createdAt":   m.CreatedAt,
	}
}

// ListMemories 返回某对情侣的回忆列表，按日期倒序
func (a *API) ListMemories(c *gin.Context) {
	memories, err := a.memories.List(c.Param("coupleId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	items := make([]gin.H, 0, len(memories))
	for _, memory := range memories {
		items = append(items, memoryToJSON(memory))
	}

	c.JSON(http.StatusOK, items)
}

// CreateMemory 新建回忆
func (a *API) CreateMemory(c *gin.Context) {
	var payload memoryPayload
	if !bindJSON(c, &payload, "invalid memory payload") {
		return
	}

	memory, err := a.memories.Create(service.MemoryInput{
		CoupleID: payload.CoupleID,
		Title:    payload.Title,
		Content:  payload.Content,
		Date:     payload.Date,
		Mood:     payload.Mood,
		PhotoURI: payload.PhotoURI,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, memoryToJSON(*memory))
}

// DeleteMemory 删除回忆
func (a *API) DeleteMemory(c *gin.Context) {
	if err := a.memories.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
