package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/timeline"
	"gorm.io/gorm"
)

var (
	// ErrMemoryNotFound 在指定回忆不存在时返回
	ErrMemoryNotFound = errors.New("memory not found")
	// ErrMissingMemoryTitle 当标题为空时返回
	ErrMissingMemoryTitle = errors.New("memory title is required")
	// ErrMissingCoupleID 当未关联情侣记录时返回
	ErrMissingCoupleID = errors.New("couple id is required")
)

// MemoryService 负责回忆数据的查询、创建与删除
// 回忆只增不改，展示按日期倒序
type MemoryService struct {
	db *gorm.DB
}

// MemoryInput 定义创建回忆时的可配置字段
type MemoryInput struct {
	CoupleID string
	Title    string
	Content  string
	Date     string
	Mood     string
	PhotoURI string
}

// NewMemoryService 构造 MemoryService
func NewMemoryService(gdb *gorm.DB) *MemoryService {
	return &MemoryService{db: gdb}
}

// List 返回某对情侣的全部回忆，按日期倒序
func (s *MemoryService) List(coupleID string) ([]db.Memory, error) {
	var memories []db.Memory
	if err := s.db.
		Where("couple_id = ?", coupleID).
		Order("date DESC, created_at DESC").
		Find(&memories).Error; err != nil {
		return nil, fmt.Errorf("list memories: %w", err)
	}
	return memories, nil
}

// Create 新建回忆；日期必须是合法的 YYYY-MM-DD
func (s *MemoryService) Create(input MemoryInput) (*db.Memory, error) {
	coupleID := strings.TrimSpace(input.CoupleID)
	if coupleID == "" {
		return nil, ErrMissingCoupleID
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrMissingMemoryTitle
	}

	date := strings.TrimSpace(input.Date)
	if _, err := timeline.ParseDate(date); err != nil {
		return nil, err
	}

	memory := db.Memory{
		CoupleID: coupleID,
		Title:    title,
		Content:  strings.TrimSpace(input.Content),
		Date:     date,
		Mood:     strings.TrimSpace(input.Mood),
		PhotoURI: strings.TrimSpace(input.PhotoURI),
	}

	if err := s.db.Create(&memory).Error; err != nil {
		return nil, fmt.Errorf("create memory: %w", err)
	}
	return &memory, nil
}

// Delete 删除回忆
func (s *MemoryService) Delete(id string) error {
	result := s.db.Delete(&db.Memory{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete memory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemoryNotFound
	}
	return nil
}
