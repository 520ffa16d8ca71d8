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
	// ErrImportantDateNotFound 在指定纪念日不存在时返回
	ErrImportantDateNotFound = errors.New("important date not found")
	// ErrMissingDateTitle 当标题为空时返回
	ErrMissingDateTitle = errors.New("important date title is required")
	// ErrInvalidDateType 当类型不在固定集合内时返回
	ErrInvalidDateType = errors.New("invalid important date type")
)

var validDateTypes = map[string]bool{
	db.DateTypeBirthday:    true,
	db.DateTypeAnniversary: true,
	db.DateTypeSpecial:     true,
	db.DateTypeOther:       true,
}

// ImportantDateService 负责纪念日数据的查询、创建与删除
// 纪念日按年循环，存储年份仅记录首次录入时间
type ImportantDateService struct {
	db *gorm.DB
}

// ImportantDateInput 定义创建纪念日时的可配置字段
type ImportantDateInput struct {
	CoupleID string
	Title    string
	Date     string
	Type     string
}

// NewImportantDateService 构造 ImportantDateService
func NewImportantDateService(gdb *gorm.DB) *ImportantDateService {
	return &ImportantDateService{db: gdb}
}

// List 返回某对情侣的全部纪念日，按日期倒序
func (s *ImportantDateService) List(coupleID string) ([]db.ImportantDate, error) {
	var dates []db.ImportantDate
	if err := s.db.
		Where("couple_id = ?", coupleID).
		Order("date DESC").
		Find(&dates).Error; err != nil {
		return nil, fmt.Errorf("list important dates: %w", err)
	}
	return dates, nil
}

// Create 新建纪念日；类型必须是 birthday/anniversary/special/other 之一
func (s *ImportantDateService) Create(input ImportantDateInput) (*db.ImportantDate, error) {
	coupleID := strings.TrimSpace(input.CoupleID)
	if coupleID == "" {
		return nil, ErrMissingCoupleID
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrMissingDateTitle
	}

	date := strings.TrimSpace(input.Date)
	if _, err := timeline.ParseDate(date); err != nil {
		return nil, err
	}

	dateType := strings.TrimSpace(input.Type)
	if !validDateTypes[dateType] {
		return nil, ErrInvalidDateType
	}

	record := db.ImportantDate{
		CoupleID: coupleID,
		Title:    title,
		Date:     date,
		Type:     dateType,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create important date: %w", err)
	}
	return &record, nil
}

// Delete 删除纪念日
func (s *ImportantDateService) Delete(id string) error {
	result := s.db.Delete(&db.ImportantDate{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete important date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrImportantDateNotFound
	}
	return nil
}
