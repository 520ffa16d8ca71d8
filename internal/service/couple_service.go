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
	// ErrCoupleNotFound 在尚未完成初始设置、数据库中没有情侣记录时返回
	ErrCoupleNotFound = errors.New("couple not found")
	// ErrCoupleExists 在已存在情侣记录时再次创建返回；本部署只跟踪一对情侣
	ErrCoupleExists = errors.New("couple already exists")
	// ErrMissingPartnerName 当任一昵称为空时返回
	ErrMissingPartnerName = errors.New("both partner names are required")
)

// CoupleService 负责唯一一条情侣记录的读取、创建与编辑
type CoupleService struct {
	db *gorm.DB
}

// CoupleInput 定义创建/编辑情侣记录时的可配置字段
// Update 时空字段表示保持原值
type CoupleInput struct {
	Partner1Name string
	Partner2Name string
	StartDate    string
}

// NewCoupleService 构造 CoupleService
func NewCoupleService(gdb *gorm.DB) *CoupleService {
	return &CoupleService{db: gdb}
}

// GetFirst 返回当前部署的情侣记录；不存在时返回 ErrCoupleNotFound
func (s *CoupleService) GetFirst() (*db.Couple, error) {
	var couple db.Couple
	if err := s.db.Order("created_at ASC").First(&couple).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, fmt.Errorf("get couple: %w", err)
	}
	return &couple, nil
}

// Get 根据 ID 获取情侣记录
func (s *CoupleService) Get(id string) (*db.Couple, error) {
	var couple db.Couple
	if err := s.db.First(&couple, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, fmt.Errorf("get couple: %w", err)
	}
	return &couple, nil
}

// Create 建立情侣记录；起始日期必须是合法的 YYYY-MM-DD
func (s *CoupleService) Create(input CoupleInput) (*db.Couple, error) {
	partner1 := strings.TrimSpace(input.Partner1Name)
	partner2 := strings.TrimSpace(input.Partner2Name)
	if partner1 == "" || partner2 == "" {
		return nil, ErrMissingPartnerName
	}

	startDate := strings.TrimSpace(input.StartDate)
	if _, err := timeline.ParseDate(startDate); err != nil {
		return nil, err
	}

	if _, err := s.GetFirst(); err == nil {
		return nil, ErrCoupleExists
	} else if !errors.Is(err, ErrCoupleNotFound) {
		return nil, err
	}

	couple := db.Couple{
		Partner1Name: partner1,
		Partner2Name: partner2,
		StartDate:    startDate,
	}

	if err := s.db.Create(&couple).Error; err != nil {
		return nil, fmt.Errorf("create couple: %w", err)
	}
	return &couple, nil
}

// Update 编辑情侣记录，空字段保持原值
func (s *CoupleService) Update(id string, input CoupleInput) (*db.Couple, error) {
	couple, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Partner1Name); name != "" {
		couple.Partner1Name = name
	}
	if name := strings.TrimSpace(input.Partner2Name); name != "" {
		couple.Partner2Name = name
	}
	if startDate := strings.TrimSpace(input.StartDate); startDate != "" {
		if _, err := timeline.ParseDate(startDate); err != nil {
			return nil, err
		}
		couple.StartDate = startDate
	}

	if err := s.db.Save(couple).Error; err != nil {
		return nil, fmt.Errorf("update couple: %w", err)
	}
	return couple, nil
}
