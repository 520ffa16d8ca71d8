package main

import (
	"fmt"
	"log"

	"github.com/lovedays/internal/config"
	"github.com/lovedays/internal/db"
)

// 演示数据生成器
func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	couple := seedCouple()
	memoryCount := seedMemories(couple)
	dateCount := seedImportantDates(couple)

	fmt.Println("演示数据生成完成！")
	fmt.Printf("情侣: %s ❤ %s (开始于 %s)\n", couple.Partner1Name, couple.Partner2Name, couple.StartDate)
	fmt.Printf("回忆: %d 条\n", memoryCount)
	fmt.Printf("纪念日: %d 条\n", dateCount)
}

// 创建演示情侣，已存在则复用
func seedCouple() *db.Couple {
	var existing db.Couple
	if err := db.DB.Order("created_at ASC").First(&existing).Error; err == nil {
		fmt.Println("情侣已存在，跳过创建")
		return &existing
	}

	couple := db.Couple{
		Partner1Name: "Minh",
		Partner2Name: "Hương",
		StartDate:    "2023-02-14",
	}
	db.DB.Create(&couple)

	fmt.Println("✅ 演示情侣创建完成")
	return &couple
}

// 创建演示回忆
func seedMemories(couple *db.Couple) int {
	var count int64
	db.DB.Model(&db.Memory{}).Count(&count)
	if count > 0 {
		fmt.Println("回忆已存在，跳过创建")
		return int(count)
	}

	memories := []db.Memory{
		{
			CoupleID: couple.ID,
			Title:    "Buổi hẹn đầu tiên",
			Content:  "Lần đầu đi xem phim cùng nhau, **hồi hộp** không nói nên lời.",
			Date:     "2023-02-14",
			Mood:     "love",
		},
		{
			CoupleID: couple.ID,
			Title:    "Chuyến đi Đà Lạt",
			Content:  "Ba ngày ở Đà Lạt, trời lạnh nhưng tim thì ấm.",
			Date:     "2023-06-10",
			Mood:     "happy",
		},
		{
			CoupleID: couple.ID,
			Title:    "Kỷ niệm 100 ngày",
			Content:  "Ăn tối ở nhà hàng quen, nhắc lại chuyện ngày mới quen nhau.",
			Date:     "2023-05-25",
			Mood:     "nostalgic",
		},
	}
	db.DB.Create(&memories)

	fmt.Println("✅ 演示回忆创建完成")
	return len(memories)
}

// 创建演示纪念日
func seedImportantDates(couple *db.Couple) int {
	var count int64
	db.DB.Model(&db.ImportantDate{}).Count(&count)
	if count > 0 {
		fmt.Println("纪念日已存在，跳过创建")
		return int(count)
	}

	dates := []db.ImportantDate{
		{CoupleID: couple.ID, Title: "Ngày bắt đầu yêu", Date: "2023-02-14", Type: db.DateTypeAnniversary},
		{CoupleID: couple.ID, Title: "Sinh nhật Minh", Date: "1998-09-03", Type: db.DateTypeBirthday},
		{CoupleID: couple.ID, Title: "Sinh nhật Hương", Date: "1999-12-21", Type: db.DateTypeBirthday},
		{CoupleID: couple.ID, Title: "Ngày cầu hôn dự định", Date: "2026-02-14", Type: db.DateTypeSpecial},
	}
	db.DB.Create(&dates)

	fmt.Println("✅ 演示纪念日创建完成")
	return len(dates)
}
