package service

import (
	"errors"
	"testing"

	"github.com/lovedays/internal/db"
)

func TestMemoryServiceCreateAndList(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	couples := NewCoupleService(db.DB)
	couple, err := couples.Create(CoupleInput{Partner1Name: "Minh", Partner2Name: "Linh", StartDate: "2023-06-01"})
	if err != nil {
		t.Fatalf("create couple failed: %v", err)
	}

	svc := NewMemoryService(db.DB)

	first, err := svc.Create(MemoryInput{
		CoupleID: couple.ID,
		Title:    "Lần đầu gặp nhau",
		Content:  "Một buổi chiều mưa ở Đà Lạt",
		Date:     "2023-06-01",
		Mood:     "Hạnh phúc",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected a server-generated id")
	}

	second, err := svc.Create(MemoryInput{
		CoupleID: couple.ID,
		Title:    "Kỷ niệm 100 ngày",
		Date:     "2023-09-09",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	memories, err := svc.List(couple.ID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(memories) != 2 {
		t.Fatalf("expected 2 memories, got %d", len(memories))
	}

	// 展示按日期倒序
	if memories[0].ID != second.ID {
		t.Fatalf("expected newest memory first, got %s", memories[0].Title)
	}
}

func TestMemoryServiceValidation(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewMemoryService(db.DB)

	if _, err := svc.Create(MemoryInput{Title: "x", Date: "2024-01-01"}); !errors.Is(err, ErrMissingCoupleID) {
		t.Fatalf("expected ErrMissingCoupleID, got %v", err)
	}
	if _, err := svc.Create(MemoryInput{CoupleID: "c1", Date: "2024-01-01"}); !errors.Is(err, ErrMissingMemoryTitle) {
		t.Fatalf("expected ErrMissingMemoryTitle, got %v", err)
	}
	if _, err := svc.Create(MemoryInput{CoupleID: "c1", Title: "x", Date: "bad"}); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestMemoryServiceDelete(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewMemoryService(db.DB)
	memory, err := svc.Create(MemoryInput{CoupleID: "c1", Title: "Picnic", Date: "2024-03-08"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(memory.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(memory.ID); !errors.Is(err, ErrMemoryNotFound) {
		t.Fatalf("expected ErrMemoryNotFound, got %v", err)
	}

	memories, err := svc.List("c1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(memories) != 0 {
		t.Fatalf("expected no memories, got %d", len(memories))
	}
}
