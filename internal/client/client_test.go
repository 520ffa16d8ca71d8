package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/handler"
	"github.com/lovedays/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func startTestServer(t *testing.T, now time.Time) *Client {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Couple{}, &db.Memory{}, &db.ImportantDate{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	api := handler.NewAPI(gdb, t.TempDir(), "/uploads").WithClock(func() time.Time { return now })
	srv := httptest.NewServer(router.SetupRouterWithAPI(api, t.TempDir(), "/uploads"))
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return New(srv.URL)
}

func TestCoupleNotConfigured(t *testing.T) {
	c := startTestServer(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if _, err := c.Couple(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := c.Stats(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured from stats, got %v", err)
	}
}

func TestCoupleSetupAndStats(t *testing.T) {
	c := startTestServer(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	couple, err := c.CreateCouple(ctx, CoupleInput{
		Partner1Name: "An",
		Partner2Name: "Bình",
		StartDate:    "2024-06-08",
	})
	if err != nil {
		t.Fatalf("failed to create couple: %v", err)
	}
	if couple.ID == "" {
		t.Fatal("expected server-generated couple id")
	}

	got, err := c.Couple(ctx)
	if err != nil {
		t.Fatalf("failed to fetch couple: %v", err)
	}
	if got.ID != couple.ID {
		t.Fatalf("expected couple %s, got %s", couple.ID, got.ID)
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		t.Fatalf("failed to fetch stats: %v", err)
	}
	if stats.Elapsed.Days != 7 {
		t.Fatalf("expected 7 elapsed days, got %d", stats.Elapsed.Days)
	}
	if stats.Milestones.Next == nil || stats.Milestones.Next.Days != 14 {
		t.Fatalf("expected next milestone at 14 days, got %+v", stats.Milestones.Next)
	}
	if stats.Quote == "" {
		t.Fatal("expected a quote of the day")
	}
}

func TestCreateCoupleInvalidDate(t *testing.T) {
	c := startTestServer(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	_, err := c.CreateCouple(context.Background(), CoupleInput{
		Partner1Name: "An",
		Partner2Name: "Bình",
		StartDate:    "08/06/2024",
	})
	if err == nil {
		t.Fatal("expected an error for an invalid start date")
	}
}

func TestMemoriesRoundTrip(t *testing.T) {
	c := startTestServer(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	couple, err := c.CreateCouple(ctx, CoupleInput{
		Partner1Name: "An",
		Partner2Name: "Bình",
		StartDate:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("failed to create couple: %v", err)
	}

	memory, err := c.CreateMemory(ctx, MemoryInput{
		CoupleID: couple.ID,
		Title:    "Buổi hẹn đầu tiên",
		Content:  "Một ngày **tuyệt vời**",
		Date:     "2024-02-14",
		Mood:     "happy",
	})
	if err != nil {
		t.Fatalf("failed to create memory: %v", err)
	}
	if memory.ContentHTML == "" {
		t.Fatal("expected rendered content html")
	}

	memories, err := c.Memories(ctx, couple.ID)
	if err != nil {
		t.Fatalf("failed to list memories: %v", err)
	}
	if len(memories) != 1 || memories[0].ID != memory.ID {
		t.Fatalf("expected the created memory back, got %+v", memories)
	}

	if err := c.DeleteMemory(ctx, memory.ID); err != nil {
		t.Fatalf("failed to delete memory: %v", err)
	}
	if err := c.DeleteMemory(ctx, memory.ID); err == nil {
		t.Fatal("expected an error deleting a missing memory")
	}
}

func TestCountdowns(t *testing.T) {
	c := startTestServer(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	couple, err := c.CreateCouple(ctx, CoupleInput{
		Partner1Name: "An",
		Partner2Name: "Bình",
		StartDate:    "2024-01-01",
	})
	if err != nil {
		t.Fatalf("failed to create couple: %v", err)
	}

	if _, err := c.CreateImportantDate(ctx, ImportantDateInput{
		CoupleID: couple.ID,
		Title:    "Sinh nhật",
		Date:     "2000-06-16",
		Type:     "birthday",
	}); err != nil {
		t.Fatalf("failed to create important date: %v", err)
	}

	countdowns, err := c.Countdowns(ctx, couple.ID)
	if err != nil {
		t.Fatalf("failed to fetch countdowns: %v", err)
	}
	if len(countdowns) != 1 {
		t.Fatalf("expected one countdown, got %d", len(countdowns))
	}
	if countdowns[0].DaysUntil != 1 || countdowns[0].Status != "upcoming" {
		t.Fatalf("expected tomorrow's countdown, got %+v", countdowns[0])
	}
}

func TestQuote(t *testing.T) {
	c := startTestServer(t, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	quote, err := c.Quote(context.Background())
	if err != nil {
		t.Fatalf("failed to fetch quote: %v", err)
	}
	if quote == "" {
		t.Fatal("expected a non-empty quote")
	}
}
