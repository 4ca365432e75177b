package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/exhibitions/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d-%d?mode=memory&cache=shared", time.Now().UnixNano(), testDBSeq.Add(1))
	gdb, err := db.Open(db.Options{Path: dsn, Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

// fixedClock pins "today" to day, at noon local time.
func fixedClock(day string) func() time.Time {
	d := db.MustDate(day).Time()
	return func() time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	}
}

func exhibitionInput(title, start, end, category, organizer, location string) ExhibitionInput {
	return ExhibitionInput{
		Title:       title,
		Description: "Опис виставки " + title,
		Location:    location,
		StartDate:   db.MustDate(start),
		EndDate:     db.MustDate(end),
		Category:    category,
		Organizer:   organizer,
	}
}

func mustCreateExhibition(t *testing.T, svc *ExhibitionService, input ExhibitionInput) *db.Exhibition {
	t.Helper()
	item, err := svc.Create(t.Context(), input)
	if err != nil {
		t.Fatalf("failed to create exhibition %q: %v", input.Title, err)
	}
	return item
}

func strPtr(s string) *string {
	return &s
}

// seedCatalogue creates five exhibitions around 2024-06-15: one past, three
// active and one upcoming.
func seedCatalogue(t *testing.T, svc *ExhibitionService) map[string]*db.Exhibition {
	t.Helper()
	return map[string]*db.Exhibition{
		"past":      mustCreateExhibition(t, svc, exhibitionInput("Весна", "2024-01-01", "2024-02-01", "Живопис", "Львівська галерея", "Львів")),
		"active":    mustCreateExhibition(t, svc, exhibitionInput("Форми", "2024-06-01", "2024-06-30", "Скульптура", "Київський музей", "Київ")),
		"upcoming":  mustCreateExhibition(t, svc, exhibitionInput("Осінь", "2024-09-01", "2024-10-01", "Живопис", "Київський центр", "Київ")),
		"endsNow":   mustCreateExhibition(t, svc, exhibitionInput("Світло", "2024-06-10", "2024-06-15", "Фотографія", "Київський музей", "Одеса")),
		"startsNow": mustCreateExhibition(t, svc, exhibitionInput("Простір", "2024-06-15", "2024-07-01", "Інсталяція", "Львівська галерея", "Львів")),
	}
}
