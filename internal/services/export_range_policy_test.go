package services

import (
	"errors"
	"testing"
)

func TestParseExportRange(t *testing.T) {
	t.Run("empty range", func(t *testing.T) {
		from, to, err := ParseExportRange("", "")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from != nil || to != nil {
			t.Fatalf("expected nil from/to, got from=%v to=%v", from, to)
		}
	})

	t.Run("valid from and to", func(t *testing.T) {
		from, to, err := ParseExportRange("2025/10/1", "2025-10-20")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from == nil || to == nil {
			t.Fatal("expected non-nil range bounds")
		}
		if *from != "2025-10-01" || *to != "2025-10-20" {
			t.Fatalf("unexpected range: from=%s to=%s", *from, *to)
		}
	})

	t.Run("same day", func(t *testing.T) {
		if _, _, err := ParseExportRange("2025-10-20", "2025/10/20"); err != nil {
			t.Fatalf("expected single-day range to be valid, got %v", err)
		}
	})

	t.Run("invalid from", func(t *testing.T) {
		_, _, err := ParseExportRange("not-a-date", "2025-10-20")
		var dateErr *InvalidDateError
		if !errors.As(err, &dateErr) || dateErr.Input != "not-a-date" {
			t.Fatalf("expected InvalidDateError for from, got %v", err)
		}
	})

	t.Run("invalid to", func(t *testing.T) {
		_, _, err := ParseExportRange("2025-10-20", "later")
		var dateErr *InvalidDateError
		if !errors.As(err, &dateErr) || dateErr.Input != "later" {
			t.Fatalf("expected InvalidDateError for to, got %v", err)
		}
	})

	t.Run("invalid range order", func(t *testing.T) {
		_, _, err := ParseExportRange("2025-10-20", "2025/10/10")
		if !errors.Is(err, ErrExportRangeInvalid) {
			t.Fatalf("expected ErrExportRangeInvalid, got %v", err)
		}
	})
}
