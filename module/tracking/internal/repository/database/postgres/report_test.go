package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

func TestAppend_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO location_reports`).
		WithArgs("1", "2024-05-06", 12.34, 56.78, int64(1715003456789), "1715003456789_bus.jpg").
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewReportStore(db)
	err = store.Append(context.Background(), "1", domain.CalendarDate("2024-05-06"), &domain.Report{
		Coordinate: domain.Coordinate{Lat: 12.34, Lon: 56.78},
		CapturedAt: 1715003456789,
		ImageRef:   "1715003456789_bus.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAppend_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO location_reports`).
		WillReturnError(sqlmock.ErrCancelled)

	store := NewReportStore(db)
	err = store.Append(context.Background(), "1", domain.CalendarDate("2024-05-06"), &domain.Report{
		Coordinate: domain.Coordinate{Lat: 12.34, Lon: 56.78},
		CapturedAt: 1715003456789,
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestReadSegment_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"latitude", "longitude", "captured_at", "image_ref"}).
		AddRow(12.34, 56.78, int64(1715000000000), "1715000000000_a.jpg").
		AddRow(12.35, 56.79, int64(1715000060000), "1715000060000_b.jpg")

	mock.ExpectQuery(`SELECT latitude, longitude, captured_at, image_ref FROM location_reports WHERE bus_id = (.+) AND report_date = (.+) ORDER BY captured_at ASC`).
		WithArgs("1", "2024-05-06").
		WillReturnRows(rows)

	store := NewReportStore(db)
	reports, err := store.ReadSegment(context.Background(), "1", domain.CalendarDate("2024-05-06"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].Coordinate.Lat != 12.34 {
		t.Errorf("expected 12.34, got %f", reports[0].Coordinate.Lat)
	}
	if reports[1].CapturedAt != 1715000060000 {
		t.Errorf("expected 1715000060000, got %d", reports[1].CapturedAt)
	}
}

// A day that was never written yields an empty result, not an error.
func TestReadSegment_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT latitude, longitude, captured_at, image_ref FROM location_reports`).
		WithArgs("2", "2020-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"latitude", "longitude", "captured_at", "image_ref"}))

	store := NewReportStore(db)
	reports, err := store.ReadSegment(context.Background(), "2", domain.CalendarDate("2020-01-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected empty segment, got %d reports", len(reports))
	}
}

func TestReadSegment_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT latitude, longitude, captured_at, image_ref FROM location_reports`).
		WillReturnError(sqlmock.ErrCancelled)

	store := NewReportStore(db)
	_, err = store.ReadSegment(context.Background(), "1", domain.CalendarDate("2024-05-06"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCountSegment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM location_reports`).
		WithArgs("3", "2024-05-05").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	store := NewReportStore(db)
	count, err := store.CountSegment(context.Background(), "3", domain.CalendarDate("2024-05-05"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
}
