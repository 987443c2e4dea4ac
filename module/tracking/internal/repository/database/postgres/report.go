package postgres

import (
	"context"
	"database/sql"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/database"
)

var _ database.ReportStore = (*ReportStore)(nil)

// ReportStore keeps every report in a single table with an explicit two-level
// partition key (bus_id, report_date). Plain INSERTs mean concurrent appends
// to the same segment never overwrite each other.
type ReportStore struct {
	db *sql.DB
}

func NewReportStore(db *sql.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (r *ReportStore) Append(ctx context.Context, busID string, date domain.CalendarDate, report *domain.Report) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO location_reports (bus_id, report_date, latitude, longitude, captured_at, image_ref) VALUES ($1, $2, $3, $4, $5, $6)`,
		busID, date.String(), report.Coordinate.Lat, report.Coordinate.Lon, report.CapturedAt, report.ImageRef,
	)
	return err
}

// ReadSegment returns the full segment ordered by capture time. Rows are
// sorted explicitly rather than relying on insertion order.
func (r *ReportStore) ReadSegment(ctx context.Context, busID string, date domain.CalendarDate) ([]domain.Report, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT latitude, longitude, captured_at, image_ref FROM location_reports WHERE bus_id = $1 AND report_date = $2 ORDER BY captured_at ASC`,
		busID, date.String(),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(&rep.Coordinate.Lat, &rep.Coordinate.Lon, &rep.CapturedAt, &rep.ImageRef); err != nil {
			return nil, err
		}
		results = append(results, rep)
	}
	return results, rows.Err()
}

func (r *ReportStore) CountSegment(ctx context.Context, busID string, date domain.CalendarDate) (int64, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM location_reports WHERE bus_id = $1 AND report_date = $2`,
		busID, date.String(),
	)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
