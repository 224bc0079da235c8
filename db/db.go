package db

import (
	"database/sql"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dasdy/swipe/model"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db *sql.DB
}

func initSchema(db *sql.DB) error {
	sqlStmt := `
	create table if not exists gestures(
	    outcome text, direction text, dx int, dy int, duration_ms int, ts datetime);`

	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("%q: %w", sqlStmt, err)
	}

	sqlStmt = `create index if not exists gestures_tsix on gestures (ts ASC);`
	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("%q: %w", sqlStmt, err)
	}

	return nil
}

func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if err := initSchema(db); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db}, nil
}

func (s *SQLiteStorage) Store(g *model.Gesture) error {
	_, err := s.db.Exec(`insert into gestures(outcome, direction, dx, dy, duration_ms, ts)
	    values(?, ?, ?, ?, ?, datetime('now', 'subsec'))`,
		g.Outcome.String(), g.Direction.String(), g.DX, g.DY, g.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("storing gesture: %w", err)
	}

	return nil
}

// StoreAt inserts a gesture with an explicit timestamp. Merge needs this to
// keep history rows on their original instants.
func (s *SQLiteStorage) StoreAt(g *model.Gesture, ts time.Time) error {
	_, err := s.db.Exec(`insert into gestures(outcome, direction, dx, dy, duration_ms, ts)
	    values(?, ?, ?, ?, ?, ?)`,
		g.Outcome.String(), g.Direction.String(), g.DX, g.DY, g.Duration.Milliseconds(), ts)
	if err != nil {
		return fmt.Errorf("storing gesture: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Totals() ([]model.OutcomeCount, error) {
	rows, err := s.db.Query(
		`select outcome, direction, count(*) as cnt
        from gestures
        group by outcome, direction
        order by cnt desc`)
	if err != nil {
		return nil, fmt.Errorf("querying totals: %w", err)
	}

	defer rows.Close()

	result := make([]model.OutcomeCount, 0)

	for rows.Next() {
		var (
			outcome, direction string
			count              int
		)

		if err := rows.Scan(&outcome, &direction, &count); err != nil {
			return nil, fmt.Errorf("scanning totals row: %w", err)
		}

		item, err := parseRow(outcome, direction)
		if err != nil {
			return nil, err
		}

		result = append(result, model.OutcomeCount{Outcome: item.Outcome, Direction: item.Direction, Count: count})
	}

	return result, rows.Err()
}

// AllIterator yields every recorded gesture in timestamp order.
func (s *SQLiteStorage) AllIterator() (iter.Seq[model.GestureWithTimestamp], error) {
	rows, err := s.db.Query(
		`select outcome, direction, dx, dy, duration_ms, ts
        from gestures
        order by ts`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}

	return func(yield func(model.GestureWithTimestamp) bool) {
		defer rows.Close()

		for rows.Next() {
			var (
				outcome, direction string
				dx, dy             int32
				durationMs         int64
				ts                 time.Time
			)

			if err := rows.Scan(&outcome, &direction, &dx, &dy, &durationMs, &ts); err != nil {
				slog.Error("Could not scan history row", "error", err)

				return
			}

			g, err := parseRow(outcome, direction)
			if err != nil {
				// A row we cannot classify is old or corrupt, skip it.
				slog.Error("Could not parse history row", "error", err)

				continue
			}

			g.DX = dx
			g.DY = dy
			g.Duration = time.Duration(durationMs) * time.Millisecond

			if !yield(model.GestureWithTimestamp{Gesture: g, Timestamp: ts}) {
				return
			}
		}
	}, nil
}

func parseRow(outcome, direction string) (model.Gesture, error) {
	o, err := model.ParseOutcome(outcome)
	if err != nil {
		return model.Gesture{}, err
	}

	d, err := model.ParseDirection(direction)
	if err != nil {
		return model.Gesture{}, err
	}

	return model.Gesture{Outcome: o, Direction: d}, nil
}

func (s *SQLiteStorage) Close() {
	s.db.Close()
}
