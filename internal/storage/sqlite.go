package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// TimeRange represents the selectable history view horizons.
type TimeRange int

const (
	Range5Min TimeRange = iota
	Range15Min
	Range30Min
	Range1Hour
	Range6Hour
)

func (t TimeRange) String() string {
	switch t {
	case Range5Min:
		return "5min"
	case Range15Min:
		return "15min"
	case Range30Min:
		return "30min"
	case Range1Hour:
		return "1hour"
	case Range6Hour:
		return "6hours"
	default:
		return "unknown"
	}
}

// Duration returns the time span covered by the range.
func (t TimeRange) Duration() time.Duration {
	switch t {
	case Range5Min:
		return 5 * time.Minute
	case Range15Min:
		return 15 * time.Minute
	case Range30Min:
		return 30 * time.Minute
	case Range1Hour:
		return 1 * time.Hour
	case Range6Hour:
		return 6 * time.Hour
	default:
		return 5 * time.Minute
	}
}

// bucketSeconds returns the aggregation bucket for the range, sized so a
// full span fits in roughly one terminal width of columns.
func (t TimeRange) bucketSeconds() int64 {
	switch t {
	case Range5Min:
		return 2
	case Range15Min:
		return 5
	case Range30Min:
		return 10
	case Range1Hour:
		return 30
	case Range6Hour:
		return 120
	default:
		return 2
	}
}

// DataPoint is one aggregated point of the history series.
type DataPoint struct {
	Timestamp time.Time
	RxRate    float64 // bytes/second
	TxRate    float64 // bytes/second
}

// Sample is one per-tick measurement queued for writing.
type Sample struct {
	Device    string
	Timestamp time.Time
	RxRate    float64
	TxRate    float64
	RxTotal   uint64
	TxTotal   uint64
}

// Storage keeps the session's rate history in an in-memory sqlite database,
// feeding the long-horizon history view beyond the in-RAM averaging window.
// Nothing survives a restart; persistence is deliberately out of scope.
type Storage struct {
	db        *sql.DB
	writeChan chan *Sample
	closeChan chan struct{}
}

// NewStorage opens the in-memory database and starts the background writer
// and cleanup goroutines.
func NewStorage() (*Storage, error) {
	s, err := open()
	if err != nil {
		return nil, err
	}

	go s.writer()
	go s.cleanup()

	return s, nil
}

// open builds a Storage without starting the background goroutines.
func open() (*Storage, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{
		db:        db,
		writeChan: make(chan *Sample, 1000),
		closeChan: make(chan struct{}),
	}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS traffic_samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		device TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		rx_rate REAL,
		tx_rate REAL,
		rx_total INTEGER,
		tx_total INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_device_time
	ON traffic_samples(device, timestamp);
	`

	_, err := db.Exec(schema)
	return err
}

// Write queues a sample for the background writer. A full queue drops the
// sample silently; losing a history point is preferable to stalling a tick.
func (s *Storage) Write(sample *Sample) {
	select {
	case s.writeChan <- sample:
	default:
	}
}

// writer batches queued samples into transactions.
func (s *Storage) writer() {
	buffer := make([]*Sample, 0, 100)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case sample := <-s.writeChan:
			buffer = append(buffer, sample)
			if len(buffer) >= 50 {
				s.batchWrite(buffer)
				buffer = buffer[:0]
			}

		case <-ticker.C:
			if len(buffer) > 0 {
				s.batchWrite(buffer)
				buffer = buffer[:0]
			}

		case <-s.closeChan:
			if len(buffer) > 0 {
				s.batchWrite(buffer)
			}
			return
		}
	}
}

func (s *Storage) batchWrite(samples []*Sample) {
	tx, err := s.db.Begin()
	if err != nil {
		return
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO traffic_samples
		(device, timestamp, rx_rate, tx_rate, rx_total, tx_total)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return
	}
	defer stmt.Close()

	for _, sample := range samples {
		_, err := stmt.Exec(
			sample.Device,
			sample.Timestamp.Unix(),
			sample.RxRate,
			sample.TxRate,
			sample.RxTotal,
			sample.TxTotal,
		)
		if err != nil {
			continue
		}
	}

	tx.Commit()
}

// Flush drains the queue and writes synchronously. Intended for tests that
// need to query immediately after writing.
func (s *Storage) Flush() {
	buffer := make([]*Sample, 0, len(s.writeChan))
	for {
		select {
		case sample := <-s.writeChan:
			buffer = append(buffer, sample)
		default:
			if len(buffer) > 0 {
				s.batchWrite(buffer)
			}
			return
		}
	}
}

// Query returns bucket-averaged rates for a device over the given range,
// oldest first.
func (s *Storage) Query(device string, timeRange TimeRange) ([]DataPoint, error) {
	cutoff := time.Now().Add(-timeRange.Duration()).Unix()
	bucket := timeRange.bucketSeconds()

	rows, err := s.db.Query(`
		SELECT
			(timestamp / ?) * ? AS bucket,
			AVG(rx_rate) AS avg_rx,
			AVG(tx_rate) AS avg_tx
		FROM traffic_samples
		WHERE device = ? AND timestamp > ?
		GROUP BY bucket
		ORDER BY bucket ASC
	`, bucket, bucket, device, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []DataPoint
	for rows.Next() {
		var ts int64
		var rx, tx float64
		if err := rows.Scan(&ts, &rx, &tx); err != nil {
			continue
		}
		points = append(points, DataPoint{
			Timestamp: time.Unix(ts, 0),
			RxRate:    rx,
			TxRate:    tx,
		})
	}

	return points, rows.Err()
}

// cleanup trims samples older than the largest viewable range so an
// all-day session does not grow the in-memory table without bound.
func (s *Storage) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-Range6Hour.Duration()).Unix()
			s.db.Exec("DELETE FROM traffic_samples WHERE timestamp < ?", cutoff)

		case <-s.closeChan:
			return
		}
	}
}

// Close flushes pending writes and closes the database.
func (s *Storage) Close() error {
	close(s.closeChan)
	time.Sleep(100 * time.Millisecond) // allow goroutines to finish
	return s.db.Close()
}
