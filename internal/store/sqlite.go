package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/biocom/careers-api/internal/careers"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// SQLiteStore is the embedded durable backing. The jobs table uses an
// AUTOINCREMENT primary key, so the id of a hard-deleted posting is never
// handed out again.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies any pending migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db}
	if err := s.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		return fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		version := migrationVersion(entry.Name())
		if version <= 0 {
			continue
		}
		var applied int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version,
		).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", entry.Name(), err)
		}
		if applied > 0 {
			continue
		}
		content, err := migrationFiles.ReadFile(filepath.Join("migrations", entry.Name()))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES (?)`, version,
		); err != nil {
			return fmt.Errorf("record migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// migrationVersion extracts the leading integer from a migration filename
// (e.g. "001_jobs.sql" → 1).
func migrationVersion(name string) int {
	for i, c := range name {
		if c < '0' || c > '9' {
			if i == 0 {
				return 0
			}
			n, _ := strconv.Atoi(name[:i])
			return n
		}
	}
	n, _ := strconv.Atoi(name)
	return n
}

const sqliteJobColumns = `id, title, department, location, type, level,
	 description, requirements, benefits, salary_range,
	 posted_date, closing_date, is_active`

// ListActive implements Store.
func (s *SQLiteStore) ListActive(ctx context.Context) ([]careers.JobPosting, error) {
	return s.list(ctx, `SELECT `+sqliteJobColumns+` FROM jobs
		 WHERE is_active = 1 ORDER BY posted_date DESC, id DESC`)
}

// ListAll implements Store.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]careers.JobPosting, error) {
	return s.list(ctx, `SELECT `+sqliteJobColumns+` FROM jobs
		 ORDER BY posted_date DESC, id DESC`)
}

func (s *SQLiteStore) list(ctx context.Context, query string) ([]careers.JobPosting, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]careers.JobPosting, 0)
	for rows.Next() {
		job, err := scanSQLiteJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// GetByID implements Store.
func (s *SQLiteStore) GetByID(ctx context.Context, id int) (*careers.JobPosting, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sqliteJobColumns+` FROM jobs WHERE id = ?`, id)
	job, err := scanSQLiteJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

// Create implements Store.
func (s *SQLiteStore) Create(ctx context.Context, in careers.CreateJobInput) (*careers.JobPosting, error) {
	if err := checkCreate(in); err != nil {
		return nil, err
	}

	posted := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (title, department, location, type, level,
		                   description, requirements, benefits, salary_range,
		                   posted_date, closing_date, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Department, in.Location, string(in.Type), string(in.Level),
		in.Description, in.Requirements, in.Benefits, in.SalaryRange,
		formatTime(posted), formatTimePtr(in.ClosingDate), boolToInt(in.Active()),
	)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return s.GetByID(ctx, int(id))
}

// Update implements Store.
func (s *SQLiteStore) Update(ctx context.Context, id int, in careers.UpdateJobInput) (*careers.JobPosting, error) {
	if err := checkUpdate(in); err != nil {
		return nil, err
	}

	// Build the SET clause from the fields that are actually present.
	// The id and posted_date columns are never part of it.
	var sets []string
	var args []any
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.Department != nil {
		add("department", *in.Department)
	}
	if in.Location != nil {
		add("location", *in.Location)
	}
	if in.Type != nil {
		add("type", string(*in.Type))
	}
	if in.Level != nil {
		add("level", string(*in.Level))
	}
	if in.Description != nil {
		add("description", *in.Description)
	}
	if in.Requirements != nil {
		add("requirements", *in.Requirements)
	}
	if in.Benefits != nil {
		add("benefits", *in.Benefits)
	}
	if in.SalaryRange != nil {
		add("salary_range", *in.SalaryRange)
	}
	if in.ClosingDate != nil {
		add("closing_date", formatTime(*in.ClosingDate))
	}
	if in.IsActive != nil {
		add("is_active", boolToInt(*in.IsActive))
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx,
			`UPDATE jobs SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return nil, fmt.Errorf("update job %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("update job %d: %w", id, err)
		}
		if n == 0 {
			return nil, &NotFoundError{ID: id}
		}
		return s.GetByID(ctx, id)
	}

	// Empty payload: still a valid request, but the target must exist.
	job, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, &NotFoundError{ID: id}
	}
	return job, nil
}

// ToggleActive implements Store.
func (s *SQLiteStore) ToggleActive(ctx context.Context, id int) (*careers.JobPosting, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET is_active = 1 - is_active WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("toggle job %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("toggle job %d: %w", id, err)
	}
	if n == 0 {
		return nil, &NotFoundError{ID: id}
	}
	return s.GetByID(ctx, id)
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete job %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete job %d: %w", id, err)
	}
	return n > 0, nil
}

// Seed implements Store.
func (s *SQLiteStore) Seed(ctx context.Context, jobs []careers.JobPosting) error {
	if err := checkSeed(jobs); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, job := range jobs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO jobs (id, title, department, location, type, level,
			                   description, requirements, benefits, salary_range,
			                   posted_date, closing_date, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			job.ID, job.Title, job.Department, job.Location, string(job.Type), string(job.Level),
			job.Description, job.Requirements, job.Benefits, job.SalaryRange,
			formatTime(job.PostedDate), formatTimePtr(job.ClosingDate), boolToInt(job.IsActive),
		); err != nil {
			return fmt.Errorf("seed job %d: %w", job.ID, err)
		}
	}

	return tx.Commit()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteJob(row rowScanner) (*careers.JobPosting, error) {
	var (
		job       careers.JobPosting
		jobType   string
		jobLevel  string
		posted    string
		closing   sql.NullString
		activeInt int
	)
	err := row.Scan(&job.ID, &job.Title, &job.Department, &job.Location,
		&jobType, &jobLevel, &job.Description, &job.Requirements,
		&job.Benefits, &job.SalaryRange, &posted, &closing, &activeInt)
	if err != nil {
		return nil, err
	}

	job.Type = careers.JobType(jobType)
	job.Level = careers.JobLevel(jobLevel)
	job.IsActive = activeInt != 0
	if job.PostedDate, err = parseTime(posted); err != nil {
		return nil, fmt.Errorf("job %d: bad posted_date: %w", job.ID, err)
	}
	if closing.Valid && closing.String != "" {
		t, err := parseTime(closing.String)
		if err != nil {
			return nil, fmt.Errorf("job %d: bad closing_date: %w", job.ID, err)
		}
		job.ClosingDate = &t
	}
	return &job, nil
}

// Timestamps are stored as RFC 3339 strings so the DESC ordering in SQL
// matches chronological order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
