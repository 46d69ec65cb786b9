package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biocom/careers-api/internal/careers"
)

// PostgresStore backs the job collection with a PostgreSQL table. The id
// column is an identity column, so deleted ids are never reassigned.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore establishes a connection pool and ensures the schema
// exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS jobs (
		     id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		     title TEXT NOT NULL,
		     department TEXT NOT NULL,
		     location TEXT NOT NULL,
		     type TEXT NOT NULL,
		     level TEXT NOT NULL,
		     description TEXT NOT NULL,
		     requirements TEXT NOT NULL,
		     benefits TEXT NOT NULL DEFAULT '',
		     salary_range TEXT NOT NULL DEFAULT '',
		     posted_date TIMESTAMPTZ NOT NULL,
		     closing_date TIMESTAMPTZ,
		     is_active BOOLEAN NOT NULL DEFAULT TRUE
		 )`)
	if err != nil {
		return fmt.Errorf("failed to create jobs table: %w", err)
	}
	return nil
}

const pgJobColumns = `id, title, department, location, type, level,
	 description, requirements, benefits, salary_range,
	 posted_date, closing_date, is_active`

// ListActive implements Store.
func (s *PostgresStore) ListActive(ctx context.Context) ([]careers.JobPosting, error) {
	return s.list(ctx, `SELECT `+pgJobColumns+` FROM jobs
		 WHERE is_active ORDER BY posted_date DESC, id DESC`)
}

// ListAll implements Store.
func (s *PostgresStore) ListAll(ctx context.Context) ([]careers.JobPosting, error) {
	return s.list(ctx, `SELECT `+pgJobColumns+` FROM jobs
		 ORDER BY posted_date DESC, id DESC`)
}

func (s *PostgresStore) list(ctx context.Context, query string) ([]careers.JobPosting, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]careers.JobPosting, 0)
	for rows.Next() {
		job, err := scanPGJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// GetByID implements Store.
func (s *PostgresStore) GetByID(ctx context.Context, id int) (*careers.JobPosting, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+pgJobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanPGJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// Create implements Store.
func (s *PostgresStore) Create(ctx context.Context, in careers.CreateJobInput) (*careers.JobPosting, error) {
	if err := checkCreate(in); err != nil {
		return nil, err
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, department, location, type, level,
		                   description, requirements, benefits, salary_range,
		                   posted_date, closing_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), $10, $11)
		 RETURNING `+pgJobColumns,
		in.Title, in.Department, in.Location, string(in.Type), string(in.Level),
		in.Description, in.Requirements, in.Benefits, in.SalaryRange,
		in.ClosingDate, in.Active(),
	)
	job, err := scanPGJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Update implements Store.
func (s *PostgresStore) Update(ctx context.Context, id int, in careers.UpdateJobInput) (*careers.JobPosting, error) {
	if err := checkUpdate(in); err != nil {
		return nil, err
	}

	// Build SET clause dynamically; id and posted_date are never settable.
	var sets []string
	var args []any
	argNum := 1
	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
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
		add("closing_date", *in.ClosingDate)
	}
	if in.IsActive != nil {
		add("is_active", *in.IsActive)
	}

	if len(sets) == 0 {
		job, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, &NotFoundError{ID: id}
		}
		return job, nil
	}

	args = append(args, id)
	row := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
			strings.Join(sets, ", "), argNum, pgJobColumns),
		args...)
	job, err := scanPGJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to update job %d: %w", id, err)
	}
	return job, nil
}

// ToggleActive implements Store.
func (s *PostgresStore) ToggleActive(ctx context.Context, id int) (*careers.JobPosting, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE jobs SET is_active = NOT is_active WHERE id = $1
		 RETURNING `+pgJobColumns, id)
	job, err := scanPGJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to toggle job %d: %w", id, err)
	}
	return job, nil
}

// Delete implements Store.
func (s *PostgresStore) Delete(ctx context.Context, id int) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	return result.RowsAffected() > 0, nil
}

// Seed implements Store.
func (s *PostgresStore) Seed(ctx context.Context, jobs []careers.JobPosting) error {
	if err := checkSeed(jobs); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, job := range jobs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, department, location, type, level,
			                   description, requirements, benefits, salary_range,
			                   posted_date, closing_date, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			job.ID, job.Title, job.Department, job.Location, string(job.Type), string(job.Level),
			job.Description, job.Requirements, job.Benefits, job.SalaryRange,
			job.PostedDate, job.ClosingDate, job.IsActive,
		); err != nil {
			return fmt.Errorf("failed to seed job %d: %w", job.ID, err)
		}
	}

	// Move the identity sequence past the seeded ids so the next create
	// does not collide.
	if _, err := tx.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('jobs', 'id'),
		        (SELECT MAX(id) FROM jobs))`); err != nil {
		return fmt.Errorf("failed to advance id sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func scanPGJob(row pgx.Row) (*careers.JobPosting, error) {
	var (
		job      careers.JobPosting
		jobType  string
		jobLevel string
		closing  *time.Time
	)
	err := row.Scan(&job.ID, &job.Title, &job.Department, &job.Location,
		&jobType, &jobLevel, &job.Description, &job.Requirements,
		&job.Benefits, &job.SalaryRange, &job.PostedDate, &closing, &job.IsActive)
	if err != nil {
		return nil, err
	}
	job.Type = careers.JobType(jobType)
	job.Level = careers.JobLevel(jobLevel)
	job.ClosingDate = closing
	return &job, nil
}
