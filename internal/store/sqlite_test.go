package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biocom/careers-api/internal/careers"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "careers.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestSQLiteStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	t.Run("create assigns id 1 and a posted date", func(t *testing.T) {
		job, err := s.Create(ctx, validCreateInput("Senior Robotics Engineer"))
		require.NoError(t, err)
		assert.Equal(t, 1, job.ID)
		assert.True(t, job.IsActive)
		assert.False(t, job.PostedDate.IsZero())
	})

	t.Run("round-trips all fields", func(t *testing.T) {
		in := validCreateInput("AI/ML Research Scientist")
		in.Benefits = "Equity"
		in.SalaryRange = "$140,000 - $200,000"
		created, err := s.Create(ctx, in)
		require.NoError(t, err)

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created, got)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		title := "Staff Robotics Engineer"
		job, err := s.Update(ctx, 1, careers.UpdateJobInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, job.Title)
		assert.Equal(t, "Engineering", job.Department)
	})

	t.Run("empty update returns the stored posting unchanged", func(t *testing.T) {
		before, err := s.GetByID(ctx, 1)
		require.NoError(t, err)
		after, err := s.Update(ctx, 1, careers.UpdateJobInput{})
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("update of an unknown id is NotFoundError", func(t *testing.T) {
		title := "Ghost"
		_, err := s.Update(ctx, 999, careers.UpdateJobInput{Title: &title})
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("toggle flips visibility", func(t *testing.T) {
		job, err := s.ToggleActive(ctx, 1)
		require.NoError(t, err)
		assert.False(t, job.IsActive)

		active, err := s.ListActive(ctx)
		require.NoError(t, err)
		for _, j := range active {
			assert.NotEqual(t, 1, j.ID)
		}

		job, err = s.ToggleActive(ctx, 1)
		require.NoError(t, err)
		assert.True(t, job.IsActive)
	})

	t.Run("delete removes and absent delete reports false", func(t *testing.T) {
		deleted, err := s.Delete(ctx, 2)
		require.NoError(t, err)
		assert.True(t, deleted)

		job, err := s.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, job)

		deleted, err = s.Delete(ctx, 2)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("deleted ids are never reused", func(t *testing.T) {
		job, err := s.Create(ctx, validCreateInput("Replacement"))
		require.NoError(t, err)
		assert.Equal(t, 3, job.ID)
	})
}

func TestSQLiteStore_ListOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Seed(ctx, seedJobs()))

	jobs, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, 3, jobs[0].ID)
	assert.Equal(t, 2, jobs[1].ID)
	assert.Equal(t, 1, jobs[2].ID)
}

func TestSQLiteStore_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("seeding a non-empty store is a no-op", func(t *testing.T) {
		s := newTestSQLiteStore(t)
		_, err := s.Create(ctx, validCreateInput("Existing"))
		require.NoError(t, err)

		require.NoError(t, s.Seed(ctx, seedJobs()))

		jobs, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("ids continue above the seeded maximum", func(t *testing.T) {
		s := newTestSQLiteStore(t)
		require.NoError(t, s.Seed(ctx, seedJobs()))

		job, err := s.Create(ctx, validCreateInput("Next"))
		require.NoError(t, err)
		assert.Equal(t, 4, job.ID)
	})

	t.Run("duplicate seed ids are rejected before any insert", func(t *testing.T) {
		s := newTestSQLiteStore(t)
		jobs := seedJobs()
		jobs[1].ID = jobs[0].ID

		err := s.Seed(ctx, jobs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate job id")

		stored, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("store survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "durable.db")
		s, err := NewSQLiteStore(path)
		require.NoError(t, err)
		require.NoError(t, s.Seed(ctx, seedJobs()))
		require.NoError(t, s.Close())

		reopened, err := NewSQLiteStore(path)
		require.NoError(t, err)
		defer func() { require.NoError(t, reopened.Close()) }()

		jobs, err := reopened.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, jobs, 3)
	})
}
