package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biocom/careers-api/internal/careers"
)

func testJobs() []careers.JobPosting {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []careers.JobPosting{
		{
			ID:          1,
			Title:       "Senior Robotics Engineer",
			Department:  "Engineering",
			Location:    "San Francisco, CA",
			Level:       careers.JobLevelSenior,
			Description: "Lead the development of humanoid robotics systems.",
			PostedDate:  base.AddDate(0, 0, 14),
			IsActive:    true,
		},
		{
			ID:          2,
			Title:       "AI/ML Research Scientist",
			Department:  "Research & Development",
			Location:    "Remote",
			Level:       careers.JobLevelSenior,
			Description: "Develop AI algorithms for robot perception.",
			PostedDate:  base.AddDate(0, 0, 7),
			IsActive:    true,
		},
		{
			ID:          3,
			Title:       "Product Designer",
			Department:  "Design",
			Location:    "New York, NY",
			Level:       careers.JobLevelMid,
			Description: "Design interfaces for robot control systems.",
			PostedDate:  base,
			IsActive:    true,
		},
		{
			ID:          4,
			Title:       "Accountant",
			Department:  "Finance",
			Location:    "New York, NY",
			Level:       careers.JobLevelMid,
			Description: "Manage company finances and reporting.",
			PostedDate:  base.AddDate(0, 0, -7),
			IsActive:    true,
		},
	}
}

func TestApply_NoFilter(t *testing.T) {
	jobs := testJobs()

	t.Run("zero filter returns everything", func(t *testing.T) {
		out := Apply(jobs, Filter{})
		assert.Equal(t, jobs, out)
	})

	t.Run("all sentinel is a no-op on every dimension", func(t *testing.T) {
		out := Apply(jobs, Filter{Department: All, Location: All, Level: All})
		assert.Equal(t, jobs, out)
	})
}

func TestApply_Search(t *testing.T) {
	jobs := testJobs()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		out := Apply(jobs, Filter{Search: "ROBOTICS"})
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		out := Apply(jobs, Filter{Search: "robot"})
		require.Len(t, out, 3)
		assert.Equal(t, []int{out[0].ID, out[1].ID, out[2].ID}, []int{1, 2, 3})
	})

	t.Run("matches department", func(t *testing.T) {
		out := Apply(jobs, Filter{Search: "finance"})
		require.Len(t, out, 1)
		assert.Equal(t, 4, out[0].ID)
	})

	t.Run("whitespace-only search matches everything", func(t *testing.T) {
		out := Apply(jobs, Filter{Search: "   "})
		assert.Len(t, out, len(jobs))
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		out := Apply(jobs, Filter{Search: "astronaut"})
		require.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestApply_Selectors(t *testing.T) {
	jobs := testJobs()

	t.Run("selectors match exactly", func(t *testing.T) {
		out := Apply(jobs, Filter{Department: "Engineering"})
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0].ID)
	})

	t.Run("predicates combine conjunctively", func(t *testing.T) {
		out := Apply(jobs, Filter{Location: "New York, NY", Level: "mid", Search: "robot"})
		require.Len(t, out, 1)
		assert.Equal(t, 3, out[0].ID)
	})

	t.Run("selector values are not case-folded", func(t *testing.T) {
		out := Apply(jobs, Filter{Department: "engineering"})
		assert.Empty(t, out)
	})
}

func TestApply_PreservesOrder(t *testing.T) {
	jobs := testJobs()

	out := Apply(jobs, Filter{Location: "New York, NY"})
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].ID)
	assert.Equal(t, 4, out[1].ID)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Department: All, Location: All, Level: All}.IsZero())
	assert.False(t, Filter{Search: "x"}.IsZero())
	assert.False(t, Filter{Level: "senior"}.IsZero())
}

func TestFacets(t *testing.T) {
	jobs := testJobs()

	facets := Facets(jobs)

	t.Run("values are distinct and sorted", func(t *testing.T) {
		assert.Equal(t, []string{"Design", "Engineering", "Finance", "Research & Development"}, facets.Departments)
		assert.Equal(t, []string{"New York, NY", "Remote", "San Francisco, CA"}, facets.Locations)
		assert.Equal(t, []string{"mid", "senior"}, facets.Levels)
	})

	t.Run("empty collection yields empty facets", func(t *testing.T) {
		empty := Facets(nil)
		assert.Empty(t, empty.Departments)
		assert.Empty(t, empty.Locations)
		assert.Empty(t, empty.Levels)
	})
}
