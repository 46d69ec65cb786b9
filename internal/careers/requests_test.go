package careers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateJobInput {
	return CreateJobInput{
		Title:        "Senior Robotics Engineer",
		Department:   "Engineering",
		Location:     "San Francisco, CA",
		Type:         JobTypeFullTime,
		Level:        JobLevelSenior,
		Description:  "Humanoid robotics.",
		Requirements: "ROS, C++.",
	}
}

func TestCreateJobInput_Validate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		in := validCreate()
		assert.NoError(t, in.Validate())
	})

	t.Run("missing fields are reported by json name", func(t *testing.T) {
		in := validCreate()
		in.Title = ""
		in.Department = ""

		err := in.Validate()
		require.Error(t, err)
		fields := InvalidFields(err)
		assert.ElementsMatch(t, []string{"title", "department"}, fields)
	})

	t.Run("unknown enum values fail", func(t *testing.T) {
		in := validCreate()
		in.Type = "internship"
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, InvalidFields(err), "type")
	})
}

func TestCreateJobInput_Active(t *testing.T) {
	in := validCreate()
	assert.True(t, in.Active(), "unset is_active defaults to true")

	f := false
	in.IsActive = &f
	assert.False(t, in.Active())
}

func TestUpdateJobInput_ApplyTo(t *testing.T) {
	posted := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	job := JobPosting{
		ID:          7,
		Title:       "Product Designer",
		Department:  "Design",
		Location:    "New York, NY",
		Type:        JobTypeFullTime,
		Level:       JobLevelMid,
		PostedDate:  posted,
		IsActive:    true,
		Description: "Interfaces.",
	}

	t.Run("set fields replace, unset fields survive", func(t *testing.T) {
		j := job
		title := "Lead Product Designer"
		level := JobLevelSenior
		in := UpdateJobInput{Title: &title, Level: &level}
		in.ApplyTo(&j)

		assert.Equal(t, "Lead Product Designer", j.Title)
		assert.Equal(t, JobLevelSenior, j.Level)
		assert.Equal(t, "Design", j.Department)
		assert.Equal(t, 7, j.ID)
		assert.Equal(t, posted, j.PostedDate)
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		j := job
		in := UpdateJobInput{}
		in.ApplyTo(&j)
		assert.Equal(t, job, j)
	})

	t.Run("is_active can be set false", func(t *testing.T) {
		j := job
		f := false
		in := UpdateJobInput{IsActive: &f}
		in.ApplyTo(&j)
		assert.False(t, j.IsActive)
	})
}

func TestUpdateJobInput_Validate(t *testing.T) {
	t.Run("nil fields are not validated", func(t *testing.T) {
		assert.NoError(t, (&UpdateJobInput{}).Validate())
	})

	t.Run("set enum fields are validated", func(t *testing.T) {
		bad := JobLevel("principal")
		in := UpdateJobInput{Level: &bad}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, InvalidFields(err), "level")
	})
}

func TestApplicationInput_Validate(t *testing.T) {
	t.Run("valid application", func(t *testing.T) {
		in := ApplicationInput{Name: "Dana Fox", Email: "dana@example.com"}
		assert.NoError(t, in.Validate())
	})

	t.Run("malformed email", func(t *testing.T) {
		in := ApplicationInput{Name: "Dana Fox", Email: "not-an-email"}
		err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, InvalidFields(err), "email")
	})
}

func TestJobPosting_JSON(t *testing.T) {
	closing := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	job := JobPosting{
		ID:          1,
		Title:       "Senior Robotics Engineer",
		Type:        JobTypeFullTime,
		Level:       JobLevelSenior,
		SalaryRange: "$150,000 - $220,000",
		PostedDate:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ClosingDate: &closing,
		IsActive:    true,
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	t.Run("field names are snake_case", func(t *testing.T) {
		assert.Contains(t, string(data), `"salary_range"`)
		assert.NotContains(t, string(data), `"SalaryRange"`)
		assert.Contains(t, string(data), `"posted_date"`)
		assert.Contains(t, string(data), `"is_active"`)
	})

	t.Run("empty optional fields are omitted", func(t *testing.T) {
		noExtras := JobPosting{ID: 2, Title: "Bare"}
		data, err := json.Marshal(noExtras)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "benefits")
		assert.NotContains(t, string(data), "closing_date")
	})
}

func TestInvalidFields(t *testing.T) {
	assert.Nil(t, InvalidFields(nil))
	assert.Nil(t, InvalidFields(assert.AnError))
}
