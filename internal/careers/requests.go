package careers

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in validation
// errors are reported as the JSON tag name so API clients see the same
// names they sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// InvalidFields extracts the offending field names from a validator error.
// Returns nil for a nil error or an error that is not a validation failure.
func InvalidFields(err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// CreateJobInput carries the caller-supplied fields for a new posting.
// ID and PostedDate are never part of the input; the store assigns both.
type CreateJobInput struct {
	Title        string     `json:"title" validate:"required"`
	Department   string     `json:"department" validate:"required"`
	Location     string     `json:"location" validate:"required"`
	Type         JobType    `json:"type" validate:"required,oneof=full-time part-time contract"`
	Level        JobLevel   `json:"level" validate:"required,oneof=entry mid senior executive"`
	Description  string     `json:"description" validate:"required"`
	Requirements string     `json:"requirements" validate:"required"`
	Benefits     string     `json:"benefits,omitempty"`
	SalaryRange  string     `json:"salary_range,omitempty"`
	ClosingDate  *time.Time `json:"closing_date,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"` // nil defaults to true
}

// Validate checks the input against its validation tags.
func (in *CreateJobInput) Validate() error {
	return validate.Struct(in)
}

// Active resolves the IsActive field, defaulting to true when unset.
func (in *CreateJobInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}

// UpdateJobInput carries a partial update. Nil fields keep their stored
// value; set fields replace it. There is deliberately no way to express a
// change to ID or PostedDate.
type UpdateJobInput struct {
	Title        *string    `json:"title,omitempty"`
	Department   *string    `json:"department,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Type         *JobType   `json:"type,omitempty" validate:"omitempty,oneof=full-time part-time contract"`
	Level        *JobLevel  `json:"level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	Description  *string    `json:"description,omitempty"`
	Requirements *string    `json:"requirements,omitempty"`
	Benefits     *string    `json:"benefits,omitempty"`
	SalaryRange  *string    `json:"salary_range,omitempty"`
	ClosingDate  *time.Time `json:"closing_date,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

// Validate checks the set fields against their validation tags.
func (in *UpdateJobInput) Validate() error {
	return validate.Struct(in)
}

// ApplyTo merges the set fields onto job, leaving ID and PostedDate intact.
func (in *UpdateJobInput) ApplyTo(job *JobPosting) {
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Department != nil {
		job.Department = *in.Department
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.Type != nil {
		job.Type = *in.Type
	}
	if in.Level != nil {
		job.Level = *in.Level
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Requirements != nil {
		job.Requirements = *in.Requirements
	}
	if in.Benefits != nil {
		job.Benefits = *in.Benefits
	}
	if in.SalaryRange != nil {
		job.SalaryRange = *in.SalaryRange
	}
	if in.ClosingDate != nil {
		job.ClosingDate = in.ClosingDate
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}
}

// ApplicationInput carries a mock job application submission.
type ApplicationInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// Validate checks the application against its validation tags.
func (in *ApplicationInput) Validate() error {
	return validate.Struct(in)
}

// LoginRequest represents the admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the login request against its validation tags.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// SessionUser is the authenticated principal returned by /auth/me and login.
type SessionUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse represents a successful login with the session token.
type LoginResponse struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
}
