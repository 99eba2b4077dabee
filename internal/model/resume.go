package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Go models that match resume.schema.json, the payload served by the
// resume backend under /api/v1/resumes/{id}.

// FlexString decodes from either a JSON string or a JSON number. Resume ids
// and GPAs arrive in both shapes depending on the backend version.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flex string: expected string or number, got %s", string(b))
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexString) String() string { return string(f) }

type Skill struct {
	ID        FlexString `json:"id"`
	Name      string     `json:"name"`
	Level     string     `json:"level,omitempty"`
	Category  string     `json:"category,omitempty"`
	SortOrder int        `json:"sortOrder"`
	IsVisible bool       `json:"isVisible"`
}

// UnmarshalJSON treats an absent isVisible as visible; only an explicit
// false hides the skill.
func (s *Skill) UnmarshalJSON(b []byte) error {
	type alias Skill
	a := alias{IsVisible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = Skill(a)
	return nil
}

type Responsibility struct {
	ID          FlexString `json:"id"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sortOrder"`
	IsVisible   bool       `json:"isVisible"`
}

func (r *Responsibility) UnmarshalJSON(b []byte) error {
	type alias Responsibility
	a := alias{IsVisible: true}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*r = Responsibility(a)
	return nil
}

type WorkExperience struct {
	ID               FlexString       `json:"id"`
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Location         string           `json:"location,omitempty"`
	EmploymentType   string           `json:"employmentType,omitempty"`
	StartDate        string           `json:"startDate,omitempty"`
	EndDate          *string          `json:"endDate,omitempty"`
	IsCurrent        bool             `json:"isCurrent"`
	Description      string           `json:"description,omitempty"`
	Technologies     []string         `json:"technologies,omitempty"`
	Responsibilities []Responsibility `json:"responsibilities,omitempty"`
}

type Education struct {
	ID           FlexString `json:"id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree,omitempty"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	StartDate    string     `json:"startDate,omitempty"`
	EndDate      string     `json:"endDate,omitempty"`
	GPA          FlexString `json:"gpa,omitempty"`
	Description  string     `json:"description,omitempty"`
}

type Certification struct {
	ID                  FlexString `json:"id"`
	Name                string     `json:"name,omitempty"`
	IssuingOrganization string     `json:"issuingOrganization,omitempty"`
	IssueDate           string     `json:"issueDate,omitempty"`
}

type Resume struct {
	ID              FlexString       `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Location        string           `json:"location,omitempty"`
	ProfileImage    string           `json:"profileImage,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Skills          []Skill          `json:"skills"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Certifications  []Certification  `json:"certifications"`
}

// WithID returns a shallow copy of r carrying id. Slices are shared, which
// is fine because rendering never mutates a resume.
func (r Resume) WithID(id string) *Resume {
	r.ID = FlexString(id)
	return &r
}

// Decode validates raw against the resume schema and decodes it.
func Decode(raw []byte) (*Resume, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var r Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &r, nil
}

// GPAString formats a numeric GPA without trailing zeros and leaves any
// other text untouched.
func (e Education) GPAString() string {
	s := string(e.GPA)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}
