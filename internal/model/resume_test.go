package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAcceptsNumericAndStringIDs(t *testing.T) {
	r, err := Decode([]byte(`{"id": 42, "name": "Ada", "email": "ada@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, FlexString("42"), r.ID)

	r, err = Decode([]byte(`{"id": "abc-1", "name": "Ada"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc-1", r.ID.String())
}

func TestDecodeRejectsSchemaViolations(t *testing.T) {
	_, err := Decode([]byte(`{"name": "missing id"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"id": "1", "skills": "not-a-list"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestVisibilityDefaultsToTrue(t *testing.T) {
	raw := `{
		"id": "1",
		"skills": [{"name": "Go"}, {"name": "Perl", "isVisible": false}],
		"workExperiences": [{"responsibilities": [{"description": "a"}, {"description": "b", "isVisible": false}]}]
	}`
	r, err := Decode([]byte(raw))
	require.NoError(t, err)

	require.Len(t, r.Skills, 2)
	assert.True(t, r.Skills[0].IsVisible)
	assert.False(t, r.Skills[1].IsVisible)

	resp := r.WorkExperiences[0].Responsibilities
	require.Len(t, resp, 2)
	assert.True(t, resp[0].IsVisible)
	assert.False(t, resp[1].IsVisible)
}

func TestNullOptionalFields(t *testing.T) {
	raw := `{"id": 7, "phone": null, "workExperiences": [{"endDate": null, "isCurrent": true}], "educations": [{"gpa": 3.75}]}`
	r, err := Decode([]byte(raw))
	require.NoError(t, err)

	assert.Empty(t, r.Phone)
	assert.Nil(t, r.WorkExperiences[0].EndDate)
	assert.Equal(t, "3.75", r.Educations[0].GPAString())
}

func TestGPAString(t *testing.T) {
	assert.Equal(t, "3.8", Education{GPA: "3.80"}.GPAString())
	assert.Equal(t, "4", Education{GPA: "4.0"}.GPAString())
	assert.Equal(t, "First class", Education{GPA: "First class"}.GPAString())
	assert.Equal(t, "", Education{}.GPAString())
}

func TestWithIDDoesNotMutateOriginal(t *testing.T) {
	orig := SampleResume()
	cp := orig.WithID("123")

	assert.Equal(t, FlexString("123"), cp.ID)
	assert.Equal(t, FlexString("sample"), orig.ID)
}

func TestSeedAndSampleSatisfySchema(t *testing.T) {
	for name, r := range map[string]*Resume{"seed": SeedResume(), "sample": SampleResume()} {
		t.Run(name, func(t *testing.T) {
			raw, err := json.Marshal(r)
			require.NoError(t, err)
			assert.NoError(t, Validate(raw))

			back, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, r.Name, back.Name)
			assert.Equal(t, len(r.Skills), len(back.Skills))
		})
	}
}

func TestSeedExercisesEveryField(t *testing.T) {
	r := SeedResume()

	assert.NotEmpty(t, r.Name)
	assert.NotEmpty(t, r.Email)
	assert.NotEmpty(t, r.Phone)
	assert.NotEmpty(t, r.Location)
	assert.NotEmpty(t, r.ProfileImage)
	assert.NotEmpty(t, r.Summary)
	assert.NotEmpty(t, r.Educations)
	assert.NotEmpty(t, r.Certifications)

	hidden := false
	for _, s := range r.Skills {
		if !s.IsVisible {
			hidden = true
		}
	}
	assert.True(t, hidden, "seed should carry a hidden skill")

	current := false
	for _, w := range r.WorkExperiences {
		if w.IsCurrent && w.EndDate != nil {
			current = true
		}
	}
	assert.True(t, current, "seed should carry an ongoing role with a stored end date")

	assert.NotEqual(t, SampleResume().Name, r.Name)
}
