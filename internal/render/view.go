package render

import (
	"html/template"
	"regexp"
	"sort"
	"strings"

	"github.com/paramveer-prakash/career-sub001/internal/model"
)

// View is the projection every template renders. Visibility filtering, sort
// order and date formatting happen here once, so templates only decide
// layout and styling.
type View struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Location       string
	Summary        string
	Image          template.URL
	SkillGroups    []SkillGroup
	Experiences    []ExperienceView
	Educations     []EducationView
	Certifications []CertificationView
}

type SkillGroup struct {
	Category string
	Skills   []SkillView
}

type SkillView struct {
	Name  string
	Level string
}

type ExperienceView struct {
	Title            string
	Company          string
	Location         string
	EmploymentType   string
	Period           string
	Description      string
	Technologies     []string
	Responsibilities []string
}

type EducationView struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	Period       string
	GPA          string
	Description  string
}

type CertificationView struct {
	Name   string
	Issuer string
	Date   string
}

// inline images only; anything else would make the renderer fetch over the network
var inlineImage = regexp.MustCompile(`^data:image/(png|jpe?g|gif|webp);base64,[A-Za-z0-9+/=\s]+$`)

// Project builds the View for r. r is never modified.
func Project(r *model.Resume) *View {
	v := &View{
		ID:       r.ID.String(),
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Location: strings.TrimSpace(r.Location),
		Summary:  strings.TrimSpace(r.Summary),
	}
	if inlineImage.MatchString(r.ProfileImage) {
		v.Image = template.URL(r.ProfileImage)
	}

	v.SkillGroups = projectSkills(r.Skills)

	for _, w := range r.WorkExperiences {
		v.Experiences = append(v.Experiences, ExperienceView{
			Title:            w.Title,
			Company:          w.Company,
			Location:         w.Location,
			EmploymentType:   w.EmploymentType,
			Period:           FormatRange(w.StartDate, w.EndDate, w.IsCurrent),
			Description:      strings.TrimSpace(w.Description),
			Technologies:     nonEmpty(w.Technologies),
			Responsibilities: projectResponsibilities(w.Responsibilities),
		})
	}

	for _, e := range r.Educations {
		var end *string
		if e.EndDate != "" {
			end = &e.EndDate
		}
		v.Educations = append(v.Educations, EducationView{
			Institution:  e.Institution,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			Period:       FormatRange(e.StartDate, end, false),
			GPA:          e.GPAString(),
			Description:  strings.TrimSpace(e.Description),
		})
	}

	for _, c := range r.Certifications {
		if c.Name == "" && c.IssuingOrganization == "" && c.IssueDate == "" {
			continue
		}
		v.Certifications = append(v.Certifications, CertificationView{
			Name:   c.Name,
			Issuer: c.IssuingOrganization,
			Date:   FormatDate(c.IssueDate),
		})
	}

	return v
}

// projectSkills keeps visible skills ordered by sortOrder and groups them by
// category in order of first appearance.
func projectSkills(skills []model.Skill) []SkillGroup {
	visible := make([]model.Skill, 0, len(skills))
	for _, s := range skills {
		if s.IsVisible && strings.TrimSpace(s.Name) != "" {
			visible = append(visible, s)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].SortOrder < visible[j].SortOrder
	})

	var groups []SkillGroup
	index := map[string]int{}
	for _, s := range visible {
		cat := strings.TrimSpace(s.Category)
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, SkillView{Name: s.Name, Level: s.Level})
	}
	return groups
}

func projectResponsibilities(items []model.Responsibility) []string {
	visible := make([]model.Responsibility, 0, len(items))
	for _, it := range items {
		if it.IsVisible && strings.TrimSpace(it.Description) != "" {
			visible = append(visible, it)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].SortOrder < visible[j].SortOrder
	})

	out := make([]string, 0, len(visible))
	for _, it := range visible {
		out = append(out, it.Description)
	}
	return out
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
