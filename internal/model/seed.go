package model

// avatarPNG is a 1x1 PNG so the seed exercises the profile image slot
// without any network reference.
const avatarPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func strPtr(s string) *string { return &s }

// SeedResume is the fixed resume behind every template thumbnail. It covers
// every renderable field, including hidden entries and an ongoing role with
// a stale end date, so each template can be checked visually against it.
func SeedResume() *Resume {
	return &Resume{
		ID:           "seed",
		Name:         "Alex Morgan",
		Email:        "alex.morgan@example.com",
		Phone:        "+1 (555) 010-2030",
		Location:     "Lisbon, Portugal",
		ProfileImage: avatarPNG,
		Summary:      "Backend engineer with nine years of experience building payment and document platforms. Focused on reliable distributed systems, clear APIs and pragmatic observability.",
		Skills: []Skill{
			{ID: "s1", Name: "Go", Level: "Expert", Category: "Languages", SortOrder: 1, IsVisible: true},
			{ID: "s2", Name: "PostgreSQL", Level: "Advanced", Category: "Data", SortOrder: 3, IsVisible: true},
			{ID: "s3", Name: "TypeScript", Level: "Advanced", Category: "Languages", SortOrder: 2, IsVisible: true},
			{ID: "s4", Name: "Kubernetes", Level: "Intermediate", Category: "Infrastructure", SortOrder: 5, IsVisible: true},
			{ID: "s5", Name: "COBOL", Level: "Beginner", Category: "Languages", SortOrder: 4, IsVisible: false},
			{ID: "s6", Name: "Technical writing", SortOrder: 6, IsVisible: true},
		},
		WorkExperiences: []WorkExperience{
			{
				ID:             "w1",
				Title:          "Staff Software Engineer",
				Company:        "Northwind Payments",
				Location:       "Remote",
				EmploymentType: "Full-time",
				StartDate:      "2021-03-01",
				EndDate:        strPtr("2023-01-31"),
				IsCurrent:      true,
				Description:    "Leads the settlement platform team.",
				Technologies:   []string{"Go", "PostgreSQL", "Kafka"},
				Responsibilities: []Responsibility{
					{ID: "r2", Description: "Cut settlement latency from hours to minutes with an event-driven ledger.", SortOrder: 2, IsVisible: true},
					{ID: "r1", Description: "Designed the multi-currency reconciliation service.", SortOrder: 1, IsVisible: true},
					{ID: "r3", Description: "Internal draft bullet that should never print.", SortOrder: 3, IsVisible: false},
				},
			},
			{
				ID:             "w2",
				Title:          "Software Engineer",
				Company:        "Contoso Docs",
				Location:       "Porto, Portugal",
				EmploymentType: "Full-time",
				StartDate:      "2016-09",
				EndDate:        strPtr("2021-02"),
				Description:    "Built the document rendering pipeline.",
				Technologies:   []string{"Go", "Chrome DevTools Protocol"},
				Responsibilities: []Responsibility{
					{ID: "r4", Description: "Shipped HTML to PDF export used by 40k customers.", SortOrder: 1, IsVisible: true},
				},
			},
		},
		Educations: []Education{
			{
				ID:           "e1",
				Institution:  "University of Porto",
				Degree:       "MSc",
				FieldOfStudy: "Computer Science",
				StartDate:    "2014",
				EndDate:      "2016",
				GPA:          "3.8",
				Description:  "Thesis on consensus protocols.",
			},
			{
				ID:           "e2",
				Institution:  "University of Coimbra",
				Degree:       "BSc",
				FieldOfStudy: "Informatics Engineering",
				StartDate:    "2011-09-15",
				EndDate:      "2014-07-01",
			},
		},
		Certifications: []Certification{
			{ID: "c1", Name: "Certified Kubernetes Administrator", IssuingOrganization: "CNCF", IssueDate: "2022-05-10"},
			{ID: "c2", Name: "AWS Solutions Architect Associate", IssuingOrganization: "Amazon Web Services", IssueDate: "2020-11"},
		},
	}
}

// SampleResume is substituted when the resume backend cannot serve a
// request. It is deliberately different from SeedResume so fallback renders
// are recognisable; callers overwrite the id with the requested one.
func SampleResume() *Resume {
	return &Resume{
		ID:       "sample",
		Name:     "Jordan Lee",
		Email:    "jordan.lee@example.com",
		Phone:    "+1 (555) 014-7788",
		Location: "Austin, TX",
		Summary:  "Product-minded full-stack developer who enjoys turning rough ideas into dependable software.",
		Skills: []Skill{
			{ID: "1", Name: "JavaScript", Category: "Languages", SortOrder: 1, IsVisible: true},
			{ID: "2", Name: "Python", Category: "Languages", SortOrder: 2, IsVisible: true},
			{ID: "3", Name: "React", Category: "Frameworks", SortOrder: 3, IsVisible: true},
			{ID: "4", Name: "Docker", Category: "Tools", SortOrder: 4, IsVisible: true},
		},
		WorkExperiences: []WorkExperience{
			{
				ID:             "1",
				Title:          "Full Stack Developer",
				Company:        "Acme Corp",
				Location:       "Austin, TX",
				EmploymentType: "Full-time",
				StartDate:      "2020-01-01",
				IsCurrent:      true,
				Description:    "Owns the customer portal end to end.",
				Technologies:   []string{"React", "Node.js", "PostgreSQL"},
				Responsibilities: []Responsibility{
					{ID: "1", Description: "Rebuilt the billing UI, reducing support tickets by 30%.", SortOrder: 1, IsVisible: true},
					{ID: "2", Description: "Introduced end-to-end tests in CI.", SortOrder: 2, IsVisible: true},
				},
			},
		},
		Educations: []Education{
			{
				ID:           "1",
				Institution:  "State University",
				Degree:       "BSc",
				FieldOfStudy: "Computer Science",
				StartDate:    "2015",
				EndDate:      "2019",
			},
		},
		Certifications: []Certification{
			{ID: "1", Name: "Scrum Master", IssuingOrganization: "Scrum Alliance", IssueDate: "2021-06"},
		},
	}
}
