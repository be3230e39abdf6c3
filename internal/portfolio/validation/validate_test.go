package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validSkill() domain.Skill {
	return domain.Skill{Name: "Go", Category: domain.CategoryLanguages, Proficiency: 5}
}

func validProject() domain.Project {
	return domain.Project{
		Title:       "Portfolio",
		Description: "A terminal style portfolio site",
		TechStack:   []string{"Go"},
	}
}

func validExperience() domain.Experience {
	return domain.Experience{
		Title:       "Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Built and ran the billing platform",
	}
}

func requireViolation(t *testing.T, err error, field, rule string) {
	t.Helper()
	require.Error(t, err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, rule, ve.Rule)
	assert.NotEmpty(t, ve.Message)
}

func TestSkill(t *testing.T) {
	v := New()

	t.Run("accepts valid skill", func(t *testing.T) {
		s := validSkill()
		s.Icon = strPtr("go-icon")
		s.YearsExperience = intPtr(0)
		assert.NoError(t, v.Skill(&s))
	})

	tests := []struct {
		name   string
		mutate func(*domain.Skill)
		field  string
		rule   string
	}{
		{"empty name", func(s *domain.Skill) { s.Name = "" }, "name", "required"},
		{"name too long", func(s *domain.Skill) { s.Name = strings.Repeat("a", 101) }, "name", "max"},
		{"unknown category", func(s *domain.Skill) { s.Category = "hobbies" }, "category", "oneof"},
		{"icon too long", func(s *domain.Skill) { s.Icon = strPtr(strings.Repeat("i", 201)) }, "icon", "max"},
		{"proficiency zero", func(s *domain.Skill) { s.Proficiency = 0 }, "proficiency", "min"},
		{"proficiency six", func(s *domain.Skill) { s.Proficiency = 6 }, "proficiency", "max"},
		{"negative years", func(s *domain.Skill) { s.YearsExperience = intPtr(-1) }, "years_experience", "min"},
		{"too many years", func(s *domain.Skill) { s.YearsExperience = intPtr(51) }, "years_experience", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSkill()
			tt.mutate(&s)
			requireViolation(t, v.Skill(&s), tt.field, tt.rule)
		})
	}
}

func TestSkill_NameLengthCountsRunes(t *testing.T) {
	v := New()
	s := validSkill()
	s.Name = strings.Repeat("é", 100)
	assert.NoError(t, v.Skill(&s))
}

func TestProject(t *testing.T) {
	v := New()

	t.Run("accepts valid project with urls", func(t *testing.T) {
		p := validProject()
		p.GithubURL = strPtr("https://github.com/me/portfolio")
		p.LiveDemoURL = strPtr("http://example.com")
		assert.NoError(t, v.Project(&p))
	})

	tests := []struct {
		name   string
		mutate func(*domain.Project)
		field  string
		rule   string
	}{
		{"empty title", func(p *domain.Project) { p.Title = "" }, "title", "required"},
		{"short description", func(p *domain.Project) { p.Description = "too short" }, "description", "min"},
		{"long description", func(p *domain.Project) { p.Description = strings.Repeat("d", 2001) }, "description", "max"},
		{"nil tech stack", func(p *domain.Project) { p.TechStack = nil }, "tech_stack", "required"},
		{"empty tech stack", func(p *domain.Project) { p.TechStack = []string{} }, "tech_stack", "min"},
		{"ftp github url", func(p *domain.Project) { p.GithubURL = strPtr("ftp://example.com") }, "github_url", "httpurl"},
		{"bare image url", func(p *domain.Project) { p.ImageURL = strPtr("example.com/img.png") }, "image_url", "httpurl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(&p)
			requireViolation(t, v.Project(&p), tt.field, tt.rule)
		})
	}
}

func TestProject_ReportsOnlyFirstViolation(t *testing.T) {
	v := New()
	p := domain.Project{}
	requireViolation(t, v.Project(&p), "title", "required")
}

func TestExperience(t *testing.T) {
	v := New()

	t.Run("normalizes nil technologies", func(t *testing.T) {
		e := validExperience()
		e.StartDate = strPtr("2021-03")
		require.NoError(t, v.Experience(&e))
		assert.NotNil(t, e.Technologies)
		assert.Empty(t, e.Technologies)
	})

	t.Run("current role with end date is accepted", func(t *testing.T) {
		e := validExperience()
		e.IsCurrent = true
		e.EndDate = strPtr("2024-01")
		assert.NoError(t, v.Experience(&e))
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		e := validExperience()
		e.StartDate = strPtr("March 2021")
		requireViolation(t, v.Experience(&e), "start_date", "yearmonth")
	})

	t.Run("rejects missing company", func(t *testing.T) {
		e := validExperience()
		e.Company = ""
		requireViolation(t, v.Experience(&e), "company", "required")
	})
}

func TestSectionUpdate(t *testing.T) {
	v := New()

	assert.NoError(t, v.SectionUpdate(&domain.SectionUpdate{Content: map[string]interface{}{"name": "x"}}))
	requireViolation(t, v.SectionUpdate(&domain.SectionUpdate{}), "content", "required")
	requireViolation(t, v.SectionUpdate(&domain.SectionUpdate{Content: map[string]interface{}{}}), "content", "min")
}

func TestSection(t *testing.T) {
	v := New()

	s := domain.Section{SectionType: "footer", Content: map[string]interface{}{"a": 1}}
	requireViolation(t, v.Section(&s), "section_type", "oneof")

	for _, seeded := range domain.DefaultSeed().Sections {
		seeded := seeded
		assert.NoError(t, v.Section(&seeded))
	}
}

func TestRejectsNUL(t *testing.T) {
	v := New()

	t.Run("skill fields", func(t *testing.T) {
		s := validSkill()
		s.Name = "Go\x00"
		requireViolation(t, v.Skill(&s), "name", "nonul")

		s = validSkill()
		s.Icon = strPtr("icon\x00")
		requireViolation(t, v.Skill(&s), "icon", "nonul")
	})

	t.Run("project fields and tech stack items", func(t *testing.T) {
		p := validProject()
		p.Description = "A terminal\x00 style portfolio"
		requireViolation(t, v.Project(&p), "description", "nonul")

		p = validProject()
		p.TechStack = []string{"Go", "Re\x00dis"}
		requireViolation(t, v.Project(&p), "tech_stack[1]", "nonul")
	})

	t.Run("experience fields and technologies", func(t *testing.T) {
		e := validExperience()
		e.Location = "Re\x00mote"
		requireViolation(t, v.Experience(&e), "location", "nonul")

		e = validExperience()
		e.Technologies = []string{"\x00"}
		requireViolation(t, v.Experience(&e), "technologies[0]", "nonul")
	})

	t.Run("nested section content", func(t *testing.T) {
		cases := map[string]map[string]interface{}{
			"top level value": {"name": "A\x00da"},
			"key":             {"na\x00me": "Ada"},
			"nested map":      {"social": map[string]interface{}{"github": "x\x00"}},
			"list item":       {"tags": []interface{}{"ok", map[string]interface{}{"k": "\x00"}}},
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				requireViolation(t, v.SectionUpdate(&domain.SectionUpdate{Content: content}), "content", "nonul")

				s := domain.Section{SectionType: domain.SectionHero, Content: content}
				requireViolation(t, v.Section(&s), "content", "nonul")
			})
		}
	})

	t.Run("non-string content is untouched", func(t *testing.T) {
		u := domain.SectionUpdate{Content: map[string]interface{}{
			"years": 3.0, "active": true, "nothing": nil, "list": []interface{}{1.0},
		}}
		assert.NoError(t, v.SectionUpdate(&u))
	})
}
