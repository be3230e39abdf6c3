package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/repository"
)

func setupService(t *testing.T) (*ContentService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := repository.NewRedisStore(client, "svc")
	t.Cleanup(func() {
		_ = store.Close()
		mr.Close()
	})

	return NewContentService(store, nil, nil), mr
}

func validSkill(name string) domain.Skill {
	return domain.Skill{Name: name, Category: domain.CategoryLanguages, Proficiency: 4}
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	first, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, first.Skipped)
	assert.Equal(t, 3, first.Sections)
	assert.Equal(t, 10, first.Skills)
	assert.Equal(t, 2, first.Projects)

	second, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	skills, err := svc.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 10)

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestSeedDefaults_SentinelOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)

	skills, err := svc.ListSkills(ctx)
	require.NoError(t, err)
	for _, sk := range skills {
		require.NoError(t, svc.DeleteSkill(ctx, sk.ID))
	}

	inactive := false
	_, err = svc.UpdateSection(ctx, domain.SectionHero, domain.SectionUpdate{
		Content:  map[string]interface{}{"name": "hidden"},
		IsActive: &inactive,
	})
	require.NoError(t, err)

	res, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped, "an inactive hero still counts as seeded")

	skills, err = svc.ListSkills(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestSeed_InvalidBatchWritesNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	batch := domain.DefaultSeed()
	batch.Skills = append(batch.Skills, domain.Skill{Name: "Broken", Category: "misc", Proficiency: 3})

	_, err := svc.Seed(ctx, batch)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	sections, err := svc.ListSections(ctx)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestSections(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	t.Run("unknown type is not found", func(t *testing.T) {
		_, err := svc.GetSection(ctx, "banner")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown type is not found even with an invalid body", func(t *testing.T) {
		_, err := svc.UpdateSection(ctx, "banner", domain.SectionUpdate{Content: map[string]interface{}{}})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, domain.IsValidation(err))
	})

	t.Run("update of a missing section is not found", func(t *testing.T) {
		_, err := svc.UpdateSection(ctx, "nonexistent", domain.SectionUpdate{
			Content: map[string]interface{}{"x": 1},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = svc.UpdateSection(ctx, domain.SectionAbout, domain.SectionUpdate{
			Content: map[string]interface{}{"x": 1},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		sections, err := svc.ListSections(ctx)
		require.NoError(t, err)
		assert.Empty(t, sections)
	})

	t.Run("hero update round trip", func(t *testing.T) {
		_, err := svc.SeedDefaults(ctx)
		require.NoError(t, err)

		content := map[string]interface{}{
			"name":     "Grace",
			"title":    "Compiler Engineer",
			"subtitle": "COBOL and beyond",
		}
		updated, err := svc.UpdateSection(ctx, domain.SectionHero, domain.SectionUpdate{Content: content})
		require.NoError(t, err)
		assert.True(t, updated.IsActive)

		got, err := svc.GetSection(ctx, domain.SectionHero)
		require.NoError(t, err)
		assert.Equal(t, content, got.Content)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("deactivated section disappears from reads", func(t *testing.T) {
		off := false
		_, err := svc.UpdateSection(ctx, domain.SectionContact, domain.SectionUpdate{
			Content:  map[string]interface{}{"email": "a@b.c"},
			IsActive: &off,
		})
		require.NoError(t, err)

		_, err = svc.GetSection(ctx, domain.SectionContact)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		sections, err := svc.ListSections(ctx)
		require.NoError(t, err)
		for _, s := range sections {
			assert.NotEqual(t, domain.SectionContact, s.SectionType)
		}
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, err := svc.UpdateSection(ctx, domain.SectionHero, domain.SectionUpdate{Content: map[string]interface{}{}})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestSkillLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	created, err := svc.CreateSkill(ctx, validSkill("Go"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	replacement := validSkill("Go")
	replacement.Proficiency = 5
	replaced, err := svc.ReplaceSkill(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, 5, replaced.Proficiency)

	skills, err := svc.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, 5, skills[0].Proficiency)

	require.NoError(t, svc.DeleteSkill(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteSkill(ctx, created.ID), domain.ErrNotFound)

	_, err = svc.ReplaceSkill(ctx, "missing", validSkill("Rust"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSkill_InvalidIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	bad := validSkill("Go")
	bad.Proficiency = 6
	_, err := svc.CreateSkill(ctx, bad)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "proficiency", verr.Field)

	skills, err := svc.ListSkills(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestCreateSkill_DuplicateID(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	sk := validSkill("Go")
	sk.ID = "fixed"
	_, err := svc.CreateSkill(ctx, sk)
	require.NoError(t, err)

	_, err = svc.CreateSkill(ctx, sk)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProjects(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	repo := "https://github.com/example/shell"
	p := domain.Project{
		Title:       "Shell",
		Description: "A terminal styled portfolio",
		TechStack:   []string{"Go", "Redis"},
		GithubURL:   &repo,
	}
	created, err := svc.CreateProject(ctx, p)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	p.Title = "Shell v2"
	p.Featured = true
	replaced, err := svc.ReplaceProject(ctx, created.ID, p)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.True(t, replaced.CreatedAt.Equal(created.CreatedAt))

	bad := "ftp://example.com"
	p.ImageURL = &bad
	_, err = svc.CreateProject(ctx, p)
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, svc.DeleteProject(ctx, created.ID))
	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestExperience(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	start := "2021-03"
	created, err := svc.CreateExperience(ctx, domain.Experience{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		StartDate:   &start,
		Description: "Owned the payments service",
		IsCurrent:   true,
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Technologies)

	badDate := "March 2021"
	_, err = svc.CreateExperience(ctx, domain.Experience{
		Title: "X", Company: "Y", Location: "Z",
		StartDate:   &badDate,
		Description: "long enough description",
	})
	assert.True(t, domain.IsValidation(err))

	items, err := svc.ListExperience(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestStoreFailureIsUnavailable(t *testing.T) {
	ctx := context.Background()
	svc, mr := setupService(t)

	mr.SetError("ERR simulated outage")

	_, err := svc.ListSkills(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.SeedDefaults(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
