package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

// SeedDefaults writes the default content when the store has never been
// seeded. The hero section is the only sentinel: if a hero section exists in
// any state the whole batch is skipped, even when skills or projects are
// missing. Two processes starting at once against an empty store can both
// pass the check.
func (s *ContentService) SeedDefaults(ctx context.Context) (domain.SeedResult, error) {
	return s.Seed(ctx, domain.DefaultSeed())
}

// Seed runs the sentinel check and writes batch through the same validation
// as user input.
func (s *ContentService) Seed(ctx context.Context, batch domain.SeedBatch) (domain.SeedResult, error) {
	exists, err := s.store.SectionExists(ctx, domain.SectionHero)
	if err != nil {
		return domain.SeedResult{}, s.storeFailure("seed_check", err)
	}
	if exists {
		s.log.Info("seed skipped, hero section already present")
		return domain.SeedResult{Skipped: true}, nil
	}

	if err := s.validateBatch(&batch); err != nil {
		return domain.SeedResult{}, err
	}

	res, err := s.store.Seed(ctx, batch)
	if err != nil {
		return domain.SeedResult{}, s.storeFailure("seed", err)
	}

	s.log.Info("default content seeded",
		"sections", res.Sections,
		"skills", res.Skills,
		"projects", res.Projects,
	)
	return res, nil
}

func (s *ContentService) validateBatch(batch *domain.SeedBatch) error {
	for i := range batch.Sections {
		if err := s.validate.Section(&batch.Sections[i]); err != nil {
			return errors.Wrapf(err, "seed section %q", batch.Sections[i].SectionType)
		}
	}
	for i := range batch.Skills {
		if err := s.validate.Skill(&batch.Skills[i]); err != nil {
			return errors.Wrapf(err, "seed skill %q", batch.Skills[i].Name)
		}
	}
	for i := range batch.Projects {
		if err := s.validate.Project(&batch.Projects[i]); err != nil {
			return errors.Wrapf(err, "seed project %q", batch.Projects[i].Title)
		}
	}
	return nil
}
