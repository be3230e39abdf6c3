package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

const (
	DefaultKeyPrefix = "portfolio"

	sectionKeyPart    = "section"    // {prefix}:section:{type} -> section JSON
	skillKeyPart      = "skill"      // {prefix}:skill:{id} -> skill JSON
	projectKeyPart    = "project"    // {prefix}:project:{id} -> project JSON
	experienceKeyPart = "experience" // {prefix}:experience:{id} -> experience JSON

	// {prefix}:index:{name} -> sorted set of ids scored by insertion sequence
	skillsIndex     = "skills"
	projectsIndex   = "projects"
	experienceIndex = "experience"

	maxWatchRetries = 5
)

// RedisStore keeps every record as a JSON document. List order comes from
// per-collection sorted sets scored by a shared sequence counter.
type RedisStore struct {
	client *redis.Client
	prefix string
	opts   options
}

// NewRedisStore creates a RedisStore. An empty prefix selects DefaultKeyPrefix.
func NewRedisStore(client *redis.Client, prefix string, opts ...Option) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		opts:   buildOptions(opts),
	}
}

func (r *RedisStore) Backend() string { return BackendRedis }

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// EnsureSchema is a no-op; Redis needs no schema.
func (r *RedisStore) EnsureSchema(ctx context.Context) error { return nil }

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Sections

func (r *RedisStore) SectionExists(ctx context.Context, sectionType string) (bool, error) {
	n, err := r.client.Exists(ctx, r.sectionKey(sectionType)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check section: %w", err)
	}
	return n > 0, nil
}

func (r *RedisStore) GetActiveSection(ctx context.Context, sectionType string) (*domain.Section, error) {
	data, err := r.client.Get(ctx, r.sectionKey(sectionType)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	var s domain.Section
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal section: %w", err)
	}
	if !s.IsActive {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *RedisStore) ListActiveSections(ctx context.Context) ([]domain.Section, error) {
	keys := make([]string, len(domain.SectionTypes))
	for i, t := range domain.SectionTypes {
		keys[i] = r.sectionKey(t)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	out := make([]domain.Section, 0, len(vals))
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var s domain.Section
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal section: %w", err)
		}
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *RedisStore) UpdateSection(ctx context.Context, sectionType string, upd domain.SectionUpdate) (*domain.Section, error) {
	var updated domain.Section
	err := r.watchReplace(ctx, r.sectionKey(sectionType), func(current []byte) ([]byte, error) {
		// Decode into a fresh value each attempt; json reuses non-nil maps.
		var cur domain.Section
		if err := json.Unmarshal(current, &cur); err != nil {
			return nil, fmt.Errorf("failed to unmarshal section: %w", err)
		}
		cur.Content = upd.Content
		if upd.IsActive != nil {
			cur.IsActive = *upd.IsActive
		}
		cur.UpdatedAt = stamp(r.opts.now)
		if cur.UpdatedAt.Before(cur.CreatedAt) {
			cur.UpdatedAt = cur.CreatedAt
		}
		data, err := json.Marshal(cur)
		if err != nil {
			return nil, err
		}
		updated = cur
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Skills

func (r *RedisStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return listIndexed[domain.Skill](ctx, r, skillsIndex, skillKeyPart)
}

func (r *RedisStore) CreateSkill(ctx context.Context, s *domain.Skill) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal skill: %w", err)
	}
	return r.insert(ctx, skillsIndex, r.docKey(skillKeyPart, s.ID), s.ID, data)
}

func (r *RedisStore) ReplaceSkill(ctx context.Context, id string, s *domain.Skill) error {
	s.ID = id
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal skill: %w", err)
	}

	ok, err := r.client.SetXX(ctx, r.docKey(skillKeyPart, id), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to replace skill: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RedisStore) DeleteSkill(ctx context.Context, id string) error {
	return r.remove(ctx, skillsIndex, skillKeyPart, id)
}

// Projects

func (r *RedisStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return listIndexed[domain.Project](ctx, r, projectsIndex, projectKeyPart)
}

func (r *RedisStore) CreateProject(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = stamp(r.opts.now)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return r.insert(ctx, projectsIndex, r.docKey(projectKeyPart, p.ID), p.ID, data)
}

func (r *RedisStore) ReplaceProject(ctx context.Context, id string, p *domain.Project) error {
	return r.watchReplace(ctx, r.docKey(projectKeyPart, id), func(current []byte) ([]byte, error) {
		var existing domain.Project
		if err := json.Unmarshal(current, &existing); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project: %w", err)
		}
		p.ID = id
		p.CreatedAt = existing.CreatedAt
		return json.Marshal(p)
	})
}

func (r *RedisStore) DeleteProject(ctx context.Context, id string) error {
	return r.remove(ctx, projectsIndex, projectKeyPart, id)
}

// Experience

func (r *RedisStore) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	items, err := listIndexed[domain.Experience](ctx, r, experienceIndex, experienceKeyPart)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Technologies == nil {
			items[i].Technologies = []string{}
		}
	}
	return items, nil
}

func (r *RedisStore) CreateExperience(ctx context.Context, e *domain.Experience) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal experience: %w", err)
	}
	return r.insert(ctx, experienceIndex, r.docKey(experienceKeyPart, e.ID), e.ID, data)
}

// Seed writes the whole batch in one MULTI. Sections use SETNX so an
// existing section of the same type is kept.
func (r *RedisStore) Seed(ctx context.Context, batch domain.SeedBatch) (domain.SeedResult, error) {
	var res domain.SeedResult
	now := stamp(r.opts.now)

	n := int64(len(batch.Skills) + len(batch.Projects))
	var seq int64
	if n > 0 {
		last, err := r.client.IncrBy(ctx, r.seqKey(), n).Result()
		if err != nil {
			return res, fmt.Errorf("failed to allocate sequence: %w", err)
		}
		seq = last - n
	}

	sectionCmds := make([]*redis.BoolCmd, 0, len(batch.Sections))
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i := range batch.Sections {
			s := &batch.Sections[i]
			if s.ID == "" {
				s.ID = uuid.New().String()
			}
			s.CreatedAt, s.UpdatedAt = now, now
			data, err := json.Marshal(s)
			if err != nil {
				return fmt.Errorf("failed to marshal section: %w", err)
			}
			sectionCmds = append(sectionCmds, pipe.SetNX(ctx, r.sectionKey(s.SectionType), data, 0))
		}

		for i := range batch.Skills {
			s := &batch.Skills[i]
			if s.ID == "" {
				s.ID = uuid.New().String()
			}
			data, err := json.Marshal(s)
			if err != nil {
				return fmt.Errorf("failed to marshal skill: %w", err)
			}
			seq++
			pipe.Set(ctx, r.docKey(skillKeyPart, s.ID), data, 0)
			pipe.ZAdd(ctx, r.indexKey(skillsIndex), redis.Z{Score: float64(seq), Member: s.ID})
		}

		for i := range batch.Projects {
			p := &batch.Projects[i]
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			p.CreatedAt = now
			data, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to marshal project: %w", err)
			}
			seq++
			pipe.Set(ctx, r.docKey(projectKeyPart, p.ID), data, 0)
			pipe.ZAdd(ctx, r.indexKey(projectsIndex), redis.Z{Score: float64(seq), Member: p.ID})
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("failed to seed: %w", err)
	}

	for _, cmd := range sectionCmds {
		if cmd.Val() {
			res.Sections++
		}
	}
	res.Skills = len(batch.Skills)
	res.Projects = len(batch.Projects)
	return res, nil
}

// insert stores a new document and indexes it. An existing key is a conflict.
func (r *RedisStore) insert(ctx context.Context, index, key, id string, data []byte) error {
	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}

	var setCmd *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		setCmd = pipe.SetNX(ctx, key, data, 0)
		pipe.ZAddNX(ctx, r.indexKey(index), redis.Z{Score: float64(seq), Member: id})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", key, err)
	}
	if !setCmd.Val() {
		return domain.ErrConflict
	}
	return nil
}

func (r *RedisStore) remove(ctx context.Context, index, part, id string) error {
	var delCmd *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		delCmd = pipe.Del(ctx, r.docKey(part, id))
		pipe.ZRem(ctx, r.indexKey(index), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", part, err)
	}
	if delCmd.Val() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// watchReplace rewrites an existing document under WATCH, retrying when a
// concurrent writer touches the key first.
func (r *RedisStore) watchReplace(ctx context.Context, key string, rewrite func(current []byte) ([]byte, error)) error {
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}

		next, err := rewrite(current)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to update %s: %w", key, err)
		}
		return err
	}
	return fmt.Errorf("failed to update %s: too many concurrent writers", key)
}

func listIndexed[T any](ctx context.Context, r *RedisStore, index, part string) ([]T, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(index), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", index, err)
	}

	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(part, id)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", index, err)
	}

	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document; skip it
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s entry: %w", part, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// Helper methods for key generation
func (r *RedisStore) sectionKey(sectionType string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, sectionKeyPart, sectionType)
}

func (r *RedisStore) docKey(part, id string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, part, id)
}

func (r *RedisStore) indexKey(index string) string {
	return fmt.Sprintf("%s:index:%s", r.prefix, index)
}

func (r *RedisStore) seqKey() string {
	return fmt.Sprintf("%s:seq", r.prefix)
}
