package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/domain/repository"
	"github.com/bnema/blockrules/internal/logging"
)

const ruleSourceColumns = `id, name, path, kind, naked_hostname_is_pure_host, allow_abp_snippets,
	fetch_result, title, homepage, license, version, valid_rules, invalid_rules, unsupported_rules,
	checksum, artifact_path, updated_at, next_fetch_at`

type ruleSourceRepo struct {
	db *sql.DB
}

// NewRuleSourceRepository creates a new SQLite-backed rule source repository.
func NewRuleSourceRepository(db *sql.DB) repository.RuleSourceRepository {
	return &ruleSourceRepo{db: db}
}

func (r *ruleSourceRepo) Save(ctx context.Context, source *entity.RuleSource) error {
	log := logging.FromContext(ctx)
	if err := source.Validate(); err != nil {
		return err
	}

	log.Debug().Str("source", source.Name).Str("id", string(source.ID)).Msg("saving rule source")

	_, err := r.db.ExecContext(ctx, `INSERT INTO rule_sources (`+ruleSourceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			path = excluded.path,
			kind = excluded.kind,
			naked_hostname_is_pure_host = excluded.naked_hostname_is_pure_host,
			allow_abp_snippets = excluded.allow_abp_snippets,
			fetch_result = excluded.fetch_result,
			title = excluded.title,
			homepage = excluded.homepage,
			license = excluded.license,
			version = excluded.version,
			valid_rules = excluded.valid_rules,
			invalid_rules = excluded.invalid_rules,
			unsupported_rules = excluded.unsupported_rules,
			checksum = excluded.checksum,
			artifact_path = excluded.artifact_path,
			updated_at = excluded.updated_at,
			next_fetch_at = excluded.next_fetch_at`,
		string(source.ID), source.Name, source.Path, string(source.Kind),
		source.NakedHostnameIsPureHost, source.AllowAbpSnippets,
		source.FetchResult, source.Title, source.Homepage, source.License, source.Version,
		source.ValidRules, source.InvalidRules, source.UnsupportedRules,
		source.Checksum, source.ArtifactPath,
		nullTime(source.UpdatedAt), nullTime(source.NextFetchAt),
	)
	if err != nil {
		return fmt.Errorf("save rule source %q: %w", source.Name, err)
	}
	return nil
}

func (r *ruleSourceRepo) FindByID(ctx context.Context, id entity.RuleSourceID) (*entity.RuleSource, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ruleSourceColumns+` FROM rule_sources WHERE id = ?`, string(id))
	return scanOptionalRuleSource(row)
}

func (r *ruleSourceRepo) FindByName(ctx context.Context, name string) (*entity.RuleSource, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ruleSourceColumns+` FROM rule_sources WHERE name = ?`, name)
	return scanOptionalRuleSource(row)
}

func (r *ruleSourceRepo) GetAll(ctx context.Context) ([]*entity.RuleSource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+ruleSourceColumns+` FROM rule_sources ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sources []*entity.RuleSource
	for rows.Next() {
		s, err := scanRuleSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

func (r *ruleSourceRepo) Delete(ctx context.Context, id entity.RuleSourceID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rule_sources WHERE id = ?`, string(id))
	return err
}

func (r *ruleSourceRepo) ReplaceTrackerInfos(ctx context.Context, id entity.RuleSourceID, infos []entity.TrackerInfo) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tracker_infos WHERE source_id = ?`, string(id)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tracker_infos
		(source_id, domain, owner_name, owner_display_name, privacy_policy, url, categories)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, info := range infos {
		categories := info.Categories
		if categories == nil {
			categories = []string{}
		}
		encoded, err := json.Marshal(categories)
		if err != nil {
			return fmt.Errorf("encode categories of %s: %w", info.Domain, err)
		}
		if _, err = stmt.ExecContext(ctx, string(id), info.Domain, info.OwnerName, info.OwnerDisplayName,
			info.PrivacyPolicy, info.URL, string(encoded)); err != nil {
			return fmt.Errorf("insert tracker info %s: %w", info.Domain, err)
		}
	}

	return tx.Commit()
}

func (r *ruleSourceRepo) GetTrackerInfos(ctx context.Context, id entity.RuleSourceID) ([]entity.TrackerInfo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT domain, owner_name, owner_display_name, privacy_policy, url, categories
		FROM tracker_infos WHERE source_id = ? ORDER BY domain`, string(id))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var infos []entity.TrackerInfo
	for rows.Next() {
		var info entity.TrackerInfo
		var categories string
		if err := rows.Scan(&info.Domain, &info.OwnerName, &info.OwnerDisplayName,
			&info.PrivacyPolicy, &info.URL, &categories); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(categories), &info.Categories); err != nil {
			return nil, fmt.Errorf("decode categories of %s: %w", info.Domain, err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOptionalRuleSource(row rowScanner) (*entity.RuleSource, error) {
	s, err := scanRuleSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func scanRuleSource(row rowScanner) (*entity.RuleSource, error) {
	var (
		s                    entity.RuleSource
		id, kind             string
		updatedAt, nextFetch sql.NullTime
	)
	err := row.Scan(&id, &s.Name, &s.Path, &kind, &s.NakedHostnameIsPureHost, &s.AllowAbpSnippets,
		&s.FetchResult, &s.Title, &s.Homepage, &s.License, &s.Version,
		&s.ValidRules, &s.InvalidRules, &s.UnsupportedRules,
		&s.Checksum, &s.ArtifactPath, &updatedAt, &nextFetch)
	if err != nil {
		return nil, err
	}
	s.ID = entity.RuleSourceID(id)
	s.Kind = entity.RuleSourceKind(kind)
	s.UpdatedAt = timePtr(updatedAt)
	s.NextFetchAt = timePtr(nextFetch)
	return &s, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
