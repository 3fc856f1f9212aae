package cli

import (
	"context"
	"fmt"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/domain/repository"
	corefiltering "github.com/bnema/blockrules/internal/filtering"
	"github.com/bnema/blockrules/internal/infrastructure/config"
	"github.com/bnema/blockrules/internal/logging"
)

// SyncSources makes the stored sources match the configured ones and returns
// them in config order. Sources are matched by name, so their update state
// survives a restart. Stored sources missing from the config are deleted
// together with their artifact.
//
// A source whose path, kind or parser settings changed is marked due.
func SyncSources(
	ctx context.Context,
	repo repository.RuleSourceRepository,
	cfg *config.Config,
) ([]*entity.RuleSource, error) {
	log := logging.FromContext(ctx)

	stored, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	byName := make(map[string]*entity.RuleSource, len(stored))
	for _, s := range stored {
		byName[s.Name] = s
	}

	sources := make([]*entity.RuleSource, 0, len(cfg.Sources))
	for _, sc := range cfg.Sources {
		naked, snippets := sc.Settings(cfg.Filtering)
		kind := entity.RuleSourceKind(sc.Kind)

		source, ok := byName[sc.Name]
		delete(byName, sc.Name)

		switch {
		case !ok:
			source = entity.NewRuleSource(sc.Name, sc.Path, kind)
			source.NakedHostnameIsPureHost = naked
			source.AllowAbpSnippets = snippets
			log.Info().Str("source", source.Name).Str("path", source.Path).Msg("adding rule source")
		case source.Path != sc.Path || source.Kind != kind ||
			source.NakedHostnameIsPureHost != naked || source.AllowAbpSnippets != snippets:
			source.Path = sc.Path
			source.Kind = kind
			source.NakedHostnameIsPureHost = naked
			source.AllowAbpSnippets = snippets
			source.NextFetchAt = nil
			log.Info().Str("source", source.Name).Msg("rule source settings changed")
		default:
			sources = append(sources, source)
			continue
		}

		if err := repo.Save(ctx, source); err != nil {
			return nil, fmt.Errorf("save source %s: %w", source.Name, err)
		}
		sources = append(sources, source)
	}

	for _, orphan := range byName {
		if err := repo.Delete(ctx, orphan.ID); err != nil {
			return nil, fmt.Errorf("delete source %s: %w", orphan.Name, err)
		}
		if orphan.ArtifactPath != "" {
			if err := corefiltering.RemoveArtifact(orphan.ArtifactPath); err != nil {
				log.Warn().Err(err).Str("path", orphan.ArtifactPath).Msg("failed to remove artifact")
			}
		}
		log.Info().Str("source", orphan.Name).Msg("removed rule source no longer configured")
	}

	return sources, nil
}

// SelectSources returns the sources named in names, all of them when names is
// empty. Unknown names are an error.
func SelectSources(sources []*entity.RuleSource, names []string) ([]*entity.RuleSource, error) {
	if len(names) == 0 {
		return sources, nil
	}
	byName := make(map[string]*entity.RuleSource, len(sources))
	for _, s := range sources {
		byName[s.Name] = s
	}
	selected := make([]*entity.RuleSource, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("no source named %q in the configuration", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
