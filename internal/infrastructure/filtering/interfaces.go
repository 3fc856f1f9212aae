package filtering

import (
	"context"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/filtering/rules"
)

// RulesetCompiler turns a ParseResult into an artifact on disk.
// This interface lets the handler be tested without writing real rulesets.
type RulesetCompiler interface {
	// Compile writes the artifact to outputPath and returns its checksum.
	Compile(ctx context.Context, result *rules.ParseResult, outputPath string) (string, error)

	// Extension is the file extension of the artifact, including the dot.
	Extension() string
}

// SourceUpdater re-runs the parse and compile pipeline of one source.
type SourceUpdater interface {
	Update(ctx context.Context, source *entity.RuleSource) (*UpdateResult, error)
}

// Ensure concrete types implement the interfaces.
var (
	_ RulesetCompiler = FlatCompiler{}
	_ RulesetCompiler = IosCompiler{}
	_ SourceUpdater   = (*Handler)(nil)
)
