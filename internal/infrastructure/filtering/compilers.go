package filtering

import (
	"context"

	"github.com/bnema/blockrules/internal/filtering/flat"
	"github.com/bnema/blockrules/internal/filtering/ios"
	"github.com/bnema/blockrules/internal/filtering/rules"
)

// FlatCompiler writes flatbuffers rulesets.
type FlatCompiler struct{}

func (FlatCompiler) Compile(ctx context.Context, result *rules.ParseResult, outputPath string) (string, error) {
	return flat.CompileFlatRules(ctx, result, outputPath)
}

func (FlatCompiler) Extension() string { return ".dat" }

// IosCompiler writes content-blocker JSON.
type IosCompiler struct{}

func (IosCompiler) Compile(ctx context.Context, result *rules.ParseResult, outputPath string) (string, error) {
	return ios.CompileIosRules(ctx, result, outputPath)
}

func (IosCompiler) Extension() string { return ".json" }

// CompilerFor returns the compiler producing format.
func CompilerFor(format Format) (RulesetCompiler, error) {
	switch format {
	case FormatFlat:
		return FlatCompiler{}, nil
	case FormatIOS:
		return IosCompiler{}, nil
	default:
		_, err := ParseFormat(string(format))
		return nil, err
	}
}
