package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli"
	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/filtering/rules"
	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
)

var (
	parseKind      string
	parseNakedHost bool
	parseSnippets  bool
	parseJSON      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a filter list and show what it contains",
	Long: `Parse a filter list, hosts file or DuckDuckGo tracker list and print its
metadata and rule counts. Nothing is written.

Examples:
  blockrules parse easylist.txt
  blockrules parse --kind duckduckgo tds.json
  blockrules parse --naked-host --json hosts.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addParserFlags(parseCmd, &parseKind, &parseNakedHost, &parseSnippets)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the summary as JSON")
}

// addParserFlags registers the flags shared by parse and compile.
func addParserFlags(cmd *cobra.Command, kind *string, nakedHost, snippets *bool) {
	cmd.Flags().StringVarP(kind, "kind", "k", string(entity.RuleSourceKindAuto), "source kind: auto, adblock, duckduckgo")
	cmd.Flags().BoolVar(nakedHost, "naked-host", false, "treat bare hostnames as ||host^ (default from filtering.naked_hostname_is_pure_host)")
	cmd.Flags().BoolVar(snippets, "snippets", false, "accept #$# snippet rules (default from filtering.allow_abp_snippets)")
}

// adHocSource builds a source for a file given on the command line. Flags
// that were not set fall back to the filtering defaults of the config.
func adHocSource(cmd *cobra.Command, app *cli.App, path, kind string, nakedHost, snippets bool) (*entity.RuleSource, error) {
	source := entity.NewRuleSource(filepath.Base(path), path, entity.RuleSourceKind(kind))
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("%w: kind must be one of auto, adblock, duckduckgo (got %q)", err, kind)
	}

	source.NakedHostnameIsPureHost = app.Config.Filtering.NakedHostnameIsPureHost
	if cmd.Flags().Changed("naked-host") {
		source.NakedHostnameIsPureHost = nakedHost
	}
	source.AllowAbpSnippets = app.Config.Filtering.AllowAbpSnippets
	if cmd.Flags().Changed("snippets") {
		source.AllowAbpSnippets = snippets
	}
	return source, nil
}

// parseFile reads and parses path as source.
func parseFile(app *cli.App, source *entity.RuleSource) (*rules.ParseResult, error) {
	data, err := os.ReadFile(source.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source.Path, err)
	}
	return infrafiltering.ParseSource(app.Ctx(), source, data), nil
}

// parseSummary is the --json output of the parse command.
type parseSummary struct {
	Path                    string                       `json:"path"`
	FetchResult             string                       `json:"fetch_result"`
	Metadata                rules.AdBlockMetadata        `json:"metadata"`
	RulesInfo               rules.RulesInfo              `json:"rules_info"`
	RequestFilterRules      int                          `json:"request_filter_rules"`
	CosmeticRules           int                          `json:"cosmetic_rules"`
	ScriptletInjectionRules int                          `json:"scriptlet_injection_rules"`
	TrackerInfos            map[string]rules.TrackerInfo `json:"tracker_infos,omitempty"`
}

func newParseSummary(path string, result *rules.ParseResult) parseSummary {
	return parseSummary{
		Path:                    path,
		FetchResult:             result.FetchResult.String(),
		Metadata:                result.Metadata,
		RulesInfo:               result.RulesInfo,
		RequestFilterRules:      len(result.RequestFilterRules),
		CosmeticRules:           len(result.CosmeticRules),
		ScriptletInjectionRules: len(result.ScriptletInjectionRules),
		TrackerInfos:            result.TrackerInfos,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	source, err := adHocSource(cmd, app, args[0], parseKind, parseNakedHost, parseSnippets)
	if err != nil {
		return err
	}
	result, err := parseFile(app, source)
	if err != nil {
		return err
	}

	if parseJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(newParseSummary(source.Path, result))
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRulesetRenderer(app.Theme).RenderParseResult(source.Path, result))
	return nil
}
