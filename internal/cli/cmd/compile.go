package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/filtering/ios"
	"github.com/bnema/blockrules/internal/filtering/rules"
	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
)

var (
	compileOutput    string
	compileFormat    string
	compileKind      string
	compileNakedHost bool
	compileSnippets  bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Compile a filter list into a ruleset",
	Long: `Parse a filter list and compile it into a flat (flatbuffers) or ios
(content-blocker JSON) ruleset. The source is not recorded in the state
database; use 'blockrules update' for configured sources.

Without --output the ruleset is written next to the input, named after
the format (easylist.txt -> easylist.flat.dat). '--output -' prints an
ios ruleset to stdout.

Examples:
  blockrules compile easylist.txt
  blockrules compile --format ios -o easylist.json easylist.txt
  blockrules compile --format ios -o - easylist.txt | jq length`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file, '-' for stdout (ios only)")
	compileCmd.Flags().StringVarP(&compileFormat, "format", "f", "", "ruleset format: flat, ios (default from filtering.format)")
	addParserFlags(compileCmd, &compileKind, &compileNakedHost, &compileSnippets)
}

// defaultOutputPath replaces the extension of input: easylist.txt becomes
// easylist.flat.dat or easylist.ios.json, so a JSON input is never the output.
func defaultOutputPath(input string, format infrafiltering.Format, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(format) + ext
}

func runCompile(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	formatName := compileFormat
	if formatName == "" {
		formatName = string(app.Config.Filtering.Format)
	}
	format, err := infrafiltering.ParseFormat(formatName)
	if err != nil {
		return err
	}
	compiler, err := infrafiltering.CompilerFor(format)
	if err != nil {
		return err
	}

	source, err := adHocSource(cmd, app, args[0], compileKind, compileNakedHost, compileSnippets)
	if err != nil {
		return err
	}
	result, err := parseFile(app, source)
	if err != nil {
		return err
	}
	if result.FetchResult == rules.FetchFileUnsupported {
		return fmt.Errorf("%s contains no supported rule", source.Path)
	}

	if compileOutput == "-" {
		if format != infrafiltering.FormatIOS {
			return fmt.Errorf("only the ios format can be written to stdout")
		}
		out, err := ios.CompileIosRulesToString(app.Ctx(), result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	output := compileOutput
	if output == "" {
		output = defaultOutputPath(source.Path, format, compiler.Extension())
	}
	checksum, err := compiler.Compile(app.Ctx(), result, output)
	if err != nil {
		return fmt.Errorf("compile %s: %w", source.Path, err)
	}

	renderer := styles.NewRulesetRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderParseResult(source.Path, result))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCompiled(output, checksum))
	return nil
}
