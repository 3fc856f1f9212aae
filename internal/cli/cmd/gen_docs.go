package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/blockrules/internal/infrastructure/config"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat is one output of gen-docs.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "BLOCKRULES",
				Section: "1",
				Source:  "blockrules " + buildInfo.Version,
				Manual:  "Blockrules Manual",
				Date:    &now,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
	"rest": {
		ext:        ".rst",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenReSTTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown docs for every command",
	Long: `Generate documentation from the command definitions.

Formats:
  man       manual pages, installed to $XDG_DATA_HOME/man/man1 by default
  markdown  one .md file per command, in ./docs by default
  rest      one .rst file per command, in ./docs by default

Run 'mandb' afterwards if 'man blockrules' does not find the new pages.`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: "+strings.Join(docFormatNames(), ", "))
}

func docFormatNames() []string {
	names := make([]string, 0, len(docFormats))
	for name := range docFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: %s)", genDocsFormat, strings.Join(docFormatNames(), ", "))
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
	}
	return generateDocs(cmd.OutOrStdout(), rootCmd, format, dir)
}

// generateDocs writes the docs of root into dir and lists the files written.
func generateDocs(out io.Writer, root *cobra.Command, format docFormat, dir string) error {
	if err := os.MkdirAll(dir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output.
	root.DisableAutoGenTag = true

	if err := format.generate(root, dir); err != nil {
		return fmt.Errorf("generate docs: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Generated docs in %s\n", dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) == format.ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
