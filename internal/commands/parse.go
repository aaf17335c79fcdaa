package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bankstmt-dev/bankstmt/internal/config"
	"github.com/bankstmt-dev/bankstmt/internal/export"
	"github.com/bankstmt-dev/bankstmt/internal/failures"
	"github.com/bankstmt-dev/bankstmt/internal/statement"
	"github.com/bankstmt-dev/bankstmt/internal/tables"
)

func newParseCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "parse [directory]",
		Short: "Parse every statement table dump in the workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return runParse(absDir, logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log with development output")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runParse(dir string, logger *zap.Logger, out io.Writer) error {
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}

	resultsDir := filepath.Join(dir, cfg.Dirs.Results)
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return fmt.Errorf("creating results dir: %w", err)
	}

	reg := tables.DefaultRegistry()
	files, err := tables.Scan(filepath.Join(dir, cfg.Dirs.Statements), reg)
	if err != nil {
		return err
	}

	sink := failures.NewSink(filepath.Join(dir, cfg.Dirs.Failures))
	parser := statement.NewParser(logger, sink)

	var total statement.Counters
	for _, file := range files {
		counters, err := parseOne(parser, reg, file, resultsDir, cfg.Export.DescriptionDelimiter, logger)
		if err != nil {
			return err
		}
		total.Add(counters)
		fmt.Fprintf(out, "parsed: %24s | %s\n", file.Name, counters.Summary())
	}
	fmt.Fprintf(out, "finish | %s\n", total.Summary())

	return nil
}

// loadConfig reads <dir>/bankstmt.yaml, falling back to the default layout
// when the workspace was never initialized.
func loadConfig(dir string) (*config.Config, error) {
	path := filepath.Join(dir, configFileName)
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseOne(parser *statement.Parser, reg *tables.Registry, file tables.FileInfo, resultsDir, delimiter string, logger *zap.Logger) (statement.Counters, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return statement.Counters{}, fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	docTables, err := reg.Get(file.Format).ReadTables(f)
	if err != nil {
		return statement.Counters{}, fmt.Errorf("reading %s: %w", file.Name, err)
	}

	st, counters := parser.ParseDocument(file.Name, docTables)

	for _, issue := range statement.CheckStatement(st) {
		logger.Warn("statement check",
			zap.String("document", file.Name),
			zap.Int("transaction", issue.Transaction),
			zap.String("issue", issue.Description))
	}

	jsonFile, err := os.Create(filepath.Join(resultsDir, file.Name+".json"))
	if err != nil {
		return statement.Counters{}, fmt.Errorf("creating JSON result: %w", err)
	}
	defer jsonFile.Close()
	if err := export.WriteJSON(jsonFile, st); err != nil {
		return statement.Counters{}, err
	}

	csvFile, err := os.Create(filepath.Join(resultsDir, file.Name+".csv"))
	if err != nil {
		return statement.Counters{}, fmt.Errorf("creating CSV result: %w", err)
	}
	defer csvFile.Close()
	if err := export.WriteTransactionsCSV(csvFile, st.Transactions, delimiter); err != nil {
		return statement.Counters{}, err
	}

	return counters, nil
}
