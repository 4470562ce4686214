package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/securego/lintreport"
	"github.com/securego/lintreport/report"
	"github.com/securego/lintreport/report/text"
)

const usageExamples = `  # Render a findings document
  $ lintreport findings.yaml

  # Render several documents in a narrow terminal without colors
  $ lintreport --width 80 --no-color a.json b.json

  # Save the findings as json
  $ lintreport --fmt json --out results.json findings.yaml`

// errIssuesFound makes the command exit with 1 without printing anything more
var errIssuesFound = errors.New("issues found")

type options struct {
	config   string
	width    string
	noWrap   bool
	noColor  bool
	exclude  string
	format   string
	output   string
	quiet    bool
	logLevel string
}

// NewRootCmd creates the lintreport command working on the given filesystem
func NewRootCmd(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "lintreport [flags] DOCUMENT...",
		Short: "Render lint findings as a column aligned terminal report",
		Long: `lintreport reads findings documents (YAML or JSON lists of
{file, line, category, title, description}) produced by an analysis engine,
removes duplicate findings per line and prints a report grouped by file.

The command exits with 1 when at least one issue was reported.`,
		Example:       usageExamples,
		Version:       versionString(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, opts.quiet, opts.logLevel)
			if err != nil {
				return err
			}
			r := &runner{fs: fs, stdout: stdout, logger: logger}
			return r.run(cmd, opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "Path to optional config file (YAML or JSON)")
	flags.StringVarP(&opts.width, "width", "w", "", fmt.Sprintf("Overall render width (default %d)", lintreport.DefaultWidth))
	flags.BoolVar(&opts.noWrap, "no-wrap", false, "Do not wrap long cells")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.exclude, "exclude", "", "Exclude categories per path regex, e.g. \"vendor/.*:*;test/.*:Clarity\"")
	flags.StringVarP(&opts.format, "fmt", "f", "text", fmt.Sprintf("Set output format. Valid options are: %v", report.Formats))
	flags.StringVarP(&opts.output, "out", "o", "", "Set output file for results")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only show output when issues are found")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

// Execute runs the command and returns the process exit code
func Execute(fs afero.Fs, stdout, stderr io.Writer, args []string) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd(fs, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer, quiet bool, level string) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	if quiet {
		logger.SetOutput(io.Discard)
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger.WithField("program", "lintreport"), nil
}

type runner struct {
	fs     afero.Fs
	stdout io.Writer
	logger *logrus.Entry
}

func (r *runner) run(cmd *cobra.Command, opts *options, documents []string) error {
	cfg, err := loadConfig(r.fs, opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = lintreport.ParseWidth(opts.width)
	}
	if opts.noWrap {
		cfg.Wrap = false
	}
	if opts.noColor {
		cfg.Color = false
	}
	cliRules, err := lintreport.ParseCLIExcludeRules(opts.exclude)
	if err != nil {
		return err
	}
	filter, err := lintreport.NewPathExclusionFilter(lintreport.MergeExcludeRules(cfg.Exclude, cliRules))
	if err != nil {
		return err
	}
	if !slices.Contains(report.Formats, opts.format) {
		r.logger.WithField("format", opts.format).Warn("unknown output format, using text")
		opts.format = "text"
	}
	if opts.format != "text" {
		cfg.Color = false
	}
	r.logger.WithFields(logrus.Fields{
		"width":  cfg.Width.Value(),
		"wrap":   cfg.Wrap,
		"color":  cfg.Color,
		"filter": filter.String(),
	}).Debug("configuration loaded")

	builder := text.NewReportBuilder(cfg)
	seen := make(map[string]bool)
	for _, doc := range documents {
		groups, err := r.loadDocument(doc)
		if err != nil {
			return err
		}
		for _, group := range groups {
			if group.Path == "" {
				r.logger.WithField("document", doc).Warnf("skipping %d findings without a file", len(group.Findings))
				continue
			}
			findings, excluded := filter.FilterFindings(group.Path, group.Findings)
			if excluded > 0 {
				r.logger.WithFields(logrus.Fields{"file": group.Path, "excluded": excluded}).Debug("findings excluded")
			}
			for _, f := range findings {
				if !f.Category.Known() {
					r.logger.WithFields(logrus.Fields{"file": group.Path, "category": f.Category}).Debug("unknown category")
				}
			}
			var source string
			if !seen[group.Path] {
				seen[group.Path] = true
				source = r.readSource(group.Path)
			}
			builder.AddFile(group.Path, source, findings...)
		}
	}

	result := builder.BuildReport()
	if result.TotalIssues == 0 && opts.quiet {
		return nil
	}
	if err := r.saveOutput(opts.output, opts.format, result); err != nil {
		return err
	}
	r.logger.WithField("issues", result.TotalIssues).Info("report written")

	if result.TotalIssues > 0 {
		return errIssuesFound
	}
	return nil
}

func loadConfig(fs afero.Fs, path string) (lintreport.Config, error) {
	cfg := lintreport.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	if _, err := cfg.ReadFrom(f); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (r *runner) loadDocument(path string) ([]lintreport.FileFindings, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, lintreport.NewDocumentError(path, err)
	}
	defer f.Close()
	groups, err := lintreport.LoadFindings(f)
	if err != nil {
		return nil, lintreport.NewDocumentError(path, err)
	}
	r.logger.WithFields(logrus.Fields{"document": path, "files": len(groups)}).Debug("findings loaded")
	return groups, nil
}

// readSource returns the content of a reported file. Files that cannot be
// read are rendered as empty.
func (r *runner) readSource(path string) string {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.logger.WithError(err).WithField("file", path).Warn("cannot read source, showing empty lines")
		return ""
	}
	return string(data)
}

func (r *runner) saveOutput(filename, format string, data *lintreport.Report) error {
	if filename == "" {
		return report.CreateReport(r.stdout, format, data)
	}
	outfile, err := r.fs.Create(filename)
	if err != nil {
		return err
	}
	defer outfile.Close() // #nosec
	return report.CreateReport(outfile, format, data)
}
