package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdf"
	"pkt.systems/version"

	cookbook "github.com/opengeos/pyqgis-cookbook"
	"github.com/opengeos/pyqgis-cookbook/internal/batch"
	"github.com/opengeos/pyqgis-cookbook/internal/logging"
)

const (
	defaultWidth = 80
	traceIndent  = 4
)

func init() {
	version.SetDefaultModule("github.com/opengeos/pyqgis-cookbook")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath  string
	logLevel    string
	logFormat   string
	outPath     string
	notebookOut string
	title       string
	preview     bool
	width       int
	showVersion bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	cfg := batch.DefaultConfig()

	flags := pflag.NewFlagSet("rst2nb", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "TOML config file for batch mode")
	flags.StringVar(&cfg.RSTDir, "rst-dir", cfg.RSTDir, "Directory holding the RST sources")
	flags.StringVar(&cfg.MarkdownDir, "markdown-dir", cfg.MarkdownDir, "Directory receiving Markdown files")
	flags.StringVar(&cfg.NotebookDir, "notebook-dir", cfg.NotebookDir, "Directory receiving notebooks")
	flags.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Glob selecting source files")
	flags.IntVar(&cfg.TabWidth, "tab-width", cfg.TabWidth, "Tab stop used when expanding tabs")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Documents converted in parallel")
	flags.StringVar(&cfg.CellIDs, "cell-ids", cfg.CellIDs, "Notebook cell ids: stable|random")
	flags.BoolVar(&cfg.ValidateNotebooks, "validate", cfg.ValidateNotebooks, "Check notebooks against the nbformat schema")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console|json|pretty (default depends on stderr)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Markdown output file instead of stdout")
	flags.StringVar(&opts.notebookOut, "notebook", "", "Notebook output file")
	flags.StringVar(&opts.title, "title", "", "Document title (default derived from the input name)")
	flags.BoolVar(&opts.preview, "preview", false, "Render the Markdown to the terminal")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview and summary width (0 uses terminal width if available)")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: rst2nb [flags] [input]\n")
		fmt.Fprintln(stderr, "\nWithout an input every file under --rst-dir is converted.")
		fmt.Fprintln(stderr, "An input is a path, a file:// or http(s):// URL, or - for stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	if opts.configPath != "" {
		loaded, err := batch.LoadConfig(normalizePath(opts.configPath), batch.DefaultConfig())
		if err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return 2
		}
		cfg = mergeFlags(flags, loaded, cfg)
	}

	inputs := flags.Args()
	if len(inputs) > 1 {
		fmt.Fprintln(stderr, "expected at most one input")
		return 2
	}
	if len(inputs) == 1 {
		if err := convertSingle(ctx, inputs[0], cfg, opts, stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "rst2nb: %v\n", err)
			return 1
		}
		return 0
	}

	level := firstNonEmpty(opts.logLevel, cfg.LogLevel)
	format := firstNonEmpty(opts.logFormat, cfg.LogFormat, defaultLogFormat(stderr))
	root, err := logging.New(logging.Config{Level: level, Format: format})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	report, err := batch.Run(ctx, cfg, logging.Named(root, "batch"))
	if err != nil {
		fmt.Fprintf(stderr, "rst2nb: %v\n", err)
		return 1
	}
	width := resolveWidth(opts.width, stdout)
	writeSummary(stdout, report, width)
	writeTraces(stderr, report)
	if !report.OK() {
		return 1
	}
	return 0
}

// mergeFlags layers explicitly set flags over the loaded config file.
func mergeFlags(flags *pflag.FlagSet, loaded, fromFlags batch.Config) batch.Config {
	if flags.Changed("rst-dir") {
		loaded.RSTDir = fromFlags.RSTDir
	}
	if flags.Changed("markdown-dir") {
		loaded.MarkdownDir = fromFlags.MarkdownDir
	}
	if flags.Changed("notebook-dir") {
		loaded.NotebookDir = fromFlags.NotebookDir
	}
	if flags.Changed("pattern") {
		loaded.Pattern = fromFlags.Pattern
	}
	if flags.Changed("tab-width") {
		loaded.TabWidth = fromFlags.TabWidth
	}
	if flags.Changed("workers") {
		loaded.Workers = fromFlags.Workers
	}
	if flags.Changed("cell-ids") {
		loaded.CellIDs = fromFlags.CellIDs
	}
	if flags.Changed("validate") {
		loaded.ValidateNotebooks = fromFlags.ValidateNotebooks
	}
	return loaded
}

func convertSingle(ctx context.Context, raw string, cfg batch.Config, opts options, stdin io.Reader, stdout io.Writer) error {
	doc, err := convertInput(ctx, raw, cfg, opts.title, stdin)
	if err != nil {
		return err
	}

	var outputs []batch.Output
	if opts.notebookOut != "" {
		outputs = append(outputs, batch.Output{Path: normalizePath(opts.notebookOut), Write: doc.WriteNotebook})
	}
	if opts.outPath != "" {
		outputs = append(outputs, batch.Output{Path: normalizePath(opts.outPath), Write: doc.WriteMarkdown})
	}
	if err := batch.WriteFiles(outputs...); err != nil {
		return err
	}

	if opts.preview {
		var md bytes.Buffer
		if err := doc.WriteMarkdown(&md); err != nil {
			return err
		}
		return mdf.Render(mdf.RenderRequest{
			Reader:  &md,
			Writer:  stdout,
			Width:   resolveWidth(opts.width, stdout),
			Theme:   mdf.DefaultTheme(),
			Options: []mdf.RenderOption{mdf.WithOSC8(mdf.DetectOSC8Support())},
		})
	}
	if opts.outPath == "" {
		return doc.WriteMarkdown(stdout)
	}
	return nil
}

func convertInput(ctx context.Context, raw string, cfg batch.Config, title string, stdin io.Reader) (*cookbook.Document, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	convertOpts := cfg.ConvertOptions()
	if raw == "-" {
		return cookbook.Convert(cookbook.ConvertRequest{
			Reader:  stdin,
			Title:   title,
			Options: convertOpts,
		})
	}

	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return cookbook.FetchConvert(ctx, cookbook.HTTPConvertRequest{
				URL:     raw,
				Title:   title,
				Options: convertOpts,
			})
		case "file":
			path = u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
		}
	}

	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cookbook.Convert(cookbook.ConvertRequest{
		Reader:  f,
		Name:    path,
		Title:   title,
		Options: convertOpts,
	})
}

func writeSummary(w io.Writer, report batch.Report, width int) {
	for _, res := range report.Failures() {
		fmt.Fprintln(w, wordwrap.String(fmt.Sprintf("Failed: %s", res.Target.Rel), width))
		fmt.Fprintln(w, indent.String(wordwrap.String(res.Err.Error(), max(width-traceIndent, 1)), traceIndent))
	}
	summary := fmt.Sprintf("Conversion complete: %d successful, %d failed.", report.Succeeded, report.Failed)
	fmt.Fprintln(w, wordwrap.String(summary, width))
}

func writeTraces(w io.Writer, report batch.Report) {
	for _, res := range report.Failures() {
		if res.Trace == "" {
			continue
		}
		fmt.Fprintf(w, "%s:\n", res.Target.Rel)
		fmt.Fprintln(w, indent.String(res.Trace, traceIndent))
	}
}

func defaultLogFormat(w io.Writer) string {
	if isTerminal(w) {
		return "console"
	}
	return "json"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				return tw
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if cw, err := strconv.Atoi(value); err == nil && cw > 0 {
			return cw
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
