package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/themelint/themelint/internal/colorfile"
	"github.com/themelint/themelint/internal/export"
	"github.com/themelint/themelint/internal/reference"
	"github.com/themelint/themelint/internal/render"
	"github.com/themelint/themelint/internal/review"
	"github.com/themelint/themelint/internal/schema"
	"github.com/themelint/themelint/internal/schema/resolve"
	"github.com/themelint/themelint/internal/schema/validate"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// checkFlags holds the parsed flags for the check command.
type checkFlags struct {
	schemaPath string
	format     string
	out        string
	failOn     string
	verbose    bool
}

// exportFlags holds the parsed flags for schema export.
type exportFlags struct {
	schemaPath string
	format     string
	out        string
}

func main() {
	log.SetReportTimestamp(false)

	root := &cobra.Command{
		Use:   "themelint",
		Short: "Validate editor color customizations against a reference schema",
		Long:  "themelint checks a file of key/value color customizations against a derived reference schema, reporting valid, deprecated, and invalid entries.",
	}

	var flags checkFlags
	checkCmd := &cobra.Command{
		Use:   "check <colors-file>",
		Short: "Validate a color customization file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], flags)
		},
	}
	f := checkCmd.Flags()
	f.StringVar(&flags.schemaPath, "schema", "", "Schema document path (defaults to the bundled reference)")
	f.StringVar(&flags.format, "format", "text", "Output format: text, json or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.failOn, "fail-on", "", "Exit 2 if verdict >= this level (deprecated or invalid)")
	f.BoolVar(&flags.verbose, "verbose", false, "Log processing steps to stderr")

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the resolved reference schema",
	}

	var ef exportFlags
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the resolved schema map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(ef)
		},
	}
	e := exportCmd.Flags()
	e.StringVar(&ef.schemaPath, "schema", "", "Schema document path (defaults to the bundled reference)")
	e.StringVar(&ef.format, "format", "json", "Export format: json or yaml")
	e.StringVar(&ef.out, "out", "", "Write output to file instead of stdout")

	diffCmd := &cobra.Command{
		Use:   "diff <old-schema> <new-schema>",
		Short: "Show drift between two schema documents after resolution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}

	schemaCmd.AddCommand(exportCmd, diffCmd)
	root.AddCommand(checkCmd, schemaCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func runCheck(colorsPath string, flags checkFlags) error {
	if flags.verbose {
		log.SetLevel(log.DebugLevel)
	}
	failOn, err := parseFailOn(flags.failOn)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	schemaMap, schemaLabel, err := loadSchemaMap(flags.schemaPath)
	if err != nil {
		return codeError(1, "loading schema: %s", err)
	}
	log.Debug("schema resolved", "source", schemaLabel, "properties", len(schemaMap))

	file, err := colorfile.Load(colorsPath)
	if err != nil {
		return codeError(1, "%s", err)
	}
	log.Debug("colors file loaded", "path", file.Path, "declarations", len(file.Declarations))

	results := validate.Validate(schemaMap, file.Declarations)
	summary := review.Summarize(results)

	report := &schema.Report{
		Tool:    "themelint",
		Version: version,
		Input: schema.Input{
			ColorsFile: file.Path,
			ColorsHash: file.Hash,
			SchemaFile: schemaLabel,
		},
		Summary: summary,
		Results: results,
	}

	out, err := renderer.Render(report)
	if err != nil {
		return codeError(1, "rendering report: %s", err)
	}
	if err := writeOutput(flags.out, out); err != nil {
		return codeError(1, "%s", err)
	}

	if failOn != "" && schema.VerdictOrdinal(summary.Verdict) >= schema.VerdictOrdinal(failOn) {
		return codeError(2, "verdict %s reached --fail-on threshold %s", summary.Verdict, failOn)
	}
	return nil
}

func runExport(flags exportFlags) error {
	schemaMap, _, err := loadSchemaMap(flags.schemaPath)
	if err != nil {
		return codeError(1, "loading schema: %s", err)
	}
	out, err := export.Map(schemaMap, flags.format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	if err := writeOutput(flags.out, out); err != nil {
		return codeError(1, "%s", err)
	}
	return nil
}

func runDiff(oldPath, newPath string) error {
	before, err := exportFile(oldPath)
	if err != nil {
		return codeError(1, "%s: %s", oldPath, err)
	}
	after, err := exportFile(newPath)
	if err != nil {
		return codeError(1, "%s: %s", newPath, err)
	}

	diff := export.Diff(before, after)
	if diff == "" {
		fmt.Println("schemas are identical after resolution")
		return nil
	}
	fmt.Print(diff)
	return nil
}

// exportFile resolves a schema document from disk and dumps it in the
// canonical diff format.
func exportFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := schema.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	m, err := resolve.Document(doc)
	if err != nil {
		return nil, err
	}
	return export.Map(m, "yaml")
}

// loadSchemaMap reads and resolves the schema document at path, falling back
// to the bundled reference when path is empty. The second return is a label
// for reporting.
func loadSchemaMap(path string) (schema.Map, string, error) {
	var data []byte
	label := "builtin"
	if path == "" {
		data = reference.Builtin()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("reading schema file: %w", err)
		}
		label = path
	}

	doc, err := schema.ParseDocument(data)
	if err != nil {
		return nil, "", err
	}
	m, err := resolve.Document(doc)
	if err != nil {
		return nil, "", err
	}
	return m, label, nil
}

// parseFailOn maps the --fail-on flag value to a verdict; empty disables the
// threshold.
func parseFailOn(s string) (schema.Verdict, error) {
	switch s {
	case "":
		return "", nil
	case "deprecated":
		return schema.VerdictDeprecated, nil
	case "invalid":
		return schema.VerdictInvalid, nil
	default:
		return "", fmt.Errorf("--fail-on must be deprecated or invalid, got %q", s)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
