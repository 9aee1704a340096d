package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/calculation"
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/config"
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/output"
	"github.com/Kai-23100/uganda-tax-full-mvp/internal/returns"
)

var (
	inputPath  string
	formatName string
	outputPath string
	saveReport bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taxengine",
		Short: "Uganda income tax determination engine",
		Long: `taxengine computes Uganda statutory income tax from a YAML input file:
P&L classification, statutory adjustments, the chargeable income reduction
chain, flat or progressive gross tax, and credit offsets.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "Run a tax computation from a YAML input file",
		RunE:  runCompute,
	}
	computeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to YAML input file (required)")
	computeCmd.Flags().StringVarP(&formatName, "format", "f", "console",
		fmt.Sprintf("output format: %s (aliases: %s)",
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", ")))
	computeCmd.Flags().BoolVar(&saveReport, "save", false, "also write the output to a timestamped file")
	_ = computeCmd.MarkFlagRequired("input")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Compute and export a filing-ready return record as CSV",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to YAML input file (required)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "destination CSV path (default stdout)")
	_ = exportCmd.MarkFlagRequired("input")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example input file",
		RunE:  runExample,
	}

	rootCmd.AddCommand(computeCmd, exportCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCompute(cmd *cobra.Command, args []string) error {
	assessment, err := computeAssessment(inputPath)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)",
			formatName, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	data, err := formatter.Format(assessment)
	if err != nil {
		return fmt.Errorf("formatting assessment: %w", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}
	if saveReport {
		filename, err := output.WriteFormatted(formatter, assessment, fileExtension(formatter.Name()))
		if err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", filename)
	}
	return nil
}

func fileExtension(format string) string {
	switch format {
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	assessment, err := computeAssessment(inputPath)
	if err != nil {
		return err
	}

	formCode, payload := returns.PayloadFrom(*assessment)
	record, err := returns.Build(formCode, payload)
	if err != nil {
		return fmt.Errorf("building %s return: %w", formCode, err)
	}
	data, err := output.ReturnCSV(record)
	if err != nil {
		return fmt.Errorf("rendering %s return: %w", formCode, err)
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("Return %s written to %s\n", formCode, outputPath)
	return nil
}

func runExample(cmd *cobra.Command, args []string) error {
	example := config.NewInputParser().CreateExampleInput()
	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("marshaling example input: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// computeAssessment loads, validates, and computes one assessment end to end.
func computeAssessment(path string) (*domain.Assessment, error) {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	engine := calculation.NewComputationEngine()
	if verbose {
		engine.SetLogger(stderrLogger{})
	}

	computation := in.Computation
	if in.Ledger != nil {
		computation = calculation.ApplyTotals(computation, calculation.ClassifyLedger(in.Ledger.Dataset()))
	}
	result, err := engine.Compute(computation)
	if err != nil {
		return nil, fmt.Errorf("computing tax: %w", err)
	}

	return &domain.Assessment{
		Taxpayer: in.Taxpayer,
		Input:    computation,
		Result:   result,
	}, nil
}

// stderrLogger writes engine trace output to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "DEBUG: "+format+"\n", args...)
}
func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
}
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
}
