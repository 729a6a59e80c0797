// Package main provides the CLI entry point for sheetify.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpinaditya/sheetify/pkg/sheetify"
	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
	"github.com/alpinaditya/sheetify/pkg/sheetify/output"
)

var (
	outputPath    string
	csvPath       string
	skipCSV       bool
	noSheetColumn bool
	noAutoFit     bool
	planOnly      bool
	pretty        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetify [input.json]",
		Short: "Convert a JSON document into spreadsheet and CSV tables",
		Long: `sheetify maps an arbitrary JSON document onto a set of tabular sheets
and writes them as a multi-sheet xlsx workbook plus one combined flat CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Workbook output path (default: sheetify_<timestamp>.xlsx)")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Combined CSV output path (default: workbook path with .csv extension)")
	rootCmd.Flags().BoolVar(&skipCSV, "skip-csv", false, "Do not write the combined CSV")
	rootCmd.Flags().BoolVar(&noSheetColumn, "no-sheet-column", false, "Omit the leading __sheet column from the combined CSV")
	rootCmd.Flags().BoolVar(&noAutoFit, "no-autofit", false, "Do not fit workbook column widths to their content")
	rootCmd.Flags().BoolVar(&planOnly, "plan", false, "Print the sheet plan as JSON instead of writing files")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the --plan JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	plan, err := sheetify.PlanFile(inputPath)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	if planOnly {
		jsonData, err := output.ToJSON(plan, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	opts := sheetify.DefaultOptions()
	if noSheetColumn {
		include := false
		opts.IncludeSheetColumn = &include
	}
	if noAutoFit {
		fit := false
		opts.AutoFitColumns = &fit
	}

	xlsxPath := outputPath
	if xlsxPath == "" {
		xlsxPath = fmt.Sprintf("sheetify_%s.xlsx", time.Now().Format("20060102_150405"))
	}

	if err := output.WriteWorkbook(plan, xlsxPath, opts.ShouldAutoFitColumns()); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	combinedPath := ""
	if !skipCSV {
		combinedPath = csvPath
		if combinedPath == "" {
			combinedPath = strings.TrimSuffix(xlsxPath, filepath.Ext(xlsxPath)) + ".csv"
		}
		if err := output.WriteCombinedCSV(plan, combinedPath, opts.ShouldIncludeSheetColumn()); err != nil {
			return fmt.Errorf("failed to write combined csv: %w", err)
		}
	}

	printSummary(plan, xlsxPath, combinedPath)
	return nil
}

func printSummary(plan *models.Plan, xlsxPath, combinedPath string) {
	fmt.Printf("Workbook: %s\n", absPath(xlsxPath))
	if combinedPath != "" {
		fmt.Printf("Combined CSV: %s\n", absPath(combinedPath))
	}
	fmt.Println("Sheets:")
	for _, sheet := range plan.Sheets() {
		fmt.Printf("- %s\n", output.SanitizeSheetName(sheet.Name))
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
