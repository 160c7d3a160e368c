// dd1750-convert is a one-shot command-line converter: it extracts the
// line items from a BOM PDF and writes the completed DD Form 1750.
//
// Usage:
//
//	dd1750-convert -bom unit-bom.pdf -template dd1750.pdf -output DD1750.pdf
//
// Options:
//
//	-bom string        Path to the BOM PDF (required)
//	-template string   Path to the DD1750 template PDF (required)
//	-output string     Output PDF path (required)
//	-start-page int    0-based BOM page to start extraction from (default 0)
//	-level string      Level-code rule: 'prefix' accepts B, B9, B10, ...;
//	                   'exact' accepts only a bare B (default "prefix")
//	-overwrite         Overwrite the output file if it exists
//	-quiet             Suppress the summary line
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/formgrid/dd1750/internal/bom"
	"github.com/formgrid/dd1750/internal/form"
)

const maxFileSize = 50 * 1024 * 1024

func main() {
	bomPath := flag.String("bom", "", "Path to the BOM PDF")
	templatePath := flag.String("template", "", "Path to the DD1750 template PDF")
	outputPath := flag.String("output", "", "Output PDF path")
	startPage := flag.Int("start-page", 0, "0-based BOM page to start extraction from")
	levelRule := flag.String("level", "prefix", "Level-code rule: 'prefix' or 'exact'")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output file if it exists")
	quiet := flag.Bool("quiet", false, "Suppress the summary line")
	flag.Parse()

	if *bomPath == "" || *templatePath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -bom, -template and -output are all required")
		flag.Usage()
		os.Exit(1)
	}
	if *startPage < 0 {
		fmt.Fprintln(os.Stderr, "Error: -start-page must be non-negative")
		os.Exit(1)
	}

	var policy bom.LevelPolicy
	switch *levelRule {
	case "prefix":
		policy = bom.LevelPrefixB
	case "exact":
		policy = bom.LevelExactB
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown level rule %q (use 'prefix' or 'exact')\n", *levelRule)
		os.Exit(1)
	}

	if _, err := os.Stat(*outputPath); err == nil && !*overwrite {
		fmt.Fprintf(os.Stderr, "Output file %s already exists. Use -overwrite to overwrite.\n", *outputPath)
		os.Exit(1)
	}

	extractor := bom.NewExtractor(maxFileSize, bom.WithLevelPolicy(policy))
	generator := form.NewGenerator(extractor)

	result, err := generator.GenerateFile(*bomPath, *templatePath, *outputPath, *startPage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		if result.ItemCount == 0 {
			fmt.Printf("No items found in BOM; wrote bare template page to %s\n", *outputPath)
		} else {
			fmt.Printf("Wrote %s: %d items on %d page(s)\n", *outputPath, result.ItemCount, result.Pages)
		}
	}
}
