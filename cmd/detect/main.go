package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moneymap/account-detect/internal/balance"
	"github.com/moneymap/account-detect/internal/detect"
	"github.com/moneymap/account-detect/internal/extractor"
	"github.com/moneymap/account-detect/internal/logger"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "filename":
		runFilename(log)
	case "pdf":
		runPDF(log)
	case "headers":
		runHeaders(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Account Detection CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  detect <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  filename  Detect account identity from a statement filename")
	fmt.Println("  pdf       Detect account identity from a PDF statement file")
	fmt.Println("  headers   Detect account identity from CSV/Excel header row")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'detect <command> -h' for more information on a command.")
}

func newDetector(log zerolog.Logger) *detect.Detector {
	return detect.New(log, balance.NewExtractor(log))
}

func runFilename(log zerolog.Logger) {
	fs := flag.NewFlagSet("filename", flag.ExitOnError)
	name := fs.String("name", "", "Statement filename, e.g. chase_checking_1234.csv")
	fs.Parse(os.Args[2:])

	if *name == "" {
		log.Fatal().Msg("Error: --name is required")
	}

	printDetection(log, newDetector(log).FromFilename(*name))
}

func runPDF(log zerolog.Logger) {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	file := fs.String("file", "", "Path to a local PDF statement")
	fs.Parse(os.Args[2:])

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	text, err := extractor.StatementText(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("PDF text extraction failed")
	}

	printDetection(log, newDetector(log).FromPDFContent(text, filepath.Base(*file)))
}

func runHeaders(log zerolog.Logger) {
	fs := flag.NewFlagSet("headers", flag.ExitOnError)
	headers := fs.String("headers", "", "Comma-separated header row, e.g. 'Date,Description,Amount'")
	name := fs.String("name", "", "Source filename (optional)")
	fs.Parse(os.Args[2:])

	if *headers == "" && *name == "" {
		log.Fatal().Msg("Error: --headers or --name is required")
	}

	var row []string
	if *headers != "" {
		for _, h := range strings.Split(*headers, ",") {
			row = append(row, strings.TrimSpace(h))
		}
	}

	printDetection(log, newDetector(log).FromHeaders(row, *name))
}

func printDetection(log zerolog.Logger, detected *detect.DetectedAccount) {
	if detected == nil {
		fmt.Println("No account detected.")
		return
	}
	out, err := json.MarshalIndent(detected, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode detection result")
	}
	fmt.Println(string(out))
}
