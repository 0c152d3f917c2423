// Command namescan classifies candidate name strings (from a file, stdin or
// command-line arguments) into person, company, abbreviation and generic name
// categories and prints the findings in the selected output format.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"name-scan/internal/config"
	"name-scan/internal/formatters"
	_ "name-scan/internal/formatters/csv"
	_ "name-scan/internal/formatters/json"
	_ "name-scan/internal/formatters/text"
	"name-scan/internal/language"
	"name-scan/internal/names"
	"name-scan/internal/observability"
	"name-scan/internal/scan"
	"name-scan/internal/version"

	"golang.org/x/term"
)

func main() {
	filePath := flag.String("file", "", "File to scan, one name per line (.pdf files go through text extraction); reads stdin when omitted")
	languageFlag := flag.String("language", "", "Language for the person name grammars (en, de, fr, es, it)")
	format := flag.String("format", "", "Output format (text, json, csv)")
	configFile := flag.String("config", "", "Path to configuration file")
	dataDir := flag.String("data-dir", "", "Directory holding the lexicon resources")
	describe := flag.Bool("describe", false, "Print the full structural description of every finding")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	verbose := flag.Bool("verbose", false, "Show detailed information")
	debug := flag.Bool("debug", false, "Enable debug output")
	listFormats := flag.Bool("list-formats", false, "List available output formats")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *listFormats {
		formatNames := formatters.List()
		sort.Strings(formatNames)
		fmt.Println("Available formats:")
		for _, name := range formatNames {
			f, _ := formatters.Get(name)
			fmt.Printf("  %-8s %s\n", name, f.Description())
		}
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)

	// Flags explicitly set on the command line win over config file values.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *format == "" {
		*format = cfg.Defaults.Format
	}
	if *languageFlag == "" {
		*languageFlag = cfg.Defaults.Language
	}
	if *dataDir == "" {
		*dataDir = cfg.DataDir
	}
	if !set["no-color"] {
		*noColor = cfg.Defaults.NoColor
	}
	if !set["verbose"] {
		*verbose = cfg.Defaults.Verbose
	}
	if !set["debug"] {
		*debug = cfg.Defaults.Debug
	}
	if !set["describe"] {
		*describe = cfg.Defaults.Describe
	}

	// Disable color when stdout is not a terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		*noColor = true
	}

	lang, err := language.Parse(*languageFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unsupported language %q (supported: en, de, fr, es, it)\n", *languageFlag)
		os.Exit(1)
	}

	level := observability.Off
	if *debug {
		level = observability.Debug
	} else if *verbose {
		level = observability.Metrics
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	classifier := names.New(*dataDir, observer)
	scanner := scan.New(classifier, lang, observer)

	var findings []scan.Finding
	switch {
	case *filePath != "":
		findings, err = scanner.ScanFile(*filePath)
	case flag.NArg() > 0:
		findings, err = scanner.ScanReader(strings.NewReader(strings.Join(flag.Args(), "\n")))
	default:
		findings, err = scanner.ScanReader(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := formatters.Export(*format, findings, formatters.FormatterOptions{
		Verbose:  *verbose,
		NoColor:  *noColor,
		Describe: *describe,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}
