package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/estimate"
	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, pdf")
	outputFileFlag := flag.String("output", "", "output file (defaults to stdout, or "+constants.DefaultPDFOutputFile+" for pdf)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	outputFile := outputDestination(outputFormat, *outputFileFlag, conf.Output.File)

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results, err := estimate.GetEstimates(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute estimates",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := render(outputFormat, outputFile, results); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.Error(err),
		)
	}
	if outputFormat == constants.OutputFormatPDF {
		logger.Info("wrote amortization schedule",
			zap.String("op", "main"),
			zap.String("file", pdfPath(outputFile)),
		)
	}
}

// render writes results in the requested format. Text formats go to stdout
// unless a file is named; a PDF always goes to a file and covers the first
// estimate only.
func render(format, file string, results []estimate.Estimate) error {
	var buf bytes.Buffer
	switch format {
	case constants.OutputFormatPretty:
		if err := output.PrettyFormat(&buf, results); err != nil {
			return err
		}
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(&buf, results); err != nil {
			return err
		}
	case constants.OutputFormatPDF:
		if len(results) == 0 {
			return fmt.Errorf("no active scenarios to render")
		}
		if err := output.PDFFormat(&buf, results[0]); err != nil {
			return err
		}
		file = pdfPath(file)
	}

	if file == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return writeFile(file, buf.Bytes())
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// outputDestination picks the file to write. output.file names the PDF
// destination only; text formats leave stdout when -output says so.
func outputDestination(format, flagFile, configFile string) string {
	if flagFile != "" {
		return flagFile
	}
	if format == constants.OutputFormatPDF {
		return configFile
	}
	return ""
}

func pdfPath(file string) string {
	if file == "" {
		return constants.DefaultPDFOutputFile
	}
	return file
}
