package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopverdict/shopverdict/internal/config"
	"github.com/shopverdict/shopverdict/internal/engine"
	"github.com/shopverdict/shopverdict/internal/formatter"
	"github.com/shopverdict/shopverdict/internal/scraper"
	"github.com/shopverdict/shopverdict/pkg/logger"
)

func main() {
	var (
		productURL  = flag.String("url", "", "product page URL to scrape reviews from")
		reviewsPath = flag.String("reviews", "", "path to a file with one review per line (- for stdin)")
		description = flag.String("description", "", "product description to analyze for usability")
		configPath  = flag.String("config", "", "path to config.yaml (defaults are used when absent)")
		noHelper    = flag.Bool("no-helper", false, "disable the linguistic helper and use the pure fallback path")
		format      = flag.String("format", "json", "output format: json or text")
		pretty      = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("config: %v", err)
		os.Exit(1)
	}

	var opts []engine.Option
	if *noHelper || cfg.Analysis.DisableLinguisticHelper {
		opts = append(opts, engine.WithoutHelper())
	}
	eng := engine.New(opts...)

	if *description != "" {
		verdict := eng.AnalyzeDescription(*description)
		if *format == "text" {
			fmt.Print(formatter.FormatUsability(verdict))
			return
		}
		emit(verdict, *pretty, log)
		return
	}

	reviews, err := collectReviews(cfg, *productURL, *reviewsPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if len(reviews) < cfg.Analysis.MinReviews {
		log.Errorf("need at least %d reviews, got %d", cfg.Analysis.MinReviews, len(reviews))
		os.Exit(1)
	}

	log.Infof("analyzing %d reviews (%s mode)", len(reviews), eng.HelperMode())
	verdict := eng.AnalyzeReviews(reviews)
	if *format == "text" {
		fmt.Print(formatter.FormatVerdict(verdict))
		return
	}
	emit(verdict, *pretty, log)
}

func collectReviews(cfg *config.Config, productURL, reviewsPath string) ([]string, error) {
	switch {
	case productURL != "":
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Scraper.TimeoutSeconds+5)*time.Second)
		defer cancel()
		return scraper.New(cfg.Scraper).FetchReviews(ctx, productURL)
	case reviewsPath != "":
		return readLines(reviewsPath)
	default:
		return nil, fmt.Errorf("one of -url, -reviews or -description is required")
	}
}

func readLines(path string) ([]string, error) {
	var file *os.File
	if path == "-" {
		file = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open reviews file: %w", err)
		}
		defer f.Close()
		file = f
	}

	var lines []string
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}
	return lines, nil
}

func emit(v any, pretty bool, log *logger.Logger) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		log.Errorf("encode: %v", err)
		os.Exit(1)
	}
}
