// Command trustctl inspects a single URL from the terminal.
// Usage: trustctl [-json] [-backend nethttp|chromedp] [-timeout 10s]
// [-download-images] [-config config.yaml] <url>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"trustlens/internal/config"
	"trustlens/internal/images"
	"trustlens/internal/inspector"
	"trustlens/internal/logging"
	"trustlens/internal/model"
	"trustlens/internal/score"
	"trustlens/internal/webclient"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func main() {
	jsonOut := flag.Bool("json", false, "print the raw report as JSON")
	backend := flag.String("backend", "", "web client backend (nethttp or chromedp)")
	timeout := flag.Duration("timeout", 0, "per-fetch timeout (e.g. 10s)")
	downloadImages := flag.Bool("download-images", false, "download page images to disk")
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: trustctl [flags] <url>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	target := flag.Arg(0)

	var fileCfg *config.Config
	if *configPath != "" {
		var err error
		fileCfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
	}

	clientCfg := fileCfg.WebClientConfig()
	if *backend != "" {
		clientCfg.Backend = webclient.Backend(*backend)
	}
	inspCfg := fileCfg.InspectorConfig()
	if *timeout > 0 {
		inspCfg.Fetcher.Timeout = *timeout
	}

	logger := logging.NewStdoutLogger("trustctl")
	webclient.RegisterDefaultBackends()

	wc, err := webclient.New(clientCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating web client: %v\n", err)
		os.Exit(1)
	}

	insp := inspector.NewOwned(inspCfg, wc, logger)
	defer insp.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report := insp.Inspect(ctx, target)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		printReport(target, report)
	}

	if report.Success && *downloadImages && len(report.ImagesFound) > 0 {
		collector := images.NewCollector(fileCfg.CollectorConfig(), wc, logger)
		saved, err := collector.CollectURLs(ctx, report.ImagesFound)
		if err != nil {
			fmt.Fprintf(os.Stderr, "downloading images: %v\n", err)
		} else if !*jsonOut {
			fmt.Printf("Saved %d image(s) to %s\n", len(saved), fileCfg.CollectorConfig().Dir)
		}
	}

	if !report.Success {
		os.Exit(1)
	}
}

func printReport(target string, report *model.InspectionReport) {
	if !report.Success {
		fmt.Printf("%s %s\n", red("inspection failed:"), report.Error)
		return
	}

	scoreStr := fmt.Sprintf("%d/100", report.TrustScore)
	switch {
	case report.TrustScore < score.ThresholdLow:
		scoreStr = red(scoreStr, " (high risk)")
	case report.TrustScore < score.ThresholdHigh:
		scoreStr = yellow(scoreStr, " (medium risk)")
	default:
		scoreStr = green(scoreStr, " (low risk)")
	}

	fmt.Printf("Target:      %s\n", cyan(target))
	fmt.Printf("Trust score: %s\n", scoreStr)

	fmt.Printf("Keywords:    %d\n", len(report.KeywordsDetected))
	for _, kw := range report.KeywordsDetected {
		fmt.Printf("  - %s\n", yellow(kw))
	}

	fmt.Printf("Images:      %d\n", len(report.ImagesFound))

	w := report.WhoisData
	fmt.Printf("Domain:      %s (age %d year(s), registered %s)\n", w.Domain, w.DomainAge, w.CreationDate)
	fmt.Printf("Registrar:   %s, %s\n", w.Registrar, w.Country)

	a := report.WaybackData
	fmt.Printf("Archive:     %d snapshot(s)", a.SnapshotsFound)
	if a.SnapshotsFound > 0 {
		fmt.Printf(", %s to %s (%d days)", a.FirstSnapshot, a.LastSnapshot, a.ChangePeriodDays)
	}
	fmt.Println()
}
