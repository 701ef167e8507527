package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atelierpage/traduire/internal/cli"
	"github.com/atelierpage/traduire/internal/language"
	"github.com/atelierpage/traduire/internal/pipeline"
	"github.com/atelierpage/traduire/internal/store"
)

func runTranslate(args []string) int {
	if len(args) == 0 {
		printTranslateUsage()
		return 2
	}

	mode := strings.ToLower(strings.TrimSpace(args[0]))
	switch mode {
	case "auto", "manual":
	default:
		fmt.Fprintf(os.Stderr, "Unknown translate mode: %s\n\n", args[0])
		printTranslateUsage()
		return 2
	}

	fs := flag.NewFlagSet("translate "+mode, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Minute, "Batch timeout")
	fromLang := fs.String("from", "", "Source language code, or auto (default from config)")
	toLang := fs.String("to", "", "Target language code (default from config)")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		if mode == "auto" {
			fmt.Fprintln(os.Stderr, "translate auto requires a database URL argument")
		} else {
			fmt.Fprintln(os.Stderr, "translate manual requires at least one page id argument")
		}
		printTranslateUsage()
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, logger, service, err := bootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	from := strings.TrimSpace(*fromLang)
	if from == "" {
		from = cfg.DefaultSourceLang
	}
	to := strings.TrimSpace(*toLang)
	if to == "" {
		to = cfg.DefaultTargetLang
	}
	if !language.IsValidSource(from) {
		fmt.Fprintf(os.Stderr, "--from %q is not a supported source language\n", from)
		return 2
	}
	if !language.IsValidTarget(to) {
		fmt.Fprintf(os.Stderr, "--to %q is not a supported target language\n", to)
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var outcomes []pipeline.Outcome
	if mode == "auto" {
		outcomes, err = service.RunAuto(ctx, fs.Arg(0), from, to)
		if err != nil {
			if errors.Is(err, store.ErrInvalidLocator) {
				fmt.Fprintf(os.Stderr, "Database URL does not contain a valid database id: %s\n", fs.Arg(0))
				return 2
			}
			logger.Error().Err(err).Msg("auto translation batch failed")
			fmt.Fprintf(os.Stderr, "Translate failed: %v\n", err)
			return 1
		}
	} else {
		outcomes, err = service.RunManual(ctx, fs.Args(), from, to)
		if err != nil {
			logger.Error().Err(err).Msg("manual translation batch failed")
			fmt.Fprintf(os.Stderr, "Translate failed: %v\n", err)
			return 1
		}
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Status == pipeline.OutcomeError {
			failed++
			fmt.Printf("%s\t%s\t%s\n", outcome.PageID, outcome.Status, outcome.ErrorMessage)
			continue
		}
		fmt.Printf("%s\t%s\n", outcome.PageID, outcome.Status)
	}
	fmt.Printf("translate mode=%s from=%s to=%s pages=%d failed=%d\n", mode, from, to, len(outcomes), failed)

	if failed > 0 {
		return 1
	}
	return 0
}

func printTranslateUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  traduire translate auto <database-url> [--from fr] [--to nl] [--env .env] [--timeout 30m]")
	fmt.Fprintln(os.Stderr, "  traduire translate manual <page-id> [<page-id>...] [--from fr] [--to nl] [--env .env] [--timeout 30m]")
}
