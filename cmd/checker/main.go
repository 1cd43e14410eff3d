// Checker runs the quick-check rules from the command line, for workshops
// where a browser is not handy. Text comes from the arguments or stdin.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"care-lab/guard"
	"care-lab/triage"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	// CHECKER_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"CHECKER_COLOURS" default:"true"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	text := strings.Join(os.Args[1:], " ")
	if strings.TrimSpace(text) == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Reading stdin failed: %v", err)
		}
		text = string(raw)
	}

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	engine := triage.NewEngine(logger)

	assessment, err := engine.Assess(text)
	if err != nil {
		log.Fatalf("Quick check failed: %v", err)
	}

	header := "  ====== Quick Check (rule-based, non-diagnostic) ======"
	if config.Colours {
		if assessment.Urgent {
			header = color.New(color.BgBlack, color.FgRed).Render(header)
		} else {
			header = color.New(color.BgBlack, color.FgGreen).Render(header)
		}
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, flag := range assessment.RedFlags {
		table.Append([]string{"RED FLAG", flag})
	}
	for _, suggestion := range assessment.Suggestions {
		table.Append([]string{"SUGGESTION", suggestion})
	}
	table.Render()

	if assessment.Urgent {
		fmt.Println()
		fmt.Println(triage.UrgentHeadline)
		for i, step := range triage.UrgentSteps {
			fmt.Printf("%d. %s\n", i+1, step)
		}
	}
	if assessment.Lang != "" && assessment.Lang != "en" {
		fmt.Println()
		fmt.Println(triage.EnglishOnlyNotice)
	}

	// Belt and braces: prove the printed output carried no advice wording.
	adviceGuard, err := guard.NewGuard(guard.DefaultForbiddenPhrases(), '*', logger)
	if err != nil {
		log.Fatalf("Guard init failed: %v", err)
	}
	for _, suggestion := range assessment.Suggestions {
		if found := adviceGuard.Scan(suggestion); len(found) > 0 {
			log.Fatalf("Forbidden advice wording in output: %v", found)
		}
	}
}
