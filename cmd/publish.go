package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/date"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// reportTask is one published markdown file. It is the data of the front
// matter template.
type reportTask struct {
	Report string
	Period date.Range
	body   string
}

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "writes the dashboard sections as markdown files" }

func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>]

  Writes the dashboard and each of its sections to a markdown file in the
  output directory: dashboard.md, summary.md, yearly.md, positions.md and
  values.md.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	report, status := analyze(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	if err := publish(c.outputDir, frontMatterTpl, publishTasks(report)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// publishTasks lists the files to publish for report.
func publishTasks(report *tradestats.Report) []reportTask {
	return []reportTask{
		{Report: "dashboard", Period: report.Range, body: renderer.DashboardMarkdown(report, renderer.DashboardOptions{SortByWeight: true, ValuesPeriod: date.Monthly})},
		{Report: "summary", Period: report.Range, body: renderer.SummaryMarkdown(report)},
		{Report: "yearly", Period: report.Range, body: renderer.YearlyMarkdown(report)},
		{Report: "positions", Period: report.Range, body: renderer.PositionsMarkdown(report, true)},
		{Report: "values", Period: report.Range, body: renderer.ValuesMarkdown(report, date.Daily)},
	}
}

// publish writes each task to <dir>/<report>.md, prefixed by the front matter if any.
func publish(dir string, frontMatterTpl *template.Template, tasks []reportTask) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, task := range tasks {
		md := task.body
		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				return fmt.Errorf("failed to render front matter for %s report: %w", task.Report, err)
			}
			md = fm + "\n" + md
		}

		fullPath := filepath.Join(dir, task.Report+".md")
		if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", fullPath, err)
		}
		log.Info().Str("file", fullPath).Stringer("period", task.Period).Msgf("generated %s report", task.Report)
	}
	return nil
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
