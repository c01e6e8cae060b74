package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/terraincognita07/healthlog/internal/dates"
	"github.com/terraincognita07/healthlog/internal/i18n"
	"github.com/terraincognita07/healthlog/internal/models"
	"github.com/terraincognita07/healthlog/internal/services"
	"github.com/terraincognita07/healthlog/internal/state"
)

func newStatsCommand(options *rootOptions) *cobra.Command {
	var month string
	var lang string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the monthly summary and cycle statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(options, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tracker, closeDatabase, err := s.openTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDatabase()

			manager, err := i18n.NewManager(s.config.DefaultLanguage)
			if err != nil {
				return err
			}
			language := tracker.Language()
			if lang != "" {
				language = manager.NormalizeLanguage(lang)
			}

			if month == "" {
				month = tracker.Today()[:7]
			}
			year, monthOfYear, err := dates.MonthYear(month + "-01")
			if err != nil {
				return fmt.Errorf("--month must look like 2024-03: %w", err)
			}

			report := statsReport{tracker: tracker, i18n: manager, language: language}
			return report.write(cmd.OutOrStdout(), year, monthOfYear)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month to summarize as YYYY-MM (default current month)")
	cmd.Flags().StringVar(&lang, "lang", "", "output language (default from settings)")
	return cmd
}

type statsReport struct {
	tracker  *state.Tracker
	i18n     *i18n.Manager
	language models.Language
}

func (report statsReport) t(key string) string {
	return report.i18n.Translate(report.language, key)
}

func (report statsReport) write(w io.Writer, year int, month time.Month) error {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	section := color.New(color.FgYellow).SprintFunc()
	muted := color.New(color.FgHiBlack).SprintFunc()

	settings := report.tracker.Settings()
	from, to := dates.MonthRange(year, month)
	summary := report.tracker.Summary(from, to)

	fmt.Fprintf(w, "\n%s\n", heading("=== "+report.i18n.AppTitle(report.language, settings.CustomName)+" ==="))
	fmt.Fprintf(w, "%s\n\n", monthTitle(report.language, year, month))

	fmt.Fprintf(w, "%s\n", section(report.t("stats.summary")+":"))
	if summary.TotalEntries == 0 {
		fmt.Fprintf(w, "  %s\n", muted(report.t("stats.noData")))
	} else {
		fmt.Fprintf(w, "  %s: %d\n", report.t("stats.totalEntries"), summary.TotalEntries)
		fmt.Fprintf(w, "  %s: %.1f\n", report.t("stats.avgSeverity"), summary.AverageSeverity)

		fmt.Fprintf(w, "\n%s\n", section(report.t("stats.ailmentFrequency")+":"))
		for _, row := range report.ailmentRows(summary.AilmentCounts) {
			fmt.Fprintf(w, "  %-24s %d %s\n", row.name, row.count, report.t("stats.times"))
		}

		if triggers := report.tracker.TopTriggers(from, to, 5); len(triggers) > 0 {
			fmt.Fprintf(w, "\n%s\n", section(report.t("stats.topTriggers")+":"))
			for _, trigger := range triggers {
				name := i18n.LocalizedName(report.language, trigger.Trigger.Name, trigger.Trigger.NameZh)
				fmt.Fprintf(w, "  %-24s %d %s\n", name, trigger.Count, report.t("stats.times"))
			}
		}
	}

	report.writeCycle(w, section, muted)
	return nil
}

func (report statsReport) writeCycle(w io.Writer, section func(...any) string, muted func(...any) string) {
	fmt.Fprintf(w, "\n%s\n", section(report.t("period.stats.title")+":"))
	cycle := report.tracker.CycleStats()
	if cycle.LastPeriodStart == nil {
		fmt.Fprintf(w, "  %s\n", muted(report.t("stats.noPeriodData")))
		return
	}

	days := report.t("period.stats.days")
	fmt.Fprintf(w, "  %s: %d %s\n", report.t("period.stats.averageCycle"), cycle.AverageCycleLength, days)
	fmt.Fprintf(w, "  %s: %d %s\n", report.t("period.stats.averagePeriod"), cycle.AveragePeriodLength, days)
	fmt.Fprintf(w, "  %s: %s\n", report.t("period.stats.lastPeriod"), i18n.FormatDateShort(*cycle.LastPeriodStart, report.language))
	if cycle.PredictedNextStart != nil {
		fmt.Fprintf(w, "  %s: %s\n", report.t("period.stats.nextPredicted"), i18n.FormatDateShort(*cycle.PredictedNextStart, report.language))
	}
	fmt.Fprintf(w, "  %d %s\n", cycle.TotalCyclesTracked, report.t("period.stats.cyclesTracked"))

	correlation := report.tracker.PeriodCorrelation()
	fmt.Fprintf(w, "\n%s\n", section(report.t("stats.periodCorrelation")+":"))
	fmt.Fprintf(w, "  %s\n", report.t(i18n.CorrelationKey(string(correlation.Overall.Verdict))))
	for _, ailment := range correlation.Ailments {
		if ailment.Verdict == services.CorrelationNone {
			continue
		}
		name := i18n.LocalizedName(report.language, ailment.AilmentType.Name, ailment.AilmentType.NameZh)
		fmt.Fprintf(w, "  %-24s %s\n", name, report.t(i18n.CorrelationKey(string(ailment.Verdict))))
	}
}

type ailmentRow struct {
	name  string
	count int
}

// ailmentRows orders ailments by count, then name.
func (report statsReport) ailmentRows(counts map[string]int) []ailmentRow {
	names := make(map[string]string)
	for _, ailment := range report.tracker.AilmentTypes() {
		names[ailment.ID] = i18n.LocalizedName(report.language, ailment.Name, ailment.NameZh)
	}

	rows := make([]ailmentRow, 0, len(counts))
	for id, count := range counts {
		name, ok := names[id]
		if !ok {
			name = id
		}
		rows = append(rows, ailmentRow{name: name, count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return strings.Compare(rows[i].name, rows[j].name) < 0
	})
	return rows
}

func monthTitle(language models.Language, year int, month time.Month) string {
	if language == models.LanguageZhHK {
		return fmt.Sprintf("%d年%s", year, i18n.MonthName(month, language))
	}
	return fmt.Sprintf("%s %d", i18n.MonthName(month, language), year)
}
