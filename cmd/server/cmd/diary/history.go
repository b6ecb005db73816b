package diary

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"moyudiary/internal/domain/moyulog"
)

var (
	historyFormat string
	historyClear  bool
)

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Показать записи по дням",
	Long: `Выводит записи активного пользователя, новые сверху, сгруппированные
по календарным дням. С флагом --clear удаляет все записи.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sess, err := currentSession(app)
		if err != nil {
			return err
		}

		if historyClear {
			if err := app.Sessions().ClearLogs(cmd.Context(), sess); err != nil {
				return fmt.Errorf("ошибка очистки: %w", err)
			}
			fmt.Println("✓ Записи удалены")
			return nil
		}

		logs, err := app.Sessions().Logs(sess)
		if err != nil {
			return err
		}
		st, err := app.Sessions().Settings(sess)
		if err != nil {
			return err
		}

		switch historyFormat {
		case "json":
			return printLogsJSON(os.Stdout, logs)
		default:
			return printLogsTable(os.Stdout, logs, st.CurrencySymbol, time.Local)
		}
	},
}

func printLogsTable(out io.Writer, logs []moyulog.Log, currency string, loc *time.Location) error {
	if len(logs) == 0 {
		fmt.Fprintln(out, "还没有摸鱼记录哦")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, g := range moyulog.GroupByDay(logs, loc) {
		fmt.Fprintf(w, "%s\t\t\t\t\n", g.Day.Format("2006-01-02"))
		for _, l := range g.Logs {
			fmt.Fprintf(w, "  %s\t%s %s\t%s%.2f\t%s\t\n",
				l.Time(loc).Format("15:04"),
				l.Type.Icon(),
				l.Type.Label(),
				currency,
				l.MoneyEarnedAtTime,
				l.AIComment,
			)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nВсего записей: %d\n", len(logs))
	return nil
}

func printLogsJSON(out io.Writer, logs []moyulog.Log) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(logs)
}

func init() {
	HistoryCmd.Flags().StringVarP(&historyFormat, "format", "f", "table", "формат вывода (table, json)")
	HistoryCmd.Flags().BoolVar(&historyClear, "clear", false, "удалить все записи")
}
