package diary

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"moyudiary/internal/domain/earnings"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Заработок за сегодня и обратные отсчеты",
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
		snap, err := app.Sessions().Snapshot(sess)
		if err != nil {
			return err
		}

		printSnapshot(os.Stdout, sess.UserID, snap)
		return nil
	},
}

func printSnapshot(out io.Writer, user string, snap earnings.Snapshot) {
	state := "💤 非工作时间"
	if snap.Working {
		state = "💰 正在入账中..."
	}
	fmt.Fprintf(out, "%s · %s\n", user, state)
	fmt.Fprintf(out, "今日已到手工资: %s%.4f\n", snap.CurrencySymbol, snap.Earned)
	fmt.Fprintf(out, "距离发工资: %d 天\n", snap.DaysUntilPayday)
	fmt.Fprintf(out, "距离%s: %d 天\n", snap.HolidayName, snap.DaysUntilHoliday)
}

func init() {
	DiaryCmd.AddCommand(LoginCmd)
	DiaryCmd.AddCommand(LogoutCmd)
	DiaryCmd.AddCommand(LogCmd)
	DiaryCmd.AddCommand(HistoryCmd)
	DiaryCmd.AddCommand(StatusCmd)
}
