package diary

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moyudiary/internal/domain/moyulog"
)

var LogCmd = &cobra.Command{
	Use:       "log <тип>",
	Short:     "Отметить перерыв",
	Long:      "Отмечает перерыв одного из типов: " + kindsHelp(),
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sess, err := currentSession(app)
		if err != nil {
			return err
		}

		res, err := app.Sessions().LogAction(cmd.Context(), sess, moyulog.Type(args[0]))
		if err != nil {
			return fmt.Errorf("ошибка записи: %w", err)
		}

		st, err := app.Sessions().Settings(sess)
		if err != nil {
			return err
		}
		l := res.Log
		fmt.Printf("%s %s  %s%.2f\n", l.Type.Icon(), l.Type.Label(), st.CurrencySymbol, l.MoneyEarnedAtTime)
		fmt.Printf("💬 %s\n", l.AIComment)
		return nil
	},
}

func kindNames() []string {
	names := make([]string, 0, len(moyulog.Kinds))
	for _, k := range moyulog.Kinds {
		names = append(names, string(k.Type))
	}
	return names
}

func kindsHelp() string {
	parts := make([]string, 0, len(moyulog.Kinds))
	for _, k := range moyulog.Kinds {
		parts = append(parts, fmt.Sprintf("%s (%s %s)", k.Type, k.Icon, k.Label))
	}
	return strings.Join(parts, ", ")
}
