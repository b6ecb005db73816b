package diary

import (
	"fmt"

	"github.com/spf13/cobra"
)

var LoginCmd = &cobra.Command{
	Use:   "login <имя>",
	Short: "Войти под именем пользователя",
	Long: `Делает имя активным пользователем. Пароля нет: имя только отделяет
данные одного человека от другого на этом устройстве.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sess, err := app.Sessions().Login(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}
		fmt.Printf("✓ Вход выполнен: %s\n", sess.UserID)
		return nil
	},
}

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти, сохранив данные пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		sess, ok := app.Sessions().Current()
		if !ok {
			fmt.Println("Вход не выполнен")
			return nil
		}
		if err := app.Sessions().Logout(cmd.Context(), sess); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}
		fmt.Printf("✓ До встречи, %s\n", sess.UserID)
		return nil
	},
}
