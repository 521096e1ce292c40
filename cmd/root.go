// Package cmd wires the terminal entry points: the storefront TUI, the
// admin console and the table-output commands for scripting.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cinema-booking-cli/config"
	"cinema-booking-cli/service"
	"cinema-booking-cli/session"
	"cinema-booking-cli/tui"
)

var rootCmd = &cobra.Command{
	Use:   "cinema",
	Short: "Đặt vé xem phim từ terminal",
	Long:  "Chọn phim, suất chiếu, ghế và combo bắp nước, tất cả ngay trong terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := newClient()
		if err != nil {
			return err
		}
		program := tea.NewProgram(tui.New(client, sess), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Mở bảng quản trị combo",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := newClient()
		if err != nil {
			return err
		}
		program := tea.NewProgram(tui.NewAdmin(client, sess), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "In phiên bản",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cinema-booking-cli v0.1")
	},
}

func newClient() (*service.Client, *session.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client := service.NewClient(cfg, nil)
	sess := session.Load()
	sess.Attach(client)
	return client, sess, nil
}

func Execute() {
	rootCmd.AddCommand(adminCmd, combosCmd, showtimesCmd, ticketsCmd, versionCmd)
	combosCmd.AddCommand(combosDeleteCmd)

	combosCmd.Flags().String("search", "", "tìm combo theo tên, không phân biệt dấu")
	combosCmd.Flags().Float64("min", -1, "giá thấp nhất (VND)")
	combosCmd.Flags().Float64("max", -1, "giá cao nhất (VND)")
	combosCmd.Flags().Bool("all", false, "bao gồm cả combo ngừng kinh doanh")
	showtimesCmd.Flags().String("movie", "", "mã phim cần xem suất chiếu")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
