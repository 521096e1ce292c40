package cmd

import (
	"errors"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Liệt kê vé đã đặt của bạn",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := newClient()
		if err != nil {
			return err
		}
		if !sess.LoggedIn() {
			return errors.New("chưa có mã người dùng, hãy chạy 'cinema' và đăng nhập trước")
		}

		tickets, err := client.GetTicketsByUser(cmd.Context(), sess.UserID())
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Phim", "Ghế", "Ngày chiếu", "Trạng thái", "Tổng tiền"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 28},
		})
		for _, ticket := range tickets {
			t.AppendRow(table.Row{
				ticket.Id,
				ticket.MovieTitle,
				ticket.SeatNumber,
				ticket.ShowDate,
				ticket.Status,
				formatPrice(ticket.Price),
			})
		}
		t.Render()
		return nil
	},
}
