package cmd

import (
	"errors"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showtimesCmd = &cobra.Command{
	Use:   "showtimes",
	Short: "Liệt kê suất chiếu của một phim",
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, _ := cmd.Flags().GetString("movie")
		if movieID == "" {
			return errors.New("cần --movie để liệt kê suất chiếu")
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}
		showtimes, err := client.GetShowtimesByMovie(cmd.Context(), movieID)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Giờ chiếu", "Phòng", "Rạp", "Giá vé"})
		for _, showtime := range showtimes {
			start := ""
			if !showtime.StartTime.IsZero() {
				start = showtime.StartTime.Format("02/01/2006 15:04")
			}
			t.AppendRow(table.Row{
				showtime.Id,
				start,
				showtime.Room,
				showtime.CinemaName,
				formatPrice(showtime.TicketPrice()),
			})
		}
		t.Render()
		return nil
	},
}
