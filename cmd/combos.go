package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cinema-booking-cli/model"
	"cinema-booking-cli/search"
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Liệt kê combo bắp nước",
	Long:  "Liệt kê combo đang bán, có thể tìm theo tên (không phân biệt dấu) hoặc lọc theo khoảng giá.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		term, _ := cmd.Flags().GetString("search")
		min, _ := cmd.Flags().GetFloat64("min")
		max, _ := cmd.Flags().GetFloat64("max")
		all, _ := cmd.Flags().GetBool("all")
		ctx := cmd.Context()

		var combos []model.Combo
		switch {
		case min >= 0 || max >= 0:
			if min < 0 || max < 0 {
				return errors.New("cần cả --min và --max để lọc theo khoảng giá")
			}
			combos, err = client.GetCombosByPriceRange(ctx, min, max)
		case term != "":
			combos, err = client.SearchCombos(ctx, term)
		default:
			combos, err = client.GetCombos(ctx)
		}
		if err != nil {
			return err
		}

		filter := search.FilterActive
		if all {
			filter = search.FilterAll
		}
		combos = search.FilterCombos(combos, term, filter)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Tên", "Giá", "Trạng thái", "Các món"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 28},
			{Number: 5, WidthMax: 40},
		})
		for _, combo := range combos {
			status := "ngừng bán"
			if combo.IsActive {
				status = "đang bán"
			}
			t.AppendRow(table.Row{
				combo.Id,
				combo.Name,
				formatPrice(combo.Price),
				status,
				strings.Join(combo.Items, ", "),
			})
		}
		t.Render()
		return nil
	},
}

var combosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Xóa một combo (yêu cầu phiên quản trị)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, sess, err := newClient()
		if err != nil {
			return err
		}
		if _, ok := sess.Admin(); !ok {
			return errors.New("chưa đăng nhập quản trị, hãy chạy 'cinema admin' trước")
		}

		comboID := args[0]
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Xóa combo %s", comboID),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			fmt.Println("Đã hủy.")
			return nil
		}

		if err := client.DeleteCombo(cmd.Context(), comboID); err != nil {
			return err
		}
		fmt.Println("Đã xóa combo.")
		return nil
	},
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("%.0fđ", amount)
}
