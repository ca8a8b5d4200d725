package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/internal/core/styles"
	"github.com/colonyops/picklist/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List picking orders",
		UsageText: "picklist ls [--json]",
		Description: `Displays a table of the orders in review order with their customer,
item count and total quantity.

Use --json for one JSON object per order.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// orderInfo is the JSON line written for each order.
type orderInfo struct {
	Position      int    `json:"position"`
	PickingNo     string `json:"picking_no"`
	CustomerName  string `json:"customer_name"`
	Items         int    `json:"items"`
	TotalQuantity *int   `json:"total_quantity,omitempty"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	src, err := cmd.flags.Source()
	if err != nil {
		return fmt.Errorf("open orders: %w", err)
	}

	orders, err := src.Orders(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return writeOrderLines(out, orders)
	}

	_, err = fmt.Fprintln(out, renderOrderTable(orders))
	return err
}

func writeOrderLines(w io.Writer, orders []picking.Order) error {
	for i, o := range orders {
		info := orderInfo{
			Position:     i + 1,
			PickingNo:    o.PickingNo,
			CustomerName: o.CustomerName,
			Items:        len(o.Items),
		}
		if total, ok := o.TotalQuantity(); ok {
			info.TotalQuantity = &total
		}
		if err := iojson.WriteLine(w, info); err != nil {
			return fmt.Errorf("encode order: %w", err)
		}
	}
	return nil
}

func renderOrderTable(orders []picking.Order) string {
	rows := make([][]string, 0, len(orders))
	for i, o := range orders {
		qty := "-"
		if total, ok := o.TotalQuantity(); ok {
			qty = strconv.Itoa(total)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			o.PickingNo,
			o.CustomerName,
			strconv.Itoa(len(o.Items)),
			qty,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers("#", "PICKING NO", "CUSTOMER", "ITEMS", "QTY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			s := styles.TableCellStyle
			if col == 0 || col >= 3 {
				s = s.Align(lipgloss.Right)
			}
			return s
		}).
		String()
}
