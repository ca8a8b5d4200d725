package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/internal/core/styles"
)

// ErrOrderNotFound is returned when show cannot resolve its argument.
var ErrOrderNotFound = errors.New("order not found")

type ShowCmd struct {
	flags *Flags

	// flags
	raw   bool
	width int
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show one picking order",
		UsageText: "picklist show [--raw] <picking-no|suffix|position>",
		Description: `Renders a single order with its line items.

The order can be selected by full picking number, by the four digit suffix
printed on the label, or by its 1-based position in review order.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one order argument, got %d", c.Args().Len())
	}

	src, err := cmd.flags.Source()
	if err != nil {
		return fmt.Errorf("open orders: %w", err)
	}

	orders, err := src.Orders(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	idx, err := resolveOrder(orders, c.Args().First())
	if err != nil {
		return err
	}

	md := orderMarkdown(orders[idx], idx+1, len(orders))
	out := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render order: %w", err)
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

// resolveOrder finds an order by picking number, unique suffix or position.
func resolveOrder(orders []picking.Order, arg string) (int, error) {
	arg = strings.TrimSpace(arg)

	if i, ok := picking.Find(orders, arg); ok {
		return i, nil
	}

	var matches []int
	for i, o := range orders {
		if _, suffix := picking.SplitPickingNo(o.PickingNo); suffix == arg {
			matches = append(matches, i)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return 0, fmt.Errorf("suffix %q matches %d orders, use the full picking number", arg, len(matches))
	}

	if pos, err := strconv.Atoi(arg); err == nil && pos >= 1 && pos <= len(orders) {
		return pos - 1, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrOrderNotFound, arg)
}

func orderMarkdown(o picking.Order, position, total int) string {
	prefix, suffix := picking.SplitPickingNo(o.PickingNo)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s**%s**\n\n", escapeMarkdown(prefix), escapeMarkdown(suffix))
	fmt.Fprintf(&b, "**Customer:** %s\n\n", escapeMarkdown(o.CustomerName))
	fmt.Fprintf(&b, "Order %d of %d\n\n", position, total)

	b.WriteString("| Product | Qty |\n|---|---:|\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeMarkdown(it.ProductName), escapeMarkdown(it.Quantity))
	}

	if qty, ok := o.TotalQuantity(); ok {
		fmt.Fprintf(&b, "\nTotal quantity: %d\n", qty)
	}

	return b.String()
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
