package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/picklist/internal/core/config"
	"github.com/colonyops/picklist/internal/core/logging"
	"github.com/colonyops/picklist/internal/core/navigator"
	"github.com/colonyops/picklist/internal/core/notify"
	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/internal/tui"
)

// ErrNotInteractive is returned when review is started without a terminal.
var ErrNotInteractive = errors.New("review requires an interactive terminal")

type ReviewCmd struct {
	flags *Flags
}

// NewReviewCmd creates a new review command
func NewReviewCmd(flags *Flags) *ReviewCmd {
	return &ReviewCmd{flags: flags}
}

// Register adds the review command to the application
func (cmd *ReviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "review",
		Usage:     "Review picking orders interactively",
		UsageText: "picklist review",
		Description: `Opens the review screen. Page through the orders with the accelerator key
(enter by default) or the on-screen controls, then confirm once the last order
has been checked.

This is the default command when picklist runs without arguments.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the review screen. Exported for use as default command.
func (cmd *ReviewCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ReviewCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotInteractive
	}

	src, err := cmd.flags.Source()
	if err != nil {
		return fmt.Errorf("open orders: %w", err)
	}

	orders, err := src.Orders(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	sess, err := newReviewSession(ctx, cmd.flags.Config, orders)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.log.Info().Ctx(sess.ctx).
		Int("orders", len(orders)).
		Str("source", cmd.flags.OrdersPattern()).
		Msg("review started")

	p := tea.NewProgram(sess.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run review: %w", err)
	}

	sess.log.Info().Ctx(sess.ctx).
		Int("confirmations", sess.confirmations).
		Msg("review finished")

	return nil
}

// reviewSession wires the navigator, the notification bus and the review
// screen for one run. Close releases everything it subscribed.
type reviewSession struct {
	ctx   context.Context
	log   zerolog.Logger
	bus   *notify.Bus
	zones *zone.Manager
	model tui.Model

	confirmations int
	release       []func()
}

func newReviewSession(ctx context.Context, cfg *config.Config, orders []picking.Order) (*reviewSession, error) {
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	s := &reviewSession{
		ctx: logging.WithSessionID(ctx, uuid.NewString()),
		log: logging.Component("review"),
		bus: notify.NewBus(),
	}
	s.release = append(s.release, s.bus.Subscribe(logging.Notifications(s.ctx, s.log)))

	nav, err := navigator.New(orders,
		navigator.WithLogger(logging.Component("navigator")),
		navigator.WithSink(navigator.SinkFunc(func() {
			s.confirmations++
			s.bus.Infof("review confirmed")
		})),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("start review: %w", err)
	}

	s.zones = zone.New()
	s.release = append(s.release, s.zones.Close)

	s.model = tui.New(tui.Deps{
		Config:    cfg,
		Navigator: nav,
		Bus:       s.bus,
		Zones:     s.zones,
		Logger:    logging.Component("tui"),
		Context:   s.ctx,
	})
	s.release = append(s.release, s.model.Close)

	return s, nil
}

// Close releases subscriptions in reverse order of creation.
func (s *reviewSession) Close() {
	for i := len(s.release) - 1; i >= 0; i-- {
		s.release[i]()
	}
	s.release = nil
}
