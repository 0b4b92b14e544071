// Command receipt renders cart receipts from the command line.
//
//	receipt demo
//	receipt render --file cart.yaml --width 60 --grouped
//
// The receipt goes to stdout; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghuser/electrocart/pkg/app"
	"github.com/ghuser/electrocart/pkg/config"
	"github.com/ghuser/electrocart/pkg/logger"
	appsvcs "github.com/ghuser/electrocart/services/item/application/services"
)

func main() {
	if err := execute(context.Background(), newRootCmd(os.Stdout, os.Stderr)); err != nil {
		os.Exit(1)
	}
}

// execute runs root and reports any failure on its error stream, including
// the ones cobra raises itself for bad flags or unknown commands.
func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	}
	return err
}

// printFlags are shared by every rendering subcommand.
type printFlags struct {
	width    int
	detailed bool
	grouped  bool
	strict   bool
	order    string
}

type cli struct {
	stdout io.Writer
	stderr io.Writer
	flags  printFlags
	cfg    *config.Config
	svcs   *appsvcs.Services
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "receipt",
		Short:         "Build electronics carts and print their receipts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.IntVar(&c.flags.width, "width", 0, "receipt width in columns (default RECEIPT_WIDTH)")
	pf.BoolVar(&c.flags.detailed, "detailed", true, "print extras below each item")
	pf.BoolVar(&c.flags.grouped, "grouped", false, "print each item's price including its extras")
	pf.BoolVar(&c.flags.strict, "strict", true, "reject unknown overrides (default STRICT_OVERRIDES)")
	pf.StringVar(&c.flags.order, "order", "", "order of the item summary: asc or desc")

	root.AddCommand(newDemoCmd(c), newRenderCmd(c))
	return root
}

// setup loads configuration and wires the receipt service. The CLI renders
// synchronously, so it runs without a cache or an event bus.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	strict := cfg.StrictOverrides
	if cmd.Flags().Changed("strict") {
		strict = c.flags.strict
	}

	log := logger.NewWithWriter(c.stderr, cfg.LogLevel, "text")
	c.svcs = appsvcs.New(&app.Application{
		Logger: log,
		Receipts: app.ReceiptSettings{
			Width:           cfg.ReceiptWidth,
			StrictOverrides: strict,
		},
	})
	return nil
}

func (c *cli) renderRequest() appsvcs.RenderRequest {
	return appsvcs.RenderRequest{
		Width:    c.flags.width,
		Detailed: c.flags.detailed,
		Grouped:  c.flags.grouped,
		Order:    c.flags.order,
	}
}
