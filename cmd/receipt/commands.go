package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghuser/electrocart/services/item/domain/models"
	domainsvcs "github.com/ghuser/electrocart/services/item/domain/services"
	"github.com/ghuser/electrocart/services/item/infrastructure/cartfile"
)

func newDemoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the reference cart and the console's total with extras",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := c.renderRequest()
			req.Lines = domainsvcs.DemoCart()

			receipt, err := c.svcs.Receipt.Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, receipt.Text)

			for _, it := range receipt.Items {
				if it.Kind == models.KindConsole.String() {
					fmt.Fprintf(c.stdout, "\nTotal price of console with extras: %s\n", it.Total)
					break
				}
			}
			return nil
		},
	}
}

func newRenderCmd(c *cli) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the cart described by a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := cartfile.Load(path)
			if err != nil {
				return err
			}

			// Flags given on the command line win over the file.
			req := c.renderRequest()
			req.Lines = f.Lines
			flags := cmd.Flags()
			if f.Width != nil && !flags.Changed("width") {
				req.Width = *f.Width
			}
			if f.Detailed != nil && !flags.Changed("detailed") {
				req.Detailed = *f.Detailed
			}
			if f.Grouped != nil && !flags.Changed("grouped") {
				req.Grouped = *f.Grouped
			}
			if f.Order != "" && !flags.Changed("order") {
				req.Order = f.Order
			}

			receipt, err := c.svcs.Receipt.Render(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, receipt.Text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "path to the YAML cart")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
