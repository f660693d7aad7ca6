package commands

import (
	"github.com/spf13/cobra"

	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

func calcCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc CODE QUANTITY",
		Short:   "Break an order line of a catalog product into bundles",
		Example: "  bundlecalc calc R12 15\n  bundlecalc calc L09 24 --catalog catalog.yaml --json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			products, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			product, err := findProduct(products, args[0])
			if err != nil {
				return err
			}

			b, err := service.MinimizeBundles(product, quantity)
			if err != nil {
				return err
			}
			return opts.printBreakdown(cmd.OutOrStdout(), b)
		},
	}

	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "", "YAML catalog file (default: built-in catalog)")
	return cmd
}
