package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func productsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog products and their bundle prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(products)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "CODE\tNAME\tBUNDLES")
			for _, p := range products {
				p = p.Normalized()
				bundles := make([]string, 0, len(p.BundleSizes))
				for _, size := range p.BundleSizes {
					bundles = append(bundles, fmt.Sprintf("%d @ $%s", size, p.Prices[size].StringFixed(2)))
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Code, p.Name, strings.Join(bundles, ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "", "YAML catalog file (default: built-in catalog)")
	return cmd
}
