package commands

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

func solveCmd(opts *options) *cobra.Command {
	var (
		code   string
		sizes  []int
		prices map[string]string
	)

	cmd := &cobra.Command{
		Use:     "solve QUANTITY",
		Short:   "Break a quantity into bundles of ad-hoc sizes",
		Example: "  bundlecalc solve --sizes 10,5 --prices 10=12.99,5=6.99 15",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantity(args[0])
			if err != nil {
				return err
			}

			product, err := adHocProduct(code, sizes, prices)
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

	cmd.Flags().StringVar(&code, "code", "ADHOC", "product code shown in the summary")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "bundle sizes, e.g. 10,5")
	cmd.Flags().StringToStringVar(&prices, "prices", nil, "price per bundle size, e.g. 10=12.99,5=6.99 (default 0)")
	_ = cmd.MarkFlagRequired("sizes")
	return cmd
}

// adHocProduct builds a descriptor from flag values. Sizes without a price cost nothing.
func adHocProduct(code string, sizes []int, rawPrices map[string]string) (model.Product, error) {
	p := model.Product{
		Code:        strings.ToUpper(strings.TrimSpace(code)),
		Name:        "ad-hoc",
		BundleSizes: sizes,
		Prices:      make(map[int]decimal.Decimal, len(sizes)),
	}
	for _, size := range sizes {
		p.Prices[size] = decimal.Zero
	}
	for rawSize, rawPrice := range rawPrices {
		size, err := strconv.Atoi(strings.TrimSpace(rawSize))
		if err != nil {
			return model.Product{}, errors.Errorf("price key %q is not a bundle size", rawSize)
		}
		if _, ok := p.Prices[size]; !ok {
			return model.Product{}, errors.Errorf("price given for size %d, which is not in --sizes", size)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
		if err != nil {
			return model.Product{}, errors.Wrapf(err, "price of size %d", size)
		}
		p.Prices[size] = price
	}

	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	return p.Normalized(), nil
}

func parseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || quantity < 0 {
		return 0, errors.Errorf("quantity %q must be a non-negative integer", raw)
	}
	return quantity, nil
}
