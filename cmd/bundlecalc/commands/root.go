// Package commands holds the bundlecalc command tree.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AJLandry1000000000/flower-shop/internal/catalog"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/logger"
)

type options struct {
	logLevel    string
	jsonOutput  bool
	catalogFile string
	log         zerolog.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the bundlecalc command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "bundlecalc",
		Short:        "Compute the fewest-bundle breakdown of flower orders",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.logLevel, true)
			opts.log = logger.WithContext(map[string]interface{}{"command": cmd.Name()})
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print breakdowns as JSON instead of summary lines")

	root.AddCommand(calcCmd(opts), solveCmd(opts), productsCmd(opts))
	return root
}

// loadCatalog reads the catalog file, or the built-in catalog when none is given.
func (o *options) loadCatalog(ctx context.Context) ([]model.Product, error) {
	if o.catalogFile == "" {
		return catalog.Defaults(), nil
	}
	return catalog.NewFileLoader(o.catalogFile, o.log).Load(ctx)
}

func findProduct(products []model.Product, code string) (model.Product, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, p := range products {
		if strings.EqualFold(p.Code, code) {
			return p.Normalized(), nil
		}
	}
	return model.Product{}, errors.Errorf("product %q not found", code)
}

func (o *options) printBreakdown(w io.Writer, b model.Breakdown) error {
	if o.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	_, err := fmt.Fprintln(w, b.Summary())
	return err
}
