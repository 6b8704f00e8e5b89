package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
)

type catalogOutput struct {
	BaseCountry         string              `json:"base_country"`
	Domestic            []catalog.Product   `json:"domestic"`
	International       []catalog.Product   `json:"international"`
	ReturnDomestic      []catalog.Product   `json:"return_domestic"`
	ReturnInternational []catalog.Product   `json:"return_international"`
	InlayReturn         []string            `json:"inlay_return_products"`
	Internetmarke       []catalog.IMProduct `json:"internetmarke,omitempty"`
}

type productOutput struct {
	Product             string            `json:"product"`
	Domestic            bool              `json:"domestic"`
	Services            []catalog.Service `json:"services"`
	SupportsInlayReturn bool              `json:"supports_inlay_return"`
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var product string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products and the services they support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings()
			if err != nil {
				return err
			}
			c := catalog.New(settings.BaseCountry)

			if product != "" {
				if len(c.Products(true)) == 0 && len(c.Products(false)) == 0 {
					return fmt.Errorf("no DHL products for base country %s", settings.BaseCountry)
				}
				return writeJSON(cmd.OutOrStdout(), productOutput{
					Product:             product,
					Domestic:            c.IsDomesticProduct(product),
					Services:            c.ServicesFor(product),
					SupportsInlayReturn: c.SupportsInlayReturn(product),
				})
			}

			return writeJSON(cmd.OutOrStdout(), catalogOutput{
				BaseCountry:         settings.BaseCountry,
				Domestic:            c.Products(true),
				International:       c.Products(false),
				ReturnDomestic:      c.ReturnProducts(true),
				ReturnInternational: c.ReturnProducts(false),
				InlayReturn:         c.InlayReturnProducts(),
				Internetmarke:       settings.InternetmarkeProducts,
			})
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Show the services of one product code")

	return cmd
}
