package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imrishuroy/go-dhl-labelflow/internal/customs"
	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/validation"
)

func newCustomsCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "customs",
		Short: "Build the customs declaration of a shipment file",
		Long:  "Read {shipment, net_weight} and print the export document positions with the net weight distributed over the items.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req validation.CustomsRequest
			if err := readJSON(file, &req); err != nil {
				return err
			}
			if err := validation.New().Struct(req); err != nil {
				return fmt.Errorf("invalid request: %v", validation.FieldErrors(err))
			}

			settings, err := opts.settings()
			if err != nil {
				return err
			}

			net := labels.ShipmentWeight(req.Shipment, settings, true)
			if req.NetWeight != nil {
				net = *req.NetWeight
			}

			decl, err := customs.BuildDeclaration(req.Shipment, net, settings.BaseCountry)
			if err != nil {
				return fmt.Errorf("building declaration: %w", err)
			}
			if !decl.UnresolvedWeightKG.IsZero() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s kg could not be placed on any line\n", decl.UnresolvedWeightKG)
			}
			return writeJSON(cmd.OutOrStdout(), decl)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Customs request JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
