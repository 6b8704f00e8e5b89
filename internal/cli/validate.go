package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/validation"
)

type validateOutput struct {
	Valid     bool              `json:"valid"`
	Kind      labels.Kind       `json:"kind"`
	Arguments *labels.Arguments `json:"arguments,omitempty"`
	Errors    labels.Errors     `json:"errors,omitempty"`
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the label arguments of a request file",
		Long:  "Read a label request ({kind, shipment, args, defaults, interactive}) and print the normalized arguments or the validation errors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req validation.LabelRequest
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
			v := settings.Validator()

			var defaults labels.Args
			if req.Defaults != nil {
				defaults = labels.Args(req.Defaults)
			}
			lreq, err := v.NewRequest(req.Kind, req.Shipment, labels.Args(req.Args), defaults, req.Interactive)
			if err != nil {
				return err
			}
			res, err := v.ValidateRequest(lreq)
			if err != nil {
				return err
			}

			out := validateOutput{Valid: res.Valid(), Kind: lreq.Kind, Arguments: res.Arguments, Errors: res.Errors}
			if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if !res.Valid() {
				return fmt.Errorf("validation failed: %d error(s)", len(res.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Label request JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
