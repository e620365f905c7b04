package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-riskform/pkg/validation"
)

func NewValidateCommand() *cobra.Command {
	var fields fieldFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the metrics without contacting the prediction service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fields.fieldSet(cmd.Flags(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			result := validation.Validate(set)
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if !result.Valid() {
				return &ExitError{Code: ExitCodeInvalid}
			}
			return nil
		},
	}

	fields.register(cmd.Flags())
	return cmd
}
