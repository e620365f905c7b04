package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-riskform/pkg/contract"
)

func NewContractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contract",
		Short: "Print the OpenAPI document of the prediction endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(contract.Document())
			return err
		},
	}
}
