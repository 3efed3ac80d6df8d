package commands

import (
	"github.com/spf13/cobra"

	"github.com/jrazmi/artisan/app/generators/servicegen"
)

func newMakeServiceCmd(a *app) *cobra.Command {
	var withInterface bool

	cmd := &cobra.Command{
		Use:   "make:service <name>",
		Short: "Create a new service",
		Long: `Create a new service under the services namespace. A name such as
Billing/Invoice places the file in a nested namespace.`,
		Example: `  artisan make:service Billing/Invoice
  artisan make:service Payment --interface`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scaffolder()
			if err != nil {
				return &ExitError{Err: err, Code: ExitGeneralError}
			}
			gen := servicegen.New(a.log, sc)

			first := a.report(gen.Execute(cmd.Context(), args[0]))
			if !withInterface {
				return first
			}

			// The interface is attempted even when the service already exists.
			second := a.report(gen.ExecuteInterface(cmd.Context(), args[0]))
			if first != nil {
				return first
			}
			return second
		},
	}

	cmd.Flags().BoolVar(&withInterface, "interface", false, "also create <name>Interface in the interfaces namespace")

	return cmd
}
