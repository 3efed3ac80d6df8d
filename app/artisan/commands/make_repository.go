package commands

import (
	"github.com/spf13/cobra"

	"github.com/jrazmi/artisan/app/generators/repositorygen"
)

func newMakeRepositoryCmd(a *app) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "make:repository <name>",
		Short: "Create a new repository",
		Long: `Create a new repository under the repositories namespace. With --model the
repository is bound to an existing model, which must already have a source
file in the models namespace.`,
		Example: `  artisan make:repository Post
  artisan make:repository Post --model=User`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scaffolder()
			if err != nil {
				return &ExitError{Err: err, Code: ExitGeneralError}
			}

			req := repositorygen.Request{Name: args[0], Model: model}
			return a.report(repositorygen.New(a.log, sc).Execute(cmd.Context(), req))
		},
	}

	cmd.Flags().StringVar(&model, "model", repositorygen.DefaultModel, "model the repository is bound to")

	return cmd
}
