package probe

import (
	"github.com/spf13/cobra"
	"github/chapool/seedconv/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newInputs(),
		newWordlist(),
	)
}
