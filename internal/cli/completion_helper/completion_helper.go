package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints every flag of the current command so shells
// can suggest them even where urfave/cli's default completion falls short.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				fmt.Println("-" + name)
			} else {
				fmt.Println("--" + name)
			}
		}
	}
}
