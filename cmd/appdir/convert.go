package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appdir-dev/appdir/pkg/router"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <pattern>",
		Short: "Convert between token and bracket notation",
		Long: `Convert a pattern between the engine's internal token notation
(:name, name+, name*) and the filesystem bracket convention ([name],
[...name], [[...name]]). The direction is inferred from the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			if strings.Contains(pattern, "[") {
				fmt.Println(router.FromBracketNotation(pattern))
			} else {
				fmt.Println(router.ToBracketNotation(pattern))
			}
			return nil
		},
	}
}
