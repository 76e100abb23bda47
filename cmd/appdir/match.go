package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appdir-dev/appdir/pkg/router"
)

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <dir> <path>",
		Short: "Resolve a request path against a directory's route table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(args[0], args[1])
		},
	}
}

func runMatch(root, path string) error {
	eng := router.New()
	route, params, err := eng.Match(context.Background(), root, path)
	if err != nil {
		return err
	}
	if route == nil {
		fmt.Printf("%s: no match\n", path)
		return nil
	}

	fmt.Printf("%s → %s\n", path, route.Pattern.String())
	for _, name := range route.Pattern.Params {
		pv := params[name]
		if pv.Multi {
			fmt.Printf("  %s = [%s]\n", name, strings.Join(pv.List, ", "))
		} else {
			fmt.Printf("  %s = %s\n", name, pv.Value)
		}
	}
	if route.Page != "" {
		fmt.Printf("  page: %s\n", route.Page)
	}
	if route.Handler != "" {
		fmt.Printf("  handler: %s\n", route.Handler)
	}
	for i, layout := range route.Layouts.Layouts {
		fmt.Printf("  layout[%d]: %s (depth %d)\n", i, layout, route.Layouts.Depths[i])
	}
	return nil
}
