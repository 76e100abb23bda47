package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/appdir-dev/appdir/pkg/router"
)

func scanCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Build and print the route table for a directory",
		Long: `Scan a routes directory, build the route table and print it in
precedence order. Each line shows the pattern, its precedence score and
the backing file; --json emits the full table including layout chains,
boundaries, slots and intercepts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full table as JSON")

	return cmd
}

func runScan(root string, asJSON bool) error {
	eng := router.New()
	table, err := eng.Build(context.Background(), root)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}

	fmt.Printf("%s: %d routes (fingerprint %016x)\n\n", table.Root, len(table.Routes), table.Fingerprint())
	for _, r := range table.Routes {
		file := r.Page
		if r.Kind == router.RouteHandler {
			file = r.Handler
		}
		marker := " "
		if r.Synthesized {
			marker = "+"
		}
		fmt.Printf("%s %6d  %-40s %s\n", marker, r.Pattern.Score(), r.Pattern.String(), file)
		for _, slot := range r.Slots {
			fmt.Printf("          @%s  page=%s default=%s\n", slot.Name, orDash(slot.Page), orDash(slot.Default))
			for _, ic := range slot.Intercepts {
				fmt.Printf("            intercepts %s (%s)\n", ic.Target.String(), ic.Kind)
			}
		}
		for _, ic := range r.Intercepts {
			fmt.Printf("          intercepts %s (%s)\n", ic.Target.String(), ic.Kind)
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
