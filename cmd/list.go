package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rostan-t/refery/internal/config"
)

var listTestFile string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the test suites and test cases of a test file",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().StringVarP(&listTestFile, "test-file", "f", "", "Path to the test file (default: refery.yaml in the current directory)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(listTestFile)
	if err != nil {
		return err
	}
	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, suite := range doc.Suites() {
		header := suite.Name
		if suite.Fatal {
			header += " (fatal)"
		}
		fmt.Fprintln(out, header)
		for _, test := range suite.Tests {
			line := "  " + test.GetName()
			if test.Ref != nil {
				line += " [ref: " + *test.Ref + "]"
			}
			if test.IsSkipped() {
				line += " (skipped)"
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
