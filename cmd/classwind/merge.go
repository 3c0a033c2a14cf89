package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/classwind"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [class list]",
	Short: "Resolve conflicting utility classes in a class list",
	Long: `Join class list arguments and resolve utility conflicts, keeping the
last class per utility family. Reads class lists from stdin (one per line)
when no arguments are given.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().Bool("join-only", false, "Join and normalize whitespace without conflict resolution")
}

func runMerge(cmd *cobra.Command, args []string) error {
	joinOnly, _ := cmd.Flags().GetBool("join-only")

	composer, err := buildComposer()
	if err != nil {
		return err
	}

	resolve := func(list string) string {
		if joinOnly {
			return classwind.Join(classwind.Token(list))
		}
		return composer.Merge(list)
	}

	if len(args) > 0 {
		fmt.Println(resolve(strings.Join(args, " ")))
		return nil
	}

	// No arguments: one class list per stdin line
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(resolve(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	return nil
}
