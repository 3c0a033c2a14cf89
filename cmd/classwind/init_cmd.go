package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .classwind.yaml config file",
	Long:  `Create a .classwind.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".classwind.yaml"); err == nil && !force {
			return fmt.Errorf(".classwind.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".classwind.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .classwind.yaml")
		return nil
	},
}

const defaultConfig = `# classwind configuration
# Docs: https://github.com/yacobolo/classwind

# Shared settings
verbose: false

# CSS file whose selectors extend the built-in conflict table.
# Classes sharing a declared property set become conflicting.
# rules: styles/utilities.css

# Linting settings
lint:
  paths:
    - "**/*.templ"
    - "**/*.go"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
