package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/loader"
	"github.com/ledgerlens/ledgerlens/internal/mapping"
)

// roleOrder fixes the print order of detected roles.
var roleOrder = []mapping.Role{
	mapping.RoleDate, mapping.RoleAccount, mapping.RoleCategory,
	mapping.RoleDebit, mapping.RoleCredit, mapping.RoleAmount,
	mapping.RoleType, mapping.RoleDescription, mapping.RoleReference,
	mapping.RoleBalance, mapping.RoleSection,
}

func newDetectCommand() *cobra.Command {
	var file string
	var kind string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the column mapping detected for a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(file, kind)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "CSV file to inspect (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&kind, "kind", "book", "input kind: bank or book")

	return cmd
}

func runDetect(file, kind string) error {
	table, err := loader.ReadFile(file)
	if err != nil {
		return err
	}

	var m mapping.Mapping
	switch kind {
	case "bank":
		m = mapping.DetectBank(table.Headers)
	case "book":
		m = mapping.DetectBook(table.Headers)
	default:
		return fmt.Errorf("unknown kind %q: want bank or book", kind)
	}

	for _, role := range roleOrder {
		if h, ok := m[role]; ok {
			fmt.Printf("%-12s %s\n", role, h)
		}
	}
	return nil
}
