package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jvminspect/pkg/registry"
)

var addCmd = &cobra.Command{
	Use:   "add <JAVA_HOME>",
	Short: "Register an installation home",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistry(func(reg *registry.Registry) error {
			if err := reg.Add(args[0]); err != nil {
				return err
			}
			fmt.Printf("Registered %s\n", args[0])
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <JAVA_HOME>",
	Short: "Unregister an installation home",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistry(func(reg *registry.Registry) error {
			if err := reg.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		})
	},
}

var defaultCmd = &cobra.Command{
	Use:   "default <JAVA_HOME>",
	Short: "Mark a registered home as the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistry(func(reg *registry.Registry) error {
			if err := reg.SetDefault(args[0]); err != nil {
				return err
			}
			fmt.Printf("Default set to %s\n", args[0])
			return nil
		})
	},
}

// withRegistry loads the registry, applies fn, and persists the result.
func withRegistry(fn func(*registry.Registry) error) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}
	if err := fn(reg); err != nil {
		return err
	}
	return reg.Save()
}
