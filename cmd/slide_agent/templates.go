package main

import (
	"fmt"
	"os"

	"github.com/jonathan/slide-redesigner/internal/layout"
	"github.com/jonathan/slide-redesigner/internal/types"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the layout template catalog",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List layout templates with their slot counts",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one layout template as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

var templatesValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the built-in catalog plus a templates directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplatesValidate,
}

var templatesDir string

func init() {
	templatesCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", "Directory of extra templates (default from config)")

	templatesCmd.AddCommand(templatesListCmd, templatesShowCmd, templatesValidateCmd)
	rootCmd.AddCommand(templatesCmd)
}

func loadCatalog() (*layout.Catalog, error) {
	dir := templatesDir
	if dir == "" {
		dir = appConfig.TemplatesDir
	}
	return layout.LoadCatalog(dir)
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	for _, name := range catalog.Names() {
		tpl, _ := catalog.Get(name)
		_, _ = fmt.Fprintf(os.Stdout, "%-20s text=%d image=%d table=%d\n", name,
			tpl.CountSlots(types.ElementText), tpl.CountSlots(types.ElementImage), tpl.CountSlots(types.ElementTable))
	}
	return nil
}

func runTemplatesShow(_ *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	tpl, err := catalog.Get(args[0])
	if err != nil {
		return err
	}
	return writeJSON("", tpl)
}

func runTemplatesValidate(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		templatesDir = args[0]
	}
	catalog, err := loadCatalog()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Validation failed: %v\n", err)
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %d templates\n", catalog.Len())
	return nil
}
