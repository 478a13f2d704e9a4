package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow-journal/internal/cli"
	"github.com/Veraticus/cashflow-journal/internal/common"
	"github.com/Veraticus/cashflow-journal/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, update, and delete the categories transactions are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var only model.TransactionType
			if typeFilter != "" {
				t, err := model.ParseTransactionType(typeFilter)
				if err != nil {
					return err
				}
				only = t
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			snap := j.Snapshot()
			categories := snap.Categories()
			if only != "" {
				categories = snap.CategoriesOf(only)
			}
			if len(categories) == 0 {
				printLine(cmd, cli.InfoStyle.Render("No categories found. Use 'cashflow categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Icon"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 7),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12))

			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Type, c.Name, c.Icon)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "only list income or expense categories")
	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		icon         string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseTransactionType(categoryType)
			if err != nil {
				return err
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := j.AddCategory(cmd.Context(), t, args[0], icon)
			if err != nil {
				return err
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Created %s category %q (ID: %s)", c.Type, c.Name, c.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryType, "type", "t", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(&icon, "icon", "tag", "icon key")
	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name string
		icon string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category or change its icon",
		Long:  `Update the name or icon of an existing category. Its type never changes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("icon") {
				return common.Validationf("nothing to update: pass --name and/or --icon")
			}

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			current, ok := j.Snapshot().FindCategory(args[0])
			if !ok {
				return common.Validationf("no category with ID %q", args[0])
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			if !cmd.Flags().Changed("icon") {
				icon = current.Icon
			}

			c, err := j.UpdateCategory(cmd.Context(), current.ID, name, icon)
			if err != nil {
				return err
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Updated category %s: %s", c.ID, c.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon key")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Categories used by a recurring expense cannot be
deleted until the recurring expense is removed or moved. Transactions that
used the category are kept and show as "Uncategorized".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			j, cleanup, err := initJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			c, ok := j.Snapshot().FindCategory(id)
			if !ok {
				printLine(cmd, cli.InfoStyle.Render(fmt.Sprintf("No category with ID %q, nothing to delete.", id)))
				return nil
			}

			if err := confirm(cmd, fmt.Sprintf("Delete category %q?", c.Name), force); err != nil {
				return err
			}

			if _, err := j.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			if err := checkSaved(j); err != nil {
				return err
			}

			printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Deleted category %q", c.Name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
