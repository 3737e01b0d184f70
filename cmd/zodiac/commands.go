package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/zodiac/internal/export"
	"github.com/jeanpaul/zodiac/internal/people"
	"github.com/jeanpaul/zodiac/internal/tui"
)

func (a *app) addCmd() *cobra.Command {
	var name, surname, dob, sign string

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a person and save the file",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, list []people.Person) (result, error) {
			updated, err := people.Add(list, name, surname, dob, sign)
			if err != nil {
				return result{}, err
			}
			a.logger.Debug("person added", zap.String("name", name), zap.String("zodiac_sign", sign))
			return result{people: updated, dirty: true}, nil
		}),
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "first name")
	cmd.Flags().StringVarP(&surname, "surname", "s", "", "surname")
	cmd.Flags().StringVarP(&dob, "date-of-birth", "d", "", "date of birth, DD.MM.YYYY")
	cmd.Flags().StringVarP(&sign, "zodiac-sign", "z", "", "zodiac sign")
	for _, f := range []string{"name", "surname", "date-of-birth", "zodiac-sign"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "Print everyone in the file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, list []people.Person) (result, error) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.PeopleTable(list))
			return result{people: list}, nil
		}),
	}
}

func (a *app) selectCmd() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "select <file>",
		Short: "Print the people born in a given month",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, list []people.Person) (result, error) {
			fmt.Fprintln(cmd.OutOrStdout(), tui.MonthMatches(people.SelectByMonth(list, month)))
			return result{people: list}, nil
		}),
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "birth month, 1-12")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report which records a load would skip, without changing the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(args[0])
			if err != nil {
				return err
			}
			report, err := store.Inspect()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.LoadSummary(store.Path(), report))
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the list to an .xlsx or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, list []people.Person) (result, error) {
			if err := export.Write(output, a.cfg.Export.SheetName, list); err != nil {
				return result{}, err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				tui.SuccessStyle.Render(fmt.Sprintf("exported %d people to %s", len(list), output)))
			return result{people: list}, nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.xlsx, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
