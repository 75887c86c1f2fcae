package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add key=value...",
		Short: "Add a record",
		Long: `Add a record built from key=value arguments:

  employee: name department salary hours
  student:  name program gpa credits
  course:   code title credits capacity`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFields(args)
			if err != nil {
				return err
			}

			s, err := openStore(a)
			if err != nil {
				return err
			}

			id, err := s.Add(f)
			if err != nil {
				return err
			}
			if _, err := s.Save(); err != nil {
				return err
			}

			a.logger.Debug("added record", zap.Stringer("id", id), zap.Int("records", s.Len()))
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every record in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(a)
			if err != nil {
				return err
			}
			render(cmd.OutOrStdout(), s, reverse)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "list from last to first")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <index>",
		Short: "Show the record at a 0-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], ers.ErrInvalidInput)
			}

			s, err := openStore(a)
			if err != nil {
				return err
			}

			rec, ok := s.Get(index)
			if !ok {
				return fmt.Errorf("index %d of %d records: %w", index, s.Len(), ers.ErrNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove the record with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("record id %q: %w: %w", args[0], ers.ErrInvalidInput, err)
			}

			s, err := openStore(a)
			if err != nil {
				return err
			}

			if !s.Remove(id) {
				return fmt.Errorf("record %s: %w", id, ers.ErrNotFound)
			}
			if _, err := s.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s, %d records left\n", id, s.Len())
			return nil
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	var (
		order      string
		descending bool
		ascending  bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Rank the records by a key and save them in that order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(a)
			if err != nil {
				return err
			}

			desc := a.conf.Descending
			switch {
			case descending:
				desc = true
			case ascending:
				desc = false
			}

			if err := s.Sort(order, desc); err != nil {
				return err
			}
			if _, err := s.Save(); err != nil {
				return err
			}

			render(cmd.OutOrStdout(), s, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "by", "b", "name", "sort key")
	cmd.Flags().BoolVarP(&descending, "desc", "d", false, "largest first")
	cmd.Flags().BoolVarP(&ascending, "asc", "a", false, "smallest first")
	cmd.MarkFlagsMutuallyExclusive("desc", "asc")
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the records to another file, optionally in another format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			to, err := recfile.ParseFormat(format)
			if err != nil {
				return err
			}

			s, err := openStore(a)
			if err != nil {
				return err
			}

			n, err := s.Export(out, to)
			if err != nil {
				return err
			}

			a.logger.Info("converted records", zap.String("to", out), zap.Stringer("format", to), zap.Int("records", n))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s (%s)\n", n, out, to)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file")
	cmd.Flags().StringVar(&format, "to-format", "counted", "destination format: counted or stream")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the records and verify the list structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore(a)
			if err != nil {
				return err
			}
			if err := s.Check(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records, %s\n", s.Len(), s.Topology())
			return nil
		},
	}
}

func render(w io.Writer, s store, reverse bool) {
	rows := s.Rows(reverse)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(s.Columns()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d records\n", len(rows))
}
