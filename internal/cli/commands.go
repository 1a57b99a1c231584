package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wedding-timeline/internal/checklist"
	"wedding-timeline/internal/timeline"
)

var (
	errDateRequired = errors.New("a wedding date is required, pass --date")
	errFileRequired = errors.New("a checklist file is required, pass --file")
)

func (c *CLI) countdownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "countdown",
		Short: "Show how long is left before the wedding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.uc.Countdown(cmd.Context(), timeline.CountdownInput{WeddingDate: c.weddingDate})
			if err != nil {
				return err
			}
			if !out.HasDate {
				return errDateRequired
			}

			msg := c.okColor
			if out.Countdown.Urgent {
				msg = c.warnColor
			}
			msg.Fprintln(c.out, out.Countdown.Message)
			c.mutedColor.Fprintf(c.out, "%s · %d days · %s months\n",
				out.WeddingDate.Format("Mon 2 Jan 2006"), out.DaysUntilWedding, formatFloat(out.MonthsUntilWedding))
			return nil
		},
	}
}

func (c *CLI) phasesCommand() *cobra.Command {
	var adaptive bool

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List the planning phases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if adaptive {
				return c.printAdaptive(cmd)
			}

			out, err := c.uc.ListPhases(cmd.Context(), timeline.ListPhasesInput{WeddingDate: c.weddingDate})
			if err != nil {
				return err
			}
			for _, v := range out.Phases {
				c.titleColor.Fprintf(c.out, "%s %s", v.Phase.Icon, v.Phase.Name)
				fmt.Fprintf(c.out, "  %s-%s months before", formatFloat(v.Phase.StartMonths), formatFloat(v.Phase.EndMonths))
				if v.Status != "" {
					c.statusColor(v.Status).Fprintf(c.out, "  [%s]", v.Status)
				}
				fmt.Fprintln(c.out)
				c.mutedColor.Fprintf(c.out, "   %s\n", v.Phase.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "fit the phases to the time left")
	return cmd
}

func (c *CLI) printAdaptive(cmd *cobra.Command) error {
	in, err := c.planInput()
	if err != nil {
		return err
	}
	if in.WeddingDate == "" {
		return errDateRequired
	}

	out, err := c.uc.AdaptiveTimeline(cmd.Context(), in)
	if err != nil {
		return err
	}
	for _, p := range out.Phases {
		c.titleColor.Fprintf(c.out, "%s %s", p.Icon, p.Name)
		fmt.Fprintf(c.out, "  %s → %s", p.AdaptedStartDate.Format("2006-01-02"), p.AdaptedEndDate.Format("2006-01-02"))
		if p.CompressionLevel > 0 {
			c.warnColor.Fprintf(c.out, "  compressed %.0f%%", p.CompressionLevel*100)
		}
		fmt.Fprintln(c.out)
	}
	return nil
}

func (c *CLI) suggestCommand() *cobra.Command {
	var (
		smart bool
		write bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest tasks that are missing from your checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.planInput()
			if err != nil {
				return err
			}
			if in.WeddingDate == "" {
				return errDateRequired
			}
			if write && c.file == "" {
				return errFileRequired
			}

			var texts []string
			if smart {
				out, err := c.uc.SmartSuggestions(cmd.Context(), in)
				if err != nil {
					return err
				}
				for _, s := range out.Suggestions {
					c.priorityColor(s.UrgencyLevel).Fprintf(c.out, "• %s", s.Text)
					c.mutedColor.Fprintf(c.out, "  (%s, ~%d days)\n", s.AICategory, s.EstimatedDuration)
					texts = append(texts, s.Text)
				}
			} else {
				out, err := c.uc.SuggestTodos(cmd.Context(), in)
				if err != nil {
					return err
				}
				for _, s := range out.Todos {
					c.priorityColor(s.Urgency).Fprintf(c.out, "• %s", s.Text)
					c.mutedColor.Fprintf(c.out, "  (%s)\n", s.Phase)
					texts = append(texts, s.Text)
				}
			}

			if len(texts) == 0 {
				c.okColor.Fprintln(c.out, "Nothing to add. Your checklist covers it all.")
				return nil
			}
			if write {
				return c.appendToChecklist(texts)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&smart, "smart", false, "suggest per category, escalating vendors short on lead time")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "append the suggestions to the checklist file")
	return cmd
}

func (c *CLI) appendToChecklist(texts []string) error {
	boxes := make([]checklist.Checkbox, 0, len(texts))
	for _, t := range texts {
		boxes = append(boxes, checklist.Checkbox{Text: t})
	}

	raw, err := os.ReadFile(c.file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read checklist: %w", err)
	}

	content := string(raw)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += c.checklist.Render(boxes)

	if err := os.WriteFile(c.file, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write checklist: %w", err)
	}
	c.okColor.Fprintf(c.out, "Added %d task(s) to %s\n", len(texts), c.file)
	return nil
}

func (c *CLI) insightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show progress, timeline stress and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.planInput()
			if err != nil {
				return err
			}

			out, err := c.uc.Insights(cmd.Context(), in)
			if err != nil {
				return err
			}
			ins := out.Insights

			c.titleColor.Fprintln(c.out, "Progress")
			if c.file != "" {
				raw, err := os.ReadFile(c.file)
				if err != nil {
					return fmt.Errorf("read checklist: %w", err)
				}
				stats := c.checklist.GetStats(string(raw))
				c.mutedColor.Fprintf(c.out, "  %d of %d boxes ticked in %s\n", stats.Completed, stats.Total, c.file)
			}
			fmt.Fprintf(c.out, "  %.0f%% done, %d critical task(s) left\n", ins.OverallProgress, ins.CriticalTasksRemaining)
			stress := c.okColor
			if ins.TimelineStress > 0.5 {
				stress = c.warnColor
			}
			stress.Fprintf(c.out, "  timeline stress %.0f%%\n", ins.TimelineStress*100)
			if ins.CurrentPhase != nil {
				fmt.Fprintf(c.out, "  current phase: %s %s\n", ins.CurrentPhase.Icon, ins.CurrentPhase.Name)
			}

			if len(ins.PriorityTasks) > 0 {
				c.titleColor.Fprintln(c.out, "Priority tasks")
				for _, t := range ins.PriorityTasks {
					c.priorityColor(t.UrgencyLevel).Fprintf(c.out, "  • %s\n", t.Text)
				}
			}
			if len(ins.OverdueTasks) > 0 {
				c.titleColor.Fprintln(c.out, "Overdue")
				for _, t := range ins.OverdueTasks {
					c.errorColor.Fprintf(c.out, "  • %s\n", t.Text)
				}
			}
			if len(ins.Recommendations) > 0 {
				c.titleColor.Fprintln(c.out, "Recommendations")
				for _, r := range ins.Recommendations {
					c.warnColor.Fprintf(c.out, "  → %s\n", r)
				}
			}
			return nil
		},
	}
}

func (c *CLI) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <task text>",
		Short: "Tick off every checklist item containing the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.file == "" {
				return errFileRequired
			}
			raw, err := os.ReadFile(c.file)
			if err != nil {
				return fmt.Errorf("read checklist: %w", err)
			}

			out, err := c.checklist.UpdateCheckbox(checklist.UpdateCheckboxInput{
				Content:      string(raw),
				CheckboxText: strings.Join(args, " "),
				Checked:      true,
			})
			if err != nil {
				return err
			}
			if !out.Updated {
				c.warnColor.Fprintf(c.out, "No task matches %q\n", strings.Join(args, " "))
				return nil
			}

			if err := os.WriteFile(c.file, []byte(out.Content), 0o644); err != nil {
				return fmt.Errorf("write checklist: %w", err)
			}
			c.okColor.Fprintf(c.out, "Marked %d task(s) done\n", out.Count)
			return nil
		},
	}
}
