package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) listSamples(ctx context.Context, _ []string) error {
	samples, err := a.api.ListSamples(ctx)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		printEmpty(a.out, "samples")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATE\tINFO")
	for _, s := range samples {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, formatDate(s.Date), s.Info)
	}
	return tw.Flush()
}

func (a *App) addSample(ctx context.Context, args []string) error {
	info := strings.Join(args, " ")
	if info == "" {
		var err error
		if info, err = GetRequiredText(a.reader, "Info", a.out); err != nil {
			return err
		}
	}
	if err := a.api.AddSample(ctx, info); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Sample added.")
	return nil
}

func (a *App) deleteSample(ctx context.Context, args []string) error {
	if err := a.api.DeleteSample(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Sample deleted.")
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	results, err := a.api.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(a.out, "Nothing matches %q.\n", query)
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tCONTENT")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\n", r.ID, r.Content)
	}
	return tw.Flush()
}
