// Command chrono is a small inspection tool for the go-chrono
// library: it resolves local date-times against zone rules, converts
// zoned values between zones and exercises the pattern engine from
// the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/format"
	"github.com/ngrash/go-chrono/tz"
	"github.com/ngrash/go-chrono/tz/tzif"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chrono",
		Short:         "inspect dates, times and zone rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(resolveCmd(), convertCmd(), fmtCmd(), parseCmd())
	return root
}

// db serves zones from the host zoneinfo database.
var db = tzif.NewDB()

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <zone> <local-datetime>",
		Short: "show how a local date-time resolves under a zone's rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := db.Zone(args[0])
			if err != nil {
				return err
			}
			local, err := chrono.ParseDateTime(args[1])
			if err != nil {
				return err
			}
			r := zone.Resolve(local)
			fmt.Println("kind:", r.Kind())
			switch r.Kind() {
			case tz.ResolutionGap:
				fmt.Println("gap length:", r.GapLength())
				fmt.Println("adjusted local:", r.LocalDateTime())
				fmt.Println("offset:", r.Offset())
			case tz.ResolutionOverlap:
				fmt.Println("earlier offset:", r.EarlierOffset())
				fmt.Println("later offset:", r.LaterOffset())
				fmt.Println("default offset:", r.Offset())
			default:
				fmt.Println("offset:", r.Offset())
			}
			fmt.Println("instant:", r.Instant())
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <local-datetime> <from-zone> <to-zone>",
		Short: "convert a wall-clock reading between zones, preserving the instant",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := chrono.ParseDateTime(args[0])
			if err != nil {
				return err
			}
			from, err := db.Zone(args[1])
			if err != nil {
				return err
			}
			to, err := db.Zone(args[2])
			if err != nil {
				return err
			}
			converted, err := tz.Of(local, from).WithZoneSameInstant(to)
			if err != nil {
				return err
			}
			fmt.Println(converted)
			return nil
		},
	}
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <pattern> <zoned-datetime>",
		Short: "format an ISO zoned date-time with a pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Compile(args[0])
			if err != nil {
				return err
			}
			z, err := tz.Parse(args[1], db)
			if err != nil {
				return err
			}
			out, err := f.Format(format.OfZoned(z))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	var lenient bool
	cmd := &cobra.Command{
		Use:   "parse <pattern> <input>",
		Short: "parse input text with a pattern and print the fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Compile(args[0])
			if err != nil {
				return err
			}
			var p *format.Parsed
			if lenient {
				p, err = f.ParseLenient(args[1])
			} else {
				p, err = f.Parse(args[1])
			}
			if err != nil {
				return err
			}
			if dt, err := p.DateTime(); err == nil {
				fmt.Println("datetime:", dt)
			} else if d, err := p.Date(); err == nil {
				fmt.Println("date:", d)
			} else if t, err := p.Time(); err == nil {
				fmt.Println("time:", t)
			}
			if name, ok := p.ZoneName(); ok {
				fmt.Println("zone:", name)
			}
			if off, ok, err := p.Offset(); err == nil && ok {
				fmt.Println("offset:", off)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "parse with flexible widths and case-insensitive text")
	return cmd
}
