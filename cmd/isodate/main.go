// Command isodate reprints ISO 8601 dates and date-times in their canonical
// extended form. Inputs are taken from the arguments, or from stdin one per
// line when no arguments are given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	iso8601 "github.com/ngrash/go-iso8601"
)

var zoneFlag = flag.String("zone", "", "render date-times in the given IANA time zone instead of UTC")

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	var loc *time.Location
	if *zoneFlag != "" {
		var err error
		loc, err = time.LoadLocation(*zoneFlag)
		if err != nil {
			return fmt.Errorf("loading zone: %w", err)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := reprint(loc, scanner.Text()); err != nil {
				return err
			}
		}
		return scanner.Err()
	}
	for _, arg := range args {
		if err := reprint(loc, arg); err != nil {
			return err
		}
	}
	return nil
}

func reprint(loc *time.Location, input string) error {
	if loc != nil {
		z, err := iso8601.ParseZonedDateTime(loc, input)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}
		fmt.Println(iso8601.FormatZoned(z))
		return nil
	}
	// A plain date renders as a date; everything else must be a date-time.
	if d, err := iso8601.ParseDate(input); err == nil {
		fmt.Println(iso8601.FormatDate(d))
		return nil
	}
	t, err := iso8601.ParseDateTime(input)
	if err != nil {
		return fmt.Errorf("%q: %w", input, err)
	}
	fmt.Println(iso8601.FormatDateTime(t))
	return nil
}
