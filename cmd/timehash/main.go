// Command timehash encodes date-times as short sortable strings and decodes
// them back, a thin wrapper over the timehash library.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/arloliu/timehash"
	"github.com/arloliu/timehash/precision"
)

// CLI defines the command-line interface structure
type CLI struct {
	Hash   HashCmd   `cmd:"" help:"Encode an RFC 3339 date-time"`
	Unhash UnhashCmd `cmd:"" help:"Decode a timehash string"`
	Now    NowCmd    `cmd:"" help:"Encode the current UTC time at millisecond precision"`
	Tiers  TiersCmd  `cmd:"" help:"Print the precision tier table"`
}

// HashCmd encodes a single date-time
type HashCmd struct {
	Time      string `arg:"" help:"Date-time in RFC 3339 format, e.g. 2017-01-02T03:45:06.789Z"`
	Precision string `short:"p" help:"Tier: trim, milligroup, millis, microgroup, nanogroup, quadnano or nanos (default: pick from the value)"`
}

func (c *HashCmd) Run() error {
	t, err := time.Parse(time.RFC3339Nano, c.Time)
	if err != nil {
		return fmt.Errorf("parsing date-time: %w", err)
	}

	var out string
	if c.Precision == "" {
		out, err = timehash.Hash(t)
	} else {
		p, perr := tierByName(c.Precision)
		if perr != nil {
			return perr
		}
		out, err = timehash.HashPrecision(t, p)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

// UnhashCmd decodes a single timehash string
type UnhashCmd struct {
	Value string `arg:"" help:"Encoded string, 6 to 12 characters"`
}

func (c *UnhashCmd) Run() error {
	t, err := timehash.Unhash(c.Value)
	if err != nil {
		return err
	}
	fmt.Println(t.Format(time.RFC3339Nano))

	return nil
}

// NowCmd encodes the current UTC time
type NowCmd struct{}

func (c *NowCmd) Run() error {
	out, err := timehash.UTCNowMillis()
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

// TiersCmd prints the precision tier table
type TiersCmd struct{}

func (c *TiersCmd) Run() error {
	fmt.Printf("%-12s %-8s %s\n", "TIER", "PERIOD", "LENGTH")
	for _, p := range precision.All() {
		fmt.Printf("%-12s %-8s %d\n", strings.ToLower(p.String()), p.Period(), 6+p.Width())
	}

	return nil
}

func tierByName(name string) (precision.Precision, error) {
	for _, p := range precision.All() {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown precision %q", name)
}

func main() {
	ctx := kong.Parse(&CLI{},
		kong.Name("timehash"),
		kong.Description("Short, sortable, reversible timestamp strings."))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
