// Command ned2enu converts an orientation quaternion from NED to ENU.
//
//	ned2enu threejs <w> <x> <y> <z>
//
// The result is printed as "w x y z" and is not normalized.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"ned-enu-converter/internal/frame"
	"ned-enu-converter/internal/mathutil"
)

const (
	mode  = "threejs"
	usage = "usage: ned2enu threejs <w> <x> <y> <z>"
)

// plainFloat is an optionally signed decimal with an optional exponent.
// Hex floats, digit separators and "inf"/"nan" spellings do not match.
var plainFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	err := newApp(args, stdout, stderr).Run(args)
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, err)

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

func newApp(args []string, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:        "ned2enu",
		Usage:       "convert a NED orientation quaternion to ENU",
		UsageText:   "ned2enu threejs <w> <x> <y> <z>",
		HideHelp:    true,
		HideVersion: true,
		Writer:      stdout,
		ErrWriter:   stderr,
		Commands: []*cli.Command{
			{
				Name:            mode,
				Usage:           "left-multiply by the NED to ENU transform quaternion",
				ArgsUsage:       "<w> <x> <y> <z>",
				HideHelp:        true,
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					return convert(c.Args().Slice(), stdout)
				},
			},
		},
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return cli.Exit(usage, 1)
			}
			return cli.Exit("unknown implementation: "+c.Args().First(), 1)
		},
		// A leading dash makes the mode look like a flag.
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			if len(args) > 1 {
				return cli.Exit("unknown implementation: "+args[1], 1)
			}
			return cli.Exit(usage, 1)
		},
		// Errors are printed by run; never exit from inside the app.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func convert(args []string, stdout io.Writer) error {
	if len(args) != 4 {
		return cli.Exit(usage, 1)
	}

	var q mathutil.Quat
	for i, arg := range args {
		v, err := parseComponent(arg)
		if err != nil {
			return cli.Exit("invalid float: "+arg, 1)
		}
		q[i] = v
	}

	out := frame.NEDToENU(q)
	parts := make([]string, len(out))
	for i, c := range out {
		parts[i] = formatComponent(c)
	}
	_, err := fmt.Fprintln(stdout, strings.Join(parts, " "))
	return err
}

func parseComponent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	if !plainFloat.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

// formatComponent prints the shortest representation that round-trips,
// in plain decimal for 1e-6 <= |v| < 1e21 and in exponent form otherwise.
func formatComponent(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// "1e-07" -> "1e-7"
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
