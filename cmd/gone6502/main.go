// Command gone6502 runs or interactively inspects a raw 6502 program
// image loaded at mem.Origin.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/mark-keaton/nes-emulator/cpu"
)

func main() {
	app := &cli.App{
		Name:    "gone6502",
		Usage:   "run or inspect a 6502 program image",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			runCommand,
			inspectCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "load a program and run it to completion",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "abort if the program does not halt within this long",
			Value: 5 * time.Second,
		},
	},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("run: missing program file", 86)
		}
		program, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "run: reading %s", path)
		}

		m := cpu.New()
		if err := m.Load(program); err != nil {
			return errors.Wrap(err, "run")
		}
		m.Reset()

		ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- m.Run() }()

		select {
		case err := <-done:
			if err != nil {
				return errors.Wrap(err, "run")
			}
		case <-ctx.Done():
			return cli.Exit("run: program did not halt before the timeout", 1)
		}

		fmt.Printf("A=%02x X=%02x Y=%02x S=%02x PC=%04x\n", m.A, m.X, m.Y, m.S, m.PC)
		return nil
	},
}

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "load a program and step through it interactively",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("inspect: missing program file", 86)
		}
		program, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "inspect: reading %s", path)
		}

		m := cpu.New()
		if err := cpu.Inspect(m, program); err != nil {
			return errors.Wrap(err, "inspect")
		}
		return nil
	},
}
