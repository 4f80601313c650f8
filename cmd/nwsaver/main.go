package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/nwsaver"
	"github.com/bodgit/nwsaver/container"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newNWSaver(c *cli.Context) (*nwsaver.NWSaver, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return nwsaver.New(logger, c.String("image-format"))
}

// exitError maps the kind of error to a distinct exit status.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	return cli.NewExitError(err, int(container.KindOf(err)))
}

func requireArg(c *cli.Context) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
}

var deviceFlag = &cli.StringFlag{
	Name:     "device",
	Aliases:  []string{"d"},
	Usage:    fmt.Sprintf("target device (%s)", strings.Join(nwsaver.Devices(), ", ")),
	Required: true,
}

func main() {
	app := cli.NewApp()

	app.Name = "nwsaver"
	app.Usage = "Sony NW-A1000/NW-E500 screensaver utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "image-format",
			EnvVars: []string{"NWSAVER_IMAGE_FORMAT"},
			Value:   "png",
			Usage:   "format for written images (png, qoi)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "create",
			Usage:       "Create a screensaver",
			Description: "Encode the screensaver described by a YAML configuration",
			ArgsUsage:   "CONFIG",
			Flags: []cli.Flag{
				deviceFlag,
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "output screensaver file",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				requireArg(c)

				n, err := newNWSaver(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return exitError(n.Create(c.String("device"), c.Args().First(), c.String("output")))
			},
		},
		{
			Name:        "disassemble",
			Usage:       "Disassemble a screensaver to edit it",
			Description: "Decode a screensaver into images and a YAML configuration",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "output directory",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				requireArg(c)

				n, err := newNWSaver(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return exitError(n.Disassemble(c.Args().First(), c.String("output")))
			},
		},
		{
			Name:        "batch",
			Usage:       "Disassemble every screensaver in a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "output directory",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				requireArg(c)

				n, err := newNWSaver(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return exitError(n.Batch(c.Args().First(), c.String("output")))
			},
		},
		{
			Name:        "prepare",
			Usage:       "Fit an image to a screensaver bitmap",
			Description: "Scale, crop and reduce artwork to the gray levels of a device",
			ArgsUsage:   "IMAGE",
			Flags: []cli.Flag{
				deviceFlag,
				&cli.StringFlag{
					Name:    "kind",
					Aliases: []string{"k"},
					Value:   "bitmap",
					Usage:   "kind of bitmap (bitmap, thumbnail)",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "use error diffusion instead of tone mapping",
				},
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "output image",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				requireArg(c)

				n, err := newNWSaver(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return exitError(n.Prepare(c.String("device"), c.String("kind"), c.Args().First(), c.String("output"), c.Bool("dither")))
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
