package main

import (
	"context"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	epdimage "github.com/bitbank2/epd-image"
	"github.com/bitbank2/epd-image/bmp"
	"github.com/bitbank2/epd-image/quant"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "mode",
			Value: "BW",
			Usage: "output mode: BW, BWR, BWY, BWYR or 4GRAY",
		},
		&cli.BoolFlag{
			Name:  "dither",
			Usage: "use Floyd-Steinberg dithering",
		},
		&cli.IntFlag{
			Name:  "rotate",
			Usage: "rotate the image clockwise by 0, 90, 180 or 270 degrees",
		},
		&cli.BoolFlag{
			Name:  "mirror",
			Usage: "mirror the image horizontally",
		},
		&cli.BoolFlag{
			Name:  "flipv",
			Usage: "flip the image vertically",
		},
		&cli.BoolFlag{
			Name:  "invert",
			Usage: "invert the colors",
		},
		&cli.BoolFlag{
			Name:  "direct",
			Usage: "copy 1-bpp sources directly without recoding",
		},
		&cli.BoolFlag{
			Name:  "paletted",
			Usage: "reduce truecolor sources to a 256-color palette on import",
		},
		&cli.StringFlag{
			Name:  "device",
			Usage: "target panel name, sets mode and orientation (e.g. GDEQ042Z21)",
		},
		&cli.StringFlag{
			Name:    "profiles",
			EnvVars: []string{"EPDIMAGE_PROFILES"},
			Usage:   "TOML file with extra panel profiles",
		},
		&cli.BoolFlag{
			Name:  "fit",
			Usage: "scale the image to the device's panel size",
		},
	}
}

// newConverter builds a Converter from the command's flags, resolving
// the device profile if one was named.
func newConverter(c *cli.Context) (*epdimage.Converter, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	mode, err := quant.ParseMode(c.String("mode"))
	if err != nil {
		return nil, err
	}

	cfg := epdimage.Config{
		Mode:     mode,
		Dither:   c.Bool("dither"),
		Rotation: c.Int("rotate"),
		Mirror:   c.Bool("mirror"),
		FlipV:    c.Bool("flipv"),
		Invert:   c.Bool("invert"),
		Direct:   c.Bool("direct"),
		Paletted: c.Bool("paletted"),
	}

	if cfg.Rotation%90 != 0 || cfg.Rotation < 0 || cfg.Rotation >= 360 {
		return nil, fmt.Errorf("rotation angle must be 0, 90, 180 or 270")
	}

	if name := c.String("device"); name != "" {
		var extra []epdimage.Profile
		if file := c.String("profiles"); file != "" {
			if extra, err = epdimage.LoadProfiles(file); err != nil {
				return nil, err
			}
		}
		p, err := epdimage.FindProfile(name, extra)
		if err != nil {
			return nil, err
		}
		if cfg.Mode, err = p.OutputMode(); err != nil {
			return nil, err
		}
		if c.Bool("fit") {
			cfg.Fit = &p
		}
	} else if c.Bool("fit") {
		return nil, fmt.Errorf("--fit needs --device to know the panel size")
	}

	return epdimage.New(cfg, logger), nil
}

func main() {
	app := cli.NewApp()

	app.Name = "epdimage"
	app.Usage = "prepare image data for e-paper displays"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert one image to a C array header",
			ArgsUsage: "INFILE OUTFILE",
			Flags:     convertFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := conv.ConvertFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Convert every supported image under a directory",
			ArgsUsage: "DIRECTORY",
			Flags:     convertFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := conv.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "watch",
			Usage:     "Watch a directory and convert images as they appear",
			ArgsUsage: "DIRECTORY",
			Flags:     convertFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if err := conv.Watch(ctx, c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Print the geometry of a BMP file",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				data, err := os.ReadFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				buf, err := bmp.Decode(data)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				order := "bottom-up"
				if buf.TopDown {
					order = "top-down"
				}
				fmt.Printf("%s: %dx%d, %d bpp, pitch %d, %s\n", c.Args().First(), buf.Width, buf.Height, buf.Bpp, buf.Pitch, order)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
