package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/bodgit/snesinfo/database"
	"github.com/bodgit/snesinfo/snes"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func sizeToString(code uint8) string {
	if code < 32 {
		return fmt.Sprintf("%d (%d KB)", code, uint64(1)<<code)
	}
	return strconv.FormatUint(uint64(code), 10)
}

func offsetToString(offset int64) string {
	switch offset {
	case snes.LoROMTitleOffset:
		return fmt.Sprintf("0x%x (LoROM)", offset)
	case snes.HiROMTitleOffset:
		return fmt.Sprintf("0x%x (HiROM)", offset)
	default:
		return fmt.Sprintf("0x%x", offset)
	}
}

// Known values show their canonical code, anything else the raw byte
func codeToString(name string, code byte, known bool, raw byte) string {
	if known {
		return fmt.Sprintf("%s (0x%02x)", name, code)
	}
	return fmt.Sprintf("%s (raw 0x%02x)", name, raw)
}

func publisherToString(h snes.Header) string {
	if !h.Licensee.Assigned() {
		return fmt.Sprintf("Unassigned (0x%02x)", uint8(h.Licensee))
	}
	return fmt.Sprintf("%s (0x%02x)", h.Publisher, uint8(h.Licensee))
}

func render(w io.Writer, h snes.Header, sha string, verbose bool) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	fields := h.FieldBlock()

	mapping, ok := h.Mapping.Code()
	cartridge, known := h.Cartridge.Code()

	table.Append([]string{"Internal Name:", h.Name()})
	table.Append([]string{"Mapping:", codeToString(h.Mapping.String(), mapping, ok, fields[0])})
	table.Append([]string{"Cartridge:", codeToString(h.Cartridge.String(), cartridge, known, fields[1])})
	table.Append([]string{"ROM Size:", sizeToString(h.ROMSize)})
	table.Append([]string{"SRAM Size:", sizeToString(h.SRAMSize)})
	table.Append([]string{"Country:", h.Region.Country})
	table.Append([]string{"Video Mode:", h.Region.Timing.String()})
	table.Append([]string{"License:", publisherToString(h)})

	if verbose {
		table.Append([]string{"Title Offset:", offsetToString(h.TitleOffset)})
		table.Append([]string{"Field Block:", fmt.Sprintf("% x", fields[:])})
		if sha != "" {
			table.Append([]string{"SHA1:", sha})
		}
	}

	table.Render()
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	for i, path := range c.Args().Slice() {
		h, err := snes.DecodeFileAt(path, c.Int64("field-offset"))
		if err != nil {
			return cli.NewExitError(fmt.Errorf("%s: %w", path, err), 1)
		}

		var sha string
		if c.Bool("verbose") {
			if sha, err = database.ChecksumFile(path); err != nil {
				return cli.NewExitError(err, 1)
			}
		}

		if c.NArg() > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(path)
		}

		render(os.Stdout, h, sha, c.Bool("verbose"))
	}

	return nil
}

func importHeaders(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	db, err := database.NewDatabase(c.String("database"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	for _, path := range c.Args().Slice() {
		h, err := snes.DecodeFileAt(path, c.Int64("field-offset"))
		if err != nil {
			return cli.NewExitError(fmt.Errorf("%s: %w", path, err), 1)
		}

		sha, err := database.ChecksumFile(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if err := db.AddHeader(sha, h); err != nil {
			return cli.NewExitError(err, 1)
		}

		if c.Bool("verbose") {
			log.Printf("%s: %s", path, h)
		}
	}

	if c.Bool("verbose") {
		n, err := db.Count()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Printf("%d headers in %s", n, c.String("database"))
	}

	return nil
}

func lookup(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	db, err := database.NewDatabase(c.String("database"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()

	for i, path := range c.Args().Slice() {
		sha, err := database.ChecksumFile(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		h, ok, err := db.FindHeaderBySHA1(sha)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Println(path)

		if !ok {
			fmt.Println("not found")
			continue
		}

		render(os.Stdout, h, sha, c.Bool("verbose"))
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "snesinfo"
	app.Usage = "Super Famicom cartridge header utility"
	app.Version = "1.0.0"

	verbose := &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "increase verbosity",
	}

	fieldOffset := &cli.Int64Flag{
		Name:  "field-offset",
		Usage: "read the field block from `OFFSET`",
		Value: snes.FieldBlockOffset,
	}

	db := &cli.StringFlag{
		Name:     "database",
		Aliases:  []string{"d"},
		Usage:    "catalogue database `FILE`",
		EnvVars:  []string{"SNESINFO_DATABASE"},
		Required: true,
	}

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Info on one or more ROM images",
			Description: "",
			Action:      info,
			Flags: []cli.Flag{
				verbose,
				fieldOffset,
			},
		},
		{
			Name:        "import",
			Usage:       "Add the headers of one or more ROM images to a database",
			Description: "",
			Action:      importHeaders,
			Flags: []cli.Flag{
				verbose,
				fieldOffset,
				db,
			},
		},
		{
			Name:        "lookup",
			Usage:       "Find ROM images in a database",
			Description: "",
			Action:      lookup,
			Flags: []cli.Flag{
				verbose,
				db,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
