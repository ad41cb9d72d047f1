// Command hlxc is the HLX client executable: one-shot verbs for scripting
// and a REPL for interactive use, both built over internal/client against
// a single internal/exchange.Manager-owned connection.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/openhlx/hlxgo/internal/client"
	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
	"github.com/openhlx/hlxgo/internal/transport"
)

// CLI is hlxc's command-line surface: a destination (TCP address or
// serial device) shared by every subcommand, plus one subcommand per
// command group.
type CLI struct {
	Addr    string        `help:"TCP address of the HLX unit (host:port)." default:""`
	Serial  string        `help:"Serial device instead of TCP (e.g. /dev/ttyUSB0)." default:""`
	Baud    int           `help:"Serial baud rate; 0 selects the matrix's documented default." default:"0"`
	Timeout time.Duration `help:"Per-exchange timeout." default:"2s"`

	ZoneQuery   ZoneQueryCmd   `cmd:"" name:"zone-query" help:"Report a zone's full state."`
	ZoneVolume  ZoneVolumeCmd  `cmd:"" name:"zone-set-volume" help:"Set a zone's volume."`
	ZoneMute    ZoneMuteCmd    `cmd:"" name:"zone-mute" help:"Mute or unmute a zone."`
	ZoneSource  ZoneSourceCmd  `cmd:"" name:"zone-set-source" help:"Route a source to a zone."`
	GroupQuery  GroupQueryCmd  `cmd:"" name:"group-query" help:"Report a group's name and membership."`
	GroupVolume GroupVolumeCmd `cmd:"" name:"group-set-volume" help:"Set every member zone's volume."`
	SourceName  SourceNameCmd  `cmd:"" name:"source-set-name" help:"Rename a source."`
	ConfigSave  ConfigSaveCmd  `cmd:"" name:"config-save" help:"Persist the running configuration."`
	ConfigLoad  ConfigLoadCmd  `cmd:"" name:"config-load" help:"Reload the configuration from backup."`
	ConfigReset ConfigResetCmd `cmd:"" name:"config-reset" help:"Factory-reset the configuration."`
	Repl        ReplCmd        `cmd:"" help:"Interactive command prompt."`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("hlxc"),
		kong.Description("HLX multi-zone audio matrix client"),
		kong.UsageOnError(),
	)

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conn, err := dial(cli)
	if err != nil {
		log.Error("hlxc: failed to connect", "err", err)
		os.Exit(2)
	}

	mgr := exchange.New(conn, exchange.NotificationSinkFunc(func(entry protocol.Entry, captures [][]byte) {}), log, cli.Timeout)
	defer mgr.Close()
	cl := client.New(mgr)

	if err := kctx.Run(cl); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "hlxc:", err)
		os.Exit(2)
	}
}

func dial(cli *CLI) (transport.Connection, error) {
	if cli.Serial != "" {
		return transport.OpenSerial(cli.Serial, cli.Baud)
	}
	if cli.Addr == "" {
		return nil, errors.New("one of --addr or --serial is required")
	}
	return transport.Dial(cli.Addr)
}

var errUsage = errors.New("usage error")

func parseIdentifier(s string) (model.Identifier, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(model.IdentifierMin) {
		return 0, fmt.Errorf("%w: invalid identifier %q", errUsage, s)
	}
	return model.Identifier(n), nil
}

func parseLevel(s string) (int8, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < -100 || n > 100 {
		return 0, fmt.Errorf("%w: invalid level %q", errUsage, s)
	}
	return int8(n), nil
}

// ZoneQueryCmd reports a zone's decoded full snapshot.
type ZoneQueryCmd struct {
	ID string `arg:""`
}

func (c *ZoneQueryCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	snap, err := cl.Zones.Query(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", snap)
	return nil
}

// ZoneVolumeCmd sets a zone's volume level.
type ZoneVolumeCmd struct {
	ID    string `arg:""`
	Level string `arg:""`
}

func (c *ZoneVolumeCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	level, err := parseLevel(c.Level)
	if err != nil {
		return err
	}
	_, err = cl.Zones.SetVolume(context.Background(), id, level)
	return err
}

// ZoneMuteCmd mutes or unmutes a zone.
type ZoneMuteCmd struct {
	ID   string `arg:""`
	Mute bool   `arg:"" name:"mute" help:"true or false"`
}

func (c *ZoneMuteCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	return cl.Zones.Mute(context.Background(), id, c.Mute)
}

// ZoneSourceCmd routes a source onto a zone.
type ZoneSourceCmd struct {
	ID     string `arg:""`
	Source string `arg:""`
}

func (c *ZoneSourceCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	source, err := parseIdentifier(c.Source)
	if err != nil {
		return err
	}
	return cl.Zones.SetSource(context.Background(), id, source)
}

// GroupQueryCmd reports a group's name and member zones.
type GroupQueryCmd struct {
	ID string `arg:""`
}

func (c *GroupQueryCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	snap, err := cl.Groups.Query(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", snap)
	return nil
}

// GroupVolumeCmd sets every member zone's volume through the group
// orchestrator.
type GroupVolumeCmd struct {
	ID    string `arg:""`
	Level string `arg:""`
}

func (c *GroupVolumeCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	level, err := parseLevel(c.Level)
	if err != nil {
		return err
	}
	return cl.Groups.SetVolume(context.Background(), id, level)
}

// SourceNameCmd renames a source.
type SourceNameCmd struct {
	ID   string `arg:""`
	Name string `arg:""`
}

func (c *SourceNameCmd) Run(cl *client.Client) error {
	id, err := parseIdentifier(c.ID)
	if err != nil {
		return err
	}
	_, err = cl.Sources.SetName(context.Background(), id, c.Name)
	return err
}

// ConfigSaveCmd persists the running configuration to backup.
type ConfigSaveCmd struct{}

func (c *ConfigSaveCmd) Run(cl *client.Client) error {
	return cl.Configuration.Save(context.Background())
}

// ConfigLoadCmd reloads the configuration from backup.
type ConfigLoadCmd struct{}

func (c *ConfigLoadCmd) Run(cl *client.Client) error {
	return cl.Configuration.Load(context.Background())
}

// ConfigResetCmd factory-resets the configuration.
type ConfigResetCmd struct{}

func (c *ConfigResetCmd) Run(cl *client.Client) error {
	return cl.Configuration.ResetToDefaults(context.Background())
}

// ReplCmd reads one hlxc command line at a time from stdin until EOF,
// reusing the same parsed subcommand grammar as the one-shot form.
type ReplCmd struct{}

func (c *ReplCmd) Run(cl *client.Client) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("hlxc> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		args := strings.Fields(line)
		replCLI := &CLI{}
		parser, err := kong.New(replCLI, kong.Exit(func(int) {}))
		if err != nil {
			return err
		}
		replCtx, err := parser.Parse(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := replCtx.Run(cl); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
