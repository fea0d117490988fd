package pairmap

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel string   `name:"log-level" help:"Set log level (debug, info, notice, warn, error)" default:"info" env:"PAIRMAP_LOG_LEVEL" json:"log_level,omitempty"`
	Config   string   `name:"config" short:"c" help:"Path to config file" default:"pairmap.yaml" env:"PAIRMAP_CONFIG" json:"config,omitempty"`
	ExtStr   []string `name:"ext-str" help:"external string values for Jsonnet" default:"" json:"ext_str,omitempty"`
	ExtCode  []string `name:"ext-code" help:"external code values for Jsonnet" default:"" json:"ext_code,omitempty"`

	Version struct{}     `cmd:"" help:"Show version" json:"version,omitempty"`
	Init    InitOption   `cmd:"" help:"Create config and empty data file" json:"init,omitempty"`
	Insert  InsertOption `cmd:"" help:"Append entries to the data file" json:"insert,omitempty"`
	Get     GetOption    `cmd:"" help:"Print the value of the first entry with the key" json:"get,omitempty"`
	GetKey  GetKeyOption `cmd:"" name:"get-key" help:"Print the key of the first entry with the value" json:"get_key,omitempty"`
	Render  RenderOption `cmd:"" help:"Render entries" json:"render,omitempty"`
	Diff    DiffOption   `cmd:"" help:"Show difference between the data file and another data file" json:"diff,omitempty"`
	Demo    DemoOption   `cmd:"" help:"Insert one entry into an in-memory map and look it up both ways" json:"demo,omitempty"`

	kctx           *kong.Context
	exitFunc       func(int)
	stderr, stdout io.Writer
	namedMappers   map[string]kong.Mapper
	setLogLevel    func(string) error
}

func NewCLI() *CLI {
	return &CLI{
		exitFunc: os.Exit,
		stderr:   os.Stderr,
		stdout:   os.Stdout,
		setLogLevel: func(string) error {
			return nil
		},
		namedMappers: map[string]kong.Mapper{},
	}
}

// Writers sets the writers for stdout and stderr. for testing
func (cli *CLI) Writers(stdout, stderr io.Writer) {
	cli.stdout = stdout
	cli.stderr = stderr
}

// Exit sets the exit function. for testing
func (cli *CLI) Exit(exitFunc func(int)) {
	cli.exitFunc = exitFunc
}

// NoExpandPath disables path expansion. for testing
func (cli *CLI) NoExpandPath() {
	cli.namedMappers["path"] = kong.MapperFunc(
		func(ctx *kong.DecodeContext, target reflect.Value) error {
			var path string
			err := ctx.Scan.PopValueInto("file", &path)
			if err != nil {
				return err
			}
			target.SetString(path)
			return nil
		},
	)
}

func (cli *CLI) SetLogLevelFunc(f func(string) error) {
	cli.setLogLevel = f
}

// Parse parses the command line arguments and returns the command name
func (cli *CLI) Parse(args []string) (string, error) {
	kongOpts := []kong.Option{
		kong.Vars{"version": Version},
		kong.Name(appName),
		kong.Description("pairmap is an insertion ordered string map with forward and reverse lookup"),
		kong.UsageOnError(),
		kong.Exit(cli.exitFunc),
		kong.Writers(cli.stdout, cli.stderr),
	}
	for k, v := range cli.namedMappers {
		kongOpts = append(kongOpts, kong.NamedMapper(k, v))
	}
	parser, err := kong.New(
		cli,
		kongOpts...,
	)
	if err != nil {
		return "", err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return "", err
	}
	if err := cli.setLogLevel(cli.LogLevel); err != nil {
		return "", fmt.Errorf("failed to set log level: %w", err)
	}
	cli.kctx = kctx
	cmdStr := kctx.Command()
	if cmdStr == "" {
		return "", fmt.Errorf("no command")
	}
	cmd := strings.Fields(cmdStr)[0]
	if cmd == "version" {
		fmt.Fprintf(cli.stdout, "%s %s\n", appName, Version)
		kctx.Exit(0)
	}
	return cmd, nil
}

func parseExtVars(values []string, kind string) (map[string]string, error) {
	ret := make(map[string]string)
	for _, s := range values {
		if s == "" {
			continue
		}
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid external %s value: %s", kind, s)
		}
		ret[kv[0]] = kv[1]
	}
	return ret, nil
}

func (cli *CLI) newConfigLoader() (*ConfigLoader, error) {
	extStr, err := parseExtVars(cli.ExtStr, "string")
	if err != nil {
		return nil, err
	}
	extCode, err := parseExtVars(cli.ExtCode, "code")
	if err != nil {
		return nil, err
	}
	return NewConfigLoader(extStr, extCode), nil
}

// NewApp creates a new App instance from the CLI configuration
func (cli *CLI) NewApp(ctx context.Context) (*App, error) {
	log.Println("[debug] config flag", cli.Config)
	loader, err := cli.newConfigLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateVersion(Version); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	app, err := New(ctx, cfg, WithConfigLoader(loader), WithStdout(cli.stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}
	return app, nil
}

// Run() runs the command
func (cli *CLI) Run(ctx context.Context, args []string) error {
	cmd, err := cli.Parse(args)
	if err != nil {
		return err
	}
	switch cmd {
	case "init":
		cli.Init.ConfigPath = cli.Config
		return Init(ctx, cli.Init)
	case "demo":
		cli.Demo.Writer = cli.stdout
		return Demo(ctx, cli.Demo)
	}
	app, err := cli.NewApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	switch cmd {
	case "insert":
		return app.Insert(ctx, cli.Insert)
	case "get":
		cli.Get.Writer = cli.stdout
		return app.Get(ctx, cli.Get)
	case "get-key":
		cli.GetKey.Writer = cli.stdout
		return app.GetKey(ctx, cli.GetKey)
	case "render":
		cli.Render.Writer = cli.stdout
		return app.Render(ctx, cli.Render)
	case "diff":
		cli.Diff.Writer = cli.stdout
		return app.Diff(ctx, cli.Diff)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}
