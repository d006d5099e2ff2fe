package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"GopherScript/internal/app"
	"GopherScript/internal/behaviour"
	"GopherScript/internal/config"
	"GopherScript/internal/logger"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	// Import scripts package to register all scripts via init()
	_ "GopherScript/scripts"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Run struct {
		Configs []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order." type:"existingfile"`
		Frames  int      `help:"Stop after this many frames (overrides app.max_frames)." default:"-1"`
		Console string   `help:"Print the console history at or above this level when the run ends."`
	} `cmd:"" default:"withargs" help:"Run the sandbox application."`

	Scripts struct {
	} `cmd:"" help:"List registered script classes."`

	Inspect struct {
		Class string `arg:"" help:"Script class to inspect."`
	} `cmd:"" help:"Print a script class's default inspector fields as YAML."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sandbox"),
		kong.Description("Headless sandbox for gameplay scripts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	var err error
	switch ctx.Command() {
	case "run", "run <configs>":
		err = runCommand(CLI.Run.Configs, CLI.Run.Frames, CLI.Run.Console)
	case "scripts":
		for _, name := range behaviour.GetAvailableScripts() {
			fmt.Println(name)
		}
	case "inspect <class>":
		err = inspectCommand(CLI.Inspect.Class)
	case "config":
		_, err = os.Stdout.Write(config.DEFAULT)
	}
	if err != nil {
		writeError(err)
	}
}

func runCommand(configs []string, frames int, console string) error {
	cfg, err := config.Load(configs...)
	if err != nil {
		return err
	}

	var consoleLevel zapcore.Level
	if console != "" {
		if consoleLevel, err = logger.ParseLevel(console); err != nil {
			return fmt.Errorf("--console: %w", err)
		}
	}
	if frames >= 0 {
		cfg.App.MaxFrames = frames
	}

	level := cfg.Log.Level
	if CLI.Debug {
		level = "debug"
	}
	if err := logger.Configure(level, cfg.Log.Development); err != nil {
		return err
	}
	defer logger.Sync()

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	application.PushLayer(NewGameLayer(application.Scripts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := application.Run(ctx)
	if runErr != nil {
		logger.Log.Error("Application stopped with error", zap.Error(runErr))
	}

	if console != "" {
		logger.Sync()
		if err := writeConsole(os.Stdout, consoleLevel); err != nil && runErr == nil {
			return err
		}
	}
	return runErr
}

func inspectCommand(class string) error {
	script := behaviour.CreateScript(class)
	if script == nil {
		return fmt.Errorf("unknown script class %q (see 'sandbox scripts')", class)
	}

	fields := yaml.Node{Kind: yaml.MappingNode}
	for _, f := range behaviour.InspectFields(script) {
		var value yaml.Node
		if err := value.Encode(f.Value); err != nil {
			return err
		}
		fields.Content = append(fields.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}, &value)
	}

	out := struct {
		Name   string     `yaml:"name"`
		Fields *yaml.Node `yaml:"fields"`
	}{class, &fields}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
