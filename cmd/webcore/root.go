package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webcore"
	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/domdbg"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const sampleDocument = `<!DOCTYPE html>
<html>
  <head>
    <style>
      h1 { display: block; font-size: 2em; }
      .note { color: #336699; }
      #main { margin-top: 12px; }
    </style>
  </head>
  <body>
    <h1>webcore</h1>
    <div id="main" class="note">
      <p>Hello <em>world</em>!</p>
    </div>
  </body>
</html>`

// tracer traces with key 'webcore.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.cmd")
}

var traceKeys = []string{
	"webcore", "webcore.cmd", "webcore.diagnostics", "webcore.dom", "webcore.markup",
	"webcore.style", "webcore.cssom", "webcore.cssparser", "webcore.douceur",
	"webcore.styledtree", "webcore.css", "webcore.domdbg",
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		flags      = defaultConfig()
	)
	cmd := &cobra.Command{
		Use:   "webcore [file.html]",
		Short: "Parse and style a document",
		Long: `webcore parses a document and stylesheets, resolves the cascade
and prints the styled tree, or one of the intermediate results.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configFile != "" {
				var err error
				if cfg, err = loadConfig(configFile, cfg); err != nil {
					return err
				}
			}
			cfg = overrideFromFlags(cmd, cfg, flags)
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "YAML configuration file")
	cmd.Flags().StringArrayVar(&flags.CSS, "css", nil, "stylesheet file (repeatable)")
	cmd.Flags().StringVar(&flags.Engine, "engine", flags.Engine, "stylesheet parser: native|douceur")
	cmd.Flags().StringVar(&flags.Format, "format", flags.Format, "output format: tree|dot|html|css")
	cmd.Flags().StringVar(&flags.Trace, "trace", flags.Trace, "trace level: error|info|debug")
	return cmd
}

// overrideFromFlags lets flags given on the command line win over
// configuration file settings.
func overrideFromFlags(cmd *cobra.Command, cfg, flags Config) Config {
	if cmd.Flags().Changed("css") {
		cfg.CSS = flags.CSS
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = flags.Engine
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.Format
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = flags.Trace
	}
	return cfg
}

func setTraceLevel(level string) error {
	set := func(apply func(tracing.Trace)) {
		for _, key := range traceKeys {
			apply(tracing.Select(key))
		}
	}
	switch level {
	case "error":
		set(func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelError) })
	case "info":
		set(func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelInfo) })
	case "debug":
		set(func(t tracing.Trace) { t.SetTraceLevel(tracing.LevelDebug) })
	default:
		return errors.Errorf("unknown trace level %q", level)
	}
	return nil
}

func run(out, errout io.Writer, cfg Config, args []string) error {
	if err := setTraceLevel(cfg.Trace); err != nil {
		return err
	}
	engine, err := webcore.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}
	html := sampleDocument
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading document")
		}
		html = string(data)
	}
	var sheets []string
	for _, path := range cfg.CSS {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "reading stylesheet")
		}
		sheets = append(sheets, string(data))
	}
	tracer().Infof("document with %d stylesheets, engine %s", len(sheets), engine)
	sink := diagnostics.NewSink()
	result, err := webcore.Load(html, sheets, webcore.WithEngine(engine), webcore.WithSink(sink))
	for _, msg := range sink.Messages() {
		if msg.Severity != diagnostics.Info || cfg.Trace != "error" {
			fmt.Fprintln(errout, msg)
		}
	}
	if err != nil {
		return err
	}
	return output(out, cfg.Format, result)
}

func output(w io.Writer, format string, result *webcore.Result) error {
	switch format {
	case "tree":
		_, err := io.WriteString(w, domdbg.Treeprint(result.Styled...))
		return err
	case "dot":
		for _, sn := range result.Styled {
			if err := domdbg.ToGraphViz(sn, w, nil); err != nil {
				return err
			}
		}
		return nil
	case "html":
		if err := dom.Render(w, result.Document); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "css":
		_, err := io.WriteString(w, result.StyleSheet.String())
		return err
	}
	return errors.Errorf("unknown output format %q", format)
}
