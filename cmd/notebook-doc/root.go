package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/theSLWayne/notebook-doc/pkg/namespace"
	"github.com/theSLWayne/notebook-doc/pkg/orchestrator"
	"github.com/theSLWayne/notebook-doc/pkg/render"
)

const rootLongDesc = `
notebook-doc renders HTML documentation for the top-level functions of a Go
source file. Doc comments written in Google or NumPy docstring style are
parsed into structured sections (Args, Returns, Raises, Examples); everything
else is shown as plain description text. The output is one self-contained
HTML document with no external resources.
`

// cliConfig mirrors the YAML configuration file. Flags override any value
// set here.
type cliConfig struct {
	Source     string `yaml:"source"`
	ModuleName string `yaml:"module_name"`
	Output     string `yaml:"output"`
	Renderer   string `yaml:"renderer"`
	Theme      string `yaml:"theme"`
	Variant    string `yaml:"variant"`
	Links      bool   `yaml:"links"`
	Stylesheet string `yaml:"stylesheet"`
}

type cliApp struct {
	stdout io.Writer
	cfg    cliConfig

	configPath string
	noPrompt   bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "notebook-doc [flags] [source-file]",
		Short:         "Render HTML documentation for Go source files",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)

	flags := cmd.Flags()
	flags.StringVar(&app.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&app.cfg.Source, "source", "", "Go source file to document")
	flags.StringVarP(&app.cfg.ModuleName, "module-name", "m", "", "title for the generated document")
	flags.StringVarP(&app.cfg.Output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&app.cfg.Renderer, "renderer", "", "renderer to use")
	flags.StringVar(&app.cfg.Theme, "theme", "", "theme name (e.g. notebook)")
	flags.StringVar(&app.cfg.Variant, "variant", "", "theme variant (e.g. dark)")
	flags.BoolVar(&app.cfg.Links, "links", false, "render the function list as anchor links")
	flags.StringVar(&app.cfg.Stylesheet, "stylesheet", "", "CSS file inlined in place of the default stylesheet")
	flags.BoolVar(&app.noPrompt, "no-prompt", false, "fail instead of prompting for missing inputs")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] != "" {
			app.cfg.Source = args[0]
		}
		return app.execute(cmd)
	}
	return cmd
}

func (a *cliApp) execute(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	if err := a.resolveSource(); err != nil {
		return err
	}

	options := render.RenderOptions{Links: a.cfg.Links}
	if a.cfg.Stylesheet != "" {
		css, err := os.ReadFile(a.cfg.Stylesheet)
		if err != nil {
			return fmt.Errorf("read stylesheet: %w", err)
		}
		options.Stylesheet = string(css)
	}

	gen := orchestrator.New()
	output, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Source:        namespace.SourceFromFile(a.cfg.Source),
		ModuleName:    a.cfg.ModuleName,
		Renderer:      a.cfg.Renderer,
		ThemeName:     a.cfg.Theme,
		ThemeVariant:  a.cfg.Variant,
		RenderOptions: options,
	})
	if err != nil {
		return err
	}

	if a.cfg.Output != "" {
		if err := os.WriteFile(a.cfg.Output, output, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(a.stdout, "Documentation written to %s\n", a.cfg.Output)
		return nil
	}
	fmt.Fprintln(a.stdout, string(output))
	return nil
}

// loadConfig merges the YAML file under any flags the user set explicitly;
// flags win.
func (a *cliApp) loadConfig(cmd *cobra.Command) error {
	if a.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(a.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fileCfg cliConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", a.configPath, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("source") && a.cfg.Source == "" {
		a.cfg.Source = fileCfg.Source
	}
	if !flags.Changed("module-name") {
		a.cfg.ModuleName = fileCfg.ModuleName
	}
	if !flags.Changed("output") {
		a.cfg.Output = fileCfg.Output
	}
	if !flags.Changed("renderer") {
		a.cfg.Renderer = fileCfg.Renderer
	}
	if !flags.Changed("theme") {
		a.cfg.Theme = fileCfg.Theme
	}
	if !flags.Changed("variant") {
		a.cfg.Variant = fileCfg.Variant
	}
	if !flags.Changed("links") {
		a.cfg.Links = fileCfg.Links
	}
	if !flags.Changed("stylesheet") {
		a.cfg.Stylesheet = fileCfg.Stylesheet
	}
	return nil
}

// resolveSource prompts for the source file when it was not supplied via
// argument, flag, or config file.
func (a *cliApp) resolveSource() error {
	if a.cfg.Source != "" {
		return nil
	}
	if a.noPrompt {
		return errors.New("source file is required")
	}

	prompt := &survey.Input{
		Message: "Go source file to document:",
		Help:    "Path to a .go file whose top-level functions should be documented",
	}
	var path string
	err := survey.AskOne(prompt, &path, survey.WithValidator(survey.Required))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return errors.New("aborted")
		}
		return fmt.Errorf("prompt for source: %w", err)
	}
	a.cfg.Source = strings.TrimSpace(path)
	if a.cfg.Source == "" {
		return errors.New("source file is required")
	}
	return nil
}
