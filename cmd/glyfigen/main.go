// Command glyfigen compiles a single glyph/ambigram challenge image and
// outputs it as a PNG. Requires a LaTeX installation, pdftoppm and
// imagemagick.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"github.com/sungodmoth/glyfi/backend/render"
	"github.com/sungodmoth/glyfi/backend/tex"
	"github.com/sungodmoth/glyfi/core"
	"github.com/sungodmoth/glyfi/core/font"
	"github.com/sungodmoth/glyfi/core/percent"
	"github.com/sungodmoth/glyfi/core/ucd"
	"github.com/sungodmoth/glyfi/engine/challenge"
	"github.com/sungodmoth/glyfi/input/suggestions"
)

// tracer traces with key 'glyfi.challenge'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.challenge")
}

// Working files, relative to the working directory the caller chose.
const (
	texFile = "weekly_challenges.tex"
	pdfFile = "weekly_challenges.pdf"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	initDisplay()

	globals := pflag.NewFlagSet("glyfigen", pflag.ContinueOnError)
	globals.SetInterspersed(false)
	verbose := globals.BoolP("verbose", "v", false,
		"print outputs of the subprocesses (e.g. pdftoppm) - primarily useful for debugging")
	out := globals.StringP("out", "o", "",
		"name of the output png (if unspecified, will follow the name of the chosen subcommand e.g. glyph_announcement.png)")
	startDate := globals.String("start_date", "", "date of beginning of challenge")
	endDate := globals.String("end_date", "", "date of end of challenge")
	week := globals.Int("week", 0, "current week number")
	globals.Usage = usage(globals)
	if err := globals.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return core.NOERROR
		}
		return core.EINVALID
	}
	rest := globals.Args()
	if len(rest) == 0 {
		pterm.Error.Println("missing subcommand")
		globals.Usage()
		return core.EINVALID
	}
	sub, subArgs := rest[0], rest[1:]

	conf := appConfig(*verbose)
	if err := setupTracing(conf); err != nil {
		pterm.Error.Println("error configuring tracing")
		return core.EINTERNAL
	}

	// load the reference tables every operation depends on
	scripts, err := ucd.LoadScripts(conf.GetString("scriptdata"))
	if err != nil {
		return fail(err)
	}
	fonts, err := font.LoadTable(conf, conf.GetString("fontdata"))
	if err != nil {
		return fail(err)
	}
	gen := &challenge.Generator{
		Fonts:   fonts,
		Scripts: scripts,
		Week:    *week,
	}

	block, err := generate(gen, conf, sub, subArgs)
	if err != nil {
		return fail(err)
	}

	doc, err := tex.LoadTemplate(conf.GetString("template"))
	if err != nil {
		return fail(err)
	}
	doc.Append(gen.Preamble(*startDate, *endDate))
	doc.Append(block)
	if err := doc.WriteFile(texFile); err != nil {
		return fail(err)
	}

	outName := *out
	if outName == "" {
		outName = sub
	}
	return runPipeline(conf, outName)
}

// generate dispatches to the operation named by the subcommand and
// returns its definition block.
func generate(gen *challenge.Generator, conf schuko.Configuration, sub string, args []string) (string, error) {
	var kind challenge.Kind
	switch {
	case strings.HasPrefix(sub, "glyph_"):
		kind = challenge.Glyph
	case strings.HasPrefix(sub, "ambigram_"):
		kind = challenge.Ambigram
	default:
		return "", core.Error(core.EINVALID, "unknown subcommand %q", sub)
	}
	op := strings.TrimPrefix(strings.TrimPrefix(sub, "glyph_"), "ambigram_")

	flags := pflag.NewFlagSet(sub, pflag.ContinueOnError)
	var scale, cols *int
	switch op {
	case "announcement", "first", "second", "third":
		scale = flags.Int("size_percentage", 0, "percentage modifier to be applied to the font size")
	case "poll":
		scale = flags.Int("size_percentage", 0, "percentage modifier to be applied to the font size")
		cols = flags.Int("cols", 0, "width in columns (determined from number of submissions by default)")
	case "suggestions":
		cols = flags.Int("cols", 0, "width in columns (determined from number of suggestions by default)")
	default:
		return "", core.Error(core.EINVALID, "unknown subcommand %q", sub)
	}
	if err := flags.Parse(args); err != nil {
		return "", core.ErrorWithCode(err, core.EINVALID)
	}
	if scale != nil {
		gen.Scale = percent.FromInt(*scale)
	}

	switch op {
	case "announcement":
		prompt, err := onePrompt(flags, sub)
		if err != nil {
			return "", err
		}
		return gen.Announcement(kind, prompt), nil
	case "poll":
		prompt, err := onePrompt(flags, sub)
		if err != nil {
			return "", err
		}
		return gen.Poll(kind, prompt, conf.GetString("images"), *cols)
	case "first", "second", "third":
		if flags.NArg() != 3 {
			return "", core.Error(core.EINVALID, "%s expects NICKNAME USER_ID SUB_ID", sub)
		}
		nickname := flags.Arg(0)
		if err := suggestions.Check(nickname); err != nil {
			return "", err
		}
		place := challenge.First
		switch op {
		case "second":
			place = challenge.Second
		case "third":
			place = challenge.Third
		}
		return gen.Winner(kind, place, nickname, flags.Arg(1), flags.Arg(2)), nil
	case "suggestions":
		list := make([]challenge.Suggestion, 0, flags.NArg())
		for _, arg := range flags.Args() {
			list = append(list, challenge.Suggestion{Text: arg})
		}
		if len(list) == 0 {
			file := suggestions.FileFor(kind)
			pterm.Info.Printfln("No arguments given; taking suggestions from %s...", file)
			var err error
			list, err = suggestions.Load(file)
			if err != nil {
				return "", err
			}
		}
		for _, s := range list {
			if err := suggestions.Check(s.Text); err != nil {
				return "", err
			}
		}
		return gen.Suggestions(kind, list, *cols), nil
	}
	return "", core.Error(core.EINVALID, "unknown subcommand %q", sub)
}

// onePrompt extracts and validates the single prompt argument of the
// announcement and poll operations.
func onePrompt(flags *pflag.FlagSet, sub string) (string, error) {
	if flags.NArg() != 1 {
		return "", core.Error(core.EINVALID, "%s expects exactly one prompt argument", sub)
	}
	prompt := flags.Arg(0)
	if err := suggestions.Check(prompt); err != nil {
		return "", err
	}
	return prompt, nil
}

// runPipeline drives the external pipeline: typeset, rasterize,
// downscale.
func runPipeline(conf schuko.Configuration, outName string) int {
	pterm.Info.Println("Compiling LaTeX code...")
	if err := render.Typeset(conf, texFile); err != nil {
		return fail(err)
	}
	pterm.Info.Println("Rendering image with pdftoppm...")
	if err := render.Rasterize(conf, pdfFile, outName); err != nil {
		return fail(err)
	}
	pterm.Info.Println("Downscaling with imagemagick...")
	if err := render.Downscale(conf, outName); err != nil {
		return fail(err)
	}
	tracer().Infof("wrote %s.png", outName)
	return core.NOERROR
}

// appConfig assembles the application configuration: trace levels for
// all tracers, plus the data file locations the packages look up.
func appConfig(verbose bool) testconfig.Conf {
	level := "Info"
	if verbose {
		level = "Debug"
	}
	return testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.glyfi.ucd":       level,
		"trace.glyfi.fonts":     level,
		"trace.glyfi.runs":      level,
		"trace.glyfi.tex":       level,
		"trace.glyfi.challenge": level,
		"trace.glyfi.render":    level,
		"app-key":               "glyfi",
		"scriptdata":            "Scripts.txt",
		"fontdata":              "fontdata.json",
		"template":              "weekly_challenges_base.tex",
		"images":                "images",
	}
}

// setupTracing wires the Go standard logger as tracing backend.
func setupTracing(conf testconfig.Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// fail reports err to the user and maps it to a process exit status.
func fail(err error) int {
	pterm.Error.Println(core.UserMessage(err))
	return core.Code(err)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func usage(globals *pflag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "usage: glyfigen [flags] <subcommand> [args]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Compiles a single glyph/ambigram challenge image and outputs as png.")
		fmt.Fprintln(os.Stderr, "Requires LaTeX installation, pdftoppm and imagemagick.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "flags:")
		fmt.Fprint(os.Stderr, globals.FlagUsages())
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "subcommands:")
		fmt.Fprintln(os.Stderr, "  glyph_announcement [--size_percentage PERCENT] <GLYPH>")
		fmt.Fprintln(os.Stderr, "  ambigram_announcement [--size_percentage PERCENT] <AMBI>")
		fmt.Fprintln(os.Stderr, "  glyph_poll [--cols N] [--size_percentage PERCENT] <GLYPH>")
		fmt.Fprintln(os.Stderr, "  ambigram_poll [--cols N] [--size_percentage PERCENT] <AMBI>")
		fmt.Fprintln(os.Stderr, "  glyph_first <NICKNAME> <USER_ID> <SUB_ID> [--size_percentage PERCENT]")
		fmt.Fprintln(os.Stderr, "  glyph_second <NICKNAME> <USER_ID> <SUB_ID> [--size_percentage PERCENT]")
		fmt.Fprintln(os.Stderr, "  glyph_third <NICKNAME> <USER_ID> <SUB_ID> [--size_percentage PERCENT]")
		fmt.Fprintln(os.Stderr, "  ambigram_first <NICKNAME> <USER_ID> <SUB_ID> [--size_percentage PERCENT]")
		fmt.Fprintln(os.Stderr, "  ambigram_second <NICKNAME> <USER_ID> <SUB_ID> [--size_percentage PERCENT]")
		fmt.Fprintln(os.Stderr, "  ambigram_third <NICKNAME> <USER_ID> <SUB_ID> [--size_percentage PERCENT]")
		fmt.Fprintln(os.Stderr, "  glyph_suggestions [--cols N] [<GLYPH1> <GLYPH2> ...]")
		fmt.Fprintln(os.Stderr, "  ambigram_suggestions [--cols N] [<AMBI1> <AMBI2> ...]")
	}
}
