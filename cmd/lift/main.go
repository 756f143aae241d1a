// Command lift applies lift pipelines to JSON or YAML documents.
//
//	lift sort people.json --by address.city --locale de
//	cat tags.yaml | lift distinct --format yaml
//	lift group people.json --by role --format table
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'spacelift.cli'
func tracer() tracing.Trace {
	return tracing.Select("spacelift.cli")
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("lift").
		SetVersion("v0.1.0").
		SetDescription("Sort, de-duplicate, group and flatten the elements of JSON or YAML arrays.")

	register("sort", "Sort the elements of an array, stably.", "sort elements").
		AddFlag("by,b", "dot path of the sort key in object elements", commando.String, "-").
		AddFlag("reverse,r", "sort descending", commando.Bool, nil).
		AddFlag("ignore-case,i", "case-fold string keys", commando.Bool, nil).
		AddFlag("locale,l", "collate string keys for a BCP 47 locale (e.g. en, de, sv)", commando.String, "-").
		SetAction(action("sort"))

	register("distinct", "Keep the first element for every key.", "drop duplicates").
		AddFlag("by,b", "dot path of the key in object elements", commando.String, "-").
		SetAction(action("distinct"))

	register("group", "Group the elements of an array into an object keyed by --by.", "group elements").
		AddFlag("by,b", "dot path of the group key in object elements", commando.String, "-").
		SetAction(action("group"))

	register("flatten", "Splice nested arrays one level deep.", "flatten one level").
		SetAction(action("flatten"))

	register("compact", "Remove null, false, empty string and zero elements.", "remove falsy elements").
		SetAction(action("compact"))

	register("set", "Turn the elements into an object of stringified keys.", "set of elements").
		SetAction(action("set"))

	commando.Parse(nil)
}

// register adds a command with the arguments and flags shared by every
// command.
func register(name, desc, short string) *commando.Command {
	return commando.
		Register(name).
		SetDescription(desc).
		SetShortDescription(short).
		AddArgument("file", "input document, JSON or YAML ('-' reads stdin)", "-").
		AddFlag("format,f", "output format: json|yaml|table|auto", commando.String, "auto").
		AddFlag("verbose,V", "trace pipeline steps", commando.Bool, nil)
}

func action(command string) func(map[string]commando.ArgValue, map[string]commando.FlagValue) {
	return func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
		if mustFlagBool(flags["verbose"], "verbose") {
			tracer().SetTraceLevel(tracing.LevelDebug)
			tracing.Select("spacelift.lift").SetTraceLevel(tracing.LevelDebug)
		}
		p, err := newPipeline(command, flags)
		if err != nil {
			fatalf("%v", err)
		}
		format, err := resolveFormat(flagString(flags, "format"), os.Stdout.Fd())
		if err != nil {
			fatalf("%v", err)
		}
		file := strings.TrimSpace(args["file"].Value)
		doc, err := readDocument(file, os.Stdin)
		if err != nil {
			fatalf("%v", err)
		}
		tracer().Debugf("applying %s to %s", command, file)
		result, err := p.apply(doc)
		if err != nil {
			fatalf("%v", err)
		}
		if err := render(os.Stdout, result, format); err != nil {
			fatalf("%v", err)
		}
	}
}

// We use pterm for moderately fancy error output.
func initDisplay() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.spacelift.cli":  "Error",
		"trace.spacelift.lift": "Error",
		"trace.spacelift.dict": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "lift: error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

// flagString returns a string flag, with the "-" placeholder read as empty.
func flagString(flags map[string]commando.FlagValue, name string) string {
	flag, ok := flags[name]
	if !ok {
		return ""
	}
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
