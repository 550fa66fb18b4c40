// Package shell is an interactive prompt for inspecting OBJ documents.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/internal/report"
	"github.com/Faultbox/objkit/internal/source"
	"github.com/Faultbox/objkit/pkg/obj"
)

// ErrNoDocument is returned by commands that need a loaded document.
var ErrNoDocument = errors.New("no document loaded")

// Shell holds the document being inspected. Commands write to out.
type Shell struct {
	cfg *config.Config
	out io.Writer
	log *zap.Logger
	doc *source.Document
}

// New creates a shell. A document can be loaded up front with Load.
func New(cfg *config.Config, out io.Writer) *Shell {
	return &Shell{cfg: cfg, out: out, log: logger.Named("shell")}
}

type command struct {
	usage string
	help  string
	run   func(sh *Shell, args []string) (quit bool, err error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"load":     {"load <path>", "parse a file and make it current", loadCmd},
		"objects":  {"objects", "list the objects of the current document", objectsCmd},
		"object":   {"object <name>", "show one object's pools and groups", objectCmd},
		"fmt":      {"fmt", "print the document in canonical form", fmtCmd},
		"validate": {"validate", "check index references against vertex pools", validateCmd},
		"help":     {"help", "list commands", helpCmd},
		"quit":     {"quit", "leave the shell", quitCmd},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load makes the file at path the current document.
func (sh *Shell) Load(path string) error {
	doc, err := source.Load(path, sh.cfg.Input)
	if err != nil {
		return err
	}
	sh.doc = doc
	fmt.Fprint(sh.out, report.Success(doc))
	return nil
}

// Execute runs one command line. It reports whether the shell should exit.
func (sh *Shell) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q, try help", fields[0])
	}
	sh.log.Debug("command", zap.String("name", name), zap.Strings("args", fields[1:]))
	return cmd.run(sh, fields[1:])
}

// Run reads commands from the terminal until quit or end of input.
func (sh *Shell) Run(prompt string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile(),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("starting shell: %w", err)
	}
	defer rl.Close()

	pterm.Info.Println("Type help for commands, quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		}
		if err != nil { // io.EOF
			break
		}
		quit, err := sh.Execute(line)
		if err != nil {
			fmt.Fprint(sh.out, report.Failure(err))
			continue
		}
		if quit {
			break
		}
	}
	return nil
}

func historyFile() string {
	dir := config.ConfigDir()
	if dir == "" {
		return ""
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range commandNames() {
		if name == "load" {
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(objFiles)))
			continue
		}
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// objFiles lists .obj files in the working directory for completion.
func objFiles(string) []string {
	matches, _ := filepath.Glob("*.obj")
	return matches
}

func (sh *Shell) current() (*source.Document, error) {
	if sh.doc == nil {
		return nil, ErrNoDocument
	}
	return sh.doc, nil
}

func loadCmd(sh *Shell, args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: load <path>")
	}
	return false, sh.Load(args[0])
}

func objectsCmd(sh *Shell, args []string) (bool, error) {
	doc, err := sh.current()
	if err != nil {
		return false, err
	}
	table, err := report.ObjectTable(doc.Set)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(sh.out, table)
	return false, nil
}

func objectCmd(sh *Shell, args []string) (bool, error) {
	doc, err := sh.current()
	if err != nil {
		return false, err
	}
	if len(args) != 1 {
		return false, errors.New("usage: object <name>")
	}
	o, ok := doc.Set.Lookup(args[0])
	if !ok {
		return false, fmt.Errorf("no object named %q", args[0])
	}
	s := o.Stats()
	fmt.Fprintf(sh.out, "object %s\n", o.Name)
	fmt.Fprintf(sh.out, "  vertices  %d v, %d vt, %d vn\n", s.Vertices, s.TextureVertices, s.NormalVertices)
	fmt.Fprintf(sh.out, "  elements  %d p, %d l, %d f\n", s.Points, s.Lines, s.Faces)
	fmt.Fprintf(sh.out, "  groups    %s\n", joinGroups(o.Groups))
	fmt.Fprintf(sh.out, "  smoothing %s\n", joinSmoothing(o.SmoothingGroups))
	fmt.Fprintf(sh.out, "  bounds    %s\n", report.Bounds(o))
	return false, nil
}

func joinGroups(groups []obj.GroupName) string {
	if len(groups) == 0 {
		return "-"
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = string(g)
	}
	return strings.Join(names, " ")
}

func joinSmoothing(groups []obj.SmoothingGroup) string {
	if len(groups) == 0 {
		return "-"
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	return strings.Join(names, " ")
}

func fmtCmd(sh *Shell, args []string) (bool, error) {
	doc, err := sh.current()
	if err != nil {
		return false, err
	}
	_, err = source.Compositor(sh.cfg.Output).WriteTo(sh.out, doc.Set)
	return false, err
}

func validateCmd(sh *Shell, args []string) (bool, error) {
	doc, err := sh.current()
	if err != nil {
		return false, err
	}
	doc.Problems = obj.Validate(doc.Set)
	if len(doc.Problems) == 0 {
		fmt.Fprint(sh.out, pterm.Success.Sprintln("all indices in range"))
		return false, nil
	}
	fmt.Fprint(sh.out, report.Problems(doc))
	return false, nil
}

func helpCmd(sh *Shell, args []string) (bool, error) {
	for _, name := range commandNames() {
		c := commands[name]
		fmt.Fprintf(sh.out, "  %-14s %s\n", c.usage, c.help)
	}
	return false, nil
}

func quitCmd(sh *Shell, args []string) (bool, error) {
	return true, nil
}
