package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage(w io.Writer) {
	printCommands(w, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print each once under its shortest name
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}
	type line struct {
		names   []string
		command *Command
	}
	var lines []line
	for command, ns := range names {
		slices.SortFunc(ns, func(a, b string) int {
			if len(a) != len(b) {
				return len(a) - len(b)
			}
			return strings.Compare(a, b)
		})
		lines = append(lines, line{ns, command})
	}
	slices.SortFunc(lines, func(a, b line) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	indent := strings.Repeat("  ", depth)
	for _, l := range lines {
		fmt.Fprintf(w, "%s%s", indent, strings.Join(l.names, ", "))
		if l.command.Func.IsValid() {
			for i := range l.command.Func.Type().NumIn() {
				fmt.Fprintf(w, " <%v>", l.command.Func.Type().In(i))
			}
		}
		if l.command.Description != "" {
			fmt.Fprintf(w, "\t%s", l.command.Description)
		}
		fmt.Fprintln(w)
		if len(l.command.Subs) > 0 {
			printCommands(w, l.command.Subs, depth+1)
		}
	}
}
