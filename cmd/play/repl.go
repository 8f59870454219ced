package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

var (
	errUsage = errors.New("uso incorrecto")
	errQuit  = errors.New("quit")
)

type handler struct {
	usage string
	run   func(args []string) error
}

// repl reads one command per line and dispatches it by its first word.
type repl struct {
	in       *bufio.Scanner
	out      io.Writer
	prompt   string
	handlers map[string]handler
	render   func() string
}

func newRepl(in io.Reader, out io.Writer, prompt string, render func() string) *repl {
	r := &repl{
		in:       bufio.NewScanner(in),
		out:      out,
		prompt:   prompt,
		handlers: make(map[string]handler),
		render:   render,
	}
	r.handle("ayuda", "ayuda", func([]string) error {
		r.help()
		return nil
	})
	r.handle("salir", "salir", func([]string) error { return errQuit })
	r.handle("tablero", "tablero", func([]string) error {
		r.println(r.render())
		return nil
	})
	return r
}

func (r *repl) handle(name, usage string, f func(args []string) error) {
	r.handlers[name] = handler{usage: usage, run: f}
}

func (r *repl) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *repl) help() {
	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		r.println("  " + r.handlers[n].usage)
	}
}

// Run loops until EOF or "salir".
func (r *repl) Run() error {
	r.println(r.render())
	for {
		fmt.Fprint(r.out, r.prompt)
		if !r.in.Scan() {
			r.println()
			return r.in.Err()
		}
		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			continue
		}
		h, ok := r.handlers[strings.ToLower(fields[0])]
		if !ok {
			r.println("comando desconocido, prueba 'ayuda'")
			continue
		}
		err := h.run(fields[1:])
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, errUsage):
			r.println("uso: " + h.usage)
		case err != nil:
			r.println("error: " + err.Error())
		}
	}
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, errUsage
	}
	v, err := cast.ToIntE(args[i])
	if err != nil {
		return 0, errUsage
	}
	return v, nil
}

func boolArg(args []string, i int) (bool, error) {
	if i >= len(args) {
		return false, errUsage
	}
	switch strings.ToLower(args[i]) {
	case "si", "sí", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	v, err := cast.ToBoolE(args[i])
	if err != nil {
		return false, errUsage
	}
	return v, nil
}

func restArg(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", errUsage
	}
	return strings.Join(args[i:], " "), nil
}
