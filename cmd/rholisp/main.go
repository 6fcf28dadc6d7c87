package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	rholisp "github.com/Ruan-pysoft/rholisp"
)

const helpText = `rholisp [-nostd] [-preload file]... [script] [-- args...]

  -nostd           don't load the bundled standard library
  -preload file    evaluate file before the script or REPL starts (repeatable)
  -h, -help        print this message and exit

With no script, rholisp starts an interactive REPL. Arguments after a
script path, or after a bare --, are bound to the global symbol args
as a list of strings.
`

type preloadFlags []string

func (p *preloadFlags) String() string { return strings.Join(*p, ",") }
func (p *preloadFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var preloads preloadFlags
	nostd := flag.Bool("nostd", false, "don't load the bundled standard library")
	flag.Var(&preloads, "preload", "evaluate file before the script or REPL starts")
	help := flag.Bool("h", false, "print help and exit")
	flag.BoolVar(help, "help", false, "print help and exit")
	flag.Parse()

	if *help {
		fmt.Print(helpText)
		os.Exit(1)
	}

	var opts []rholisp.Option
	if *nostd {
		opts = append(opts, rholisp.NoPrelude())
	}
	in, err := rholisp.NewInterpreter(opts...)
	if err != nil {
		log.Fatalf("rholisp: %s", err)
	}

	for _, p := range preloads {
		if err := runFile(in, p); err != nil {
			log.Fatalf("rholisp: -preload %s: %s", p, err)
		}
	}

	rest := flag.Args()
	var scriptPath string
	if len(rest) > 0 && rest[0] != "--" {
		scriptPath = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	bindArgs(in, rest)

	if scriptPath != "" {
		if err := runFile(in, scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "rholisp: %s\n", err)
			os.Exit(1)
		}
		return
	}

	runREPL(in)
}

func bindArgs(in *rholisp.Interpreter, args []string) {
	items := make([]rholisp.Value, len(args))
	for i, a := range args {
		items[i] = rholisp.StringFromGo(a)
	}
	list := rholisp.ListFromSlice(items)
	in.BindGlobal("args", list)
	rholisp.Release(list)
	for _, v := range items {
		rholisp.Release(v)
	}
}

func runFile(in *rholisp.Interpreter, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = in.RunSource(string(src))
	return err
}

func runREPL(in *rholisp.Interpreter) {
	prompt := color.New(color.FgCyan).Sprint("rholisp> ")
	rl, err := readline.New(prompt)
	if err != nil {
		log.Fatalf("rholisp: %s", err)
	}
	defer rl.Close()

	errColor := color.New(color.FgRed)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := in.RunSource(line)
		if err != nil {
			errColor.Fprintf(os.Stderr, "%s\n", err)
			continue
		}
		fmt.Println(rholisp.ReprString(v))
		rholisp.Release(v)
	}
}
