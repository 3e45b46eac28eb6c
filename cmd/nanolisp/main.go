package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jpschroeder/nanolisp"
)

const (
	historyFile = ".nanolisp_history"
	promptMain  = "user=> "
	promptCont  = "  ... "
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nanolisp: ")

	expr := flag.String("e", "", "evaluate `program` and print the last value")
	flag.Parse()

	switch {
	case *expr != "":
		os.Exit(runAndPrint(*expr))
	case isInputRedirected():
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("reading stdin: %v", err)
		}
		os.Exit(runAndPrint(string(src)))
	default:
		ReadEvalPrintLoop()
	}
}

func runAndPrint(src string) int {
	val, err := nanolisp.Run(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if val != nil {
		fmt.Println(nanolisp.Print(val))
	}
	return 0
}

func ReadEvalPrintLoop() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		f, err := os.Create(histPath)
		if err != nil {
			log.Printf("saving history: %v", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	in := nanolisp.NewInterpreter()
	for {
		code, ok := readForms(ln)
		if !ok {
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		val, err := in.RunString(code)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(nanolisp.Print(val))
	}
}

// readForms reads lines until they hold complete forms. It reports false at
// end of input.
func readForms(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := nanolisp.ReadProgram(src); errors.Is(err, nanolisp.ErrUnterminated) {
			continue
		}
		return src, true
	}
}

func isInputRedirected() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}
