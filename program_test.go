package nanolisp

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type programCase struct {
	Name    string `yaml:"name"`
	Program string `yaml:"program"`
	Want    string `yaml:"want"`
	Fail    bool   `yaml:"fail"`
}

type programFile struct {
	Cases []programCase `yaml:"cases"`
}

func loadPrograms(path string) (*programFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var pf programFile
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("programs: parse %s: %w", path, err)
	}
	return &pf, nil
}

func TestPrograms(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no program fixtures in testdata")
	}

	for _, path := range paths {
		pf, err := loadPrograms(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range pf.Cases {
			c := c
			t.Run(filepath.Base(path)+"/"+c.Name, func(t *testing.T) {
				actual, err := Run(c.Program)
				if c.Fail {
					if err == nil {
						t.Errorf("\nExpr: %s\nExpected: Error\nActual: %s\n", c.Program, Print(actual))
					}
					return
				}
				if err != nil {
					t.Fatalf("\nExpr: %s\nExpected: %s\nActual: Error - %s\n", c.Program, c.Want, err)
				}
				if got := Print(actual); got != c.Want {
					t.Errorf("\nExpr: %s\nExpected: %s\nActual: %s\n", c.Program, c.Want, got)
				}
			})
		}
	}
}

func TestRunEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n\t "} {
		actual, err := Run(input)
		if actual != nil || err != nil {
			t.Errorf("\nInput: %q\nExpected: nil, nil\nActual: %v, %v\n", input, actual, err)
		}
	}
}

func TestRunDiscardsIntermediateFailures(t *testing.T) {
	testEval(t, "(car 1) 5", Number(5))
	testEval(t, "nope (add 2 3)", Number(5))
	testEvalError(t, "5 (car 1)")
}

func TestRunParseFailureIsTotal(t *testing.T) {
	in := NewInterpreter()
	_, err := in.RunString("(define a 1) (add a")
	if err == nil {
		t.Fatal("Expected: Error")
	}
	// nothing from the malformed program may have been evaluated
	testInterpError(t, in, "a")
}

func TestInterpreterKeepsDefinitions(t *testing.T) {
	in := NewInterpreter()
	if _, err := in.RunString("(define sq (lambda (x) (add x x)))"); err != nil {
		t.Fatal(err)
	}
	if _, err := in.RunString("(define n (sq 4))"); err != nil {
		t.Fatal(err)
	}
	actual, err := in.RunString("(sq n)")
	if err != nil {
		t.Fatal(err)
	}
	if !Equals(actual, Number(16)) {
		t.Errorf("\nExpected: 16\nActual: %s\n", Print(actual))
	}

	testInterpError(t, NewInterpreter(), "sq")
}

func testInterpError(t *testing.T, in *Interpreter, input string) {
	t.Helper()
	actual, err := in.RunString(input)
	if err == nil {
		t.Errorf("\nExpr: %s\nExpected: Error\nActual: %s\n", input, Print(actual))
	}
}
