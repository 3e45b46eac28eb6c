package nanolisp

import "fmt"

// DefaultMaxDepth bounds nested evaluations for a new Interpreter.
const DefaultMaxDepth = 10000

// Interpreter evaluates forms against an ambient top-level environment that
// only define may change. An Interpreter is not safe for concurrent use.
type Interpreter struct {
	// MaxDepth limits how many evaluations may be nested; 0 means no limit,
	// in which case runaway recursion overflows the Go stack.
	MaxDepth int

	global *Env
	depth  int
}

func NewInterpreter() *Interpreter {
	return &Interpreter{MaxDepth: DefaultMaxDepth}
}

// special forms take unevaluated arguments and the env
type specialform func(in *Interpreter, args []Sexp, env *Env) (Value, error)

var specialForms [numForms]specialform

func init() {
	specialForms = [numForms]specialform{
		FormAdd:      add,
		FormList:     list,
		FormCar:      car,
		FormCdr:      cdr,
		FormEmpty:    empty,
		FormCond:     cond,
		FormEqual:    equal,
		FormLambda:   lambda,
		FormQuote:    quote,
		FormDefine:   define,
		FormIsList:   isList,
		FormIsNumber: isNumber,
		FormIsSymbol: isSymbol,
	}
}

// Eval reduces s in env. Names missing from env resolve against the ambient
// environment, which is how a defined lambda reaches its own name.
func (in *Interpreter) Eval(s Sexp, env *Env) (Value, error) {
	in.depth++
	defer func() { in.depth-- }()
	if in.MaxDepth > 0 && in.depth > in.MaxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepth, in.MaxDepth)
	}

	switch t := s.(type) {
	case NumberAtom:
		return Number(t), nil
	case SymbolAtom:
		return in.lookup(t.Name, env)
	case SexpList:
		if len(t) == 0 {
			return nil, ErrEmptyApplication
		}
		if head, isSym := t[0].(SymbolAtom); isSym && head.Form != FormNone {
			return specialForms[head.Form](in, t[1:], env)
		}
		return in.apply(t, env)
	default:
		return nil, fmt.Errorf("%w: cannot evaluate %T", ErrType, s)
	}
}

func (in *Interpreter) lookup(name string, env *Env) (Value, error) {
	if val, ok := env.Find(name); ok {
		return val, nil
	}
	if val, ok := in.global.Find(name); ok {
		return val, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnbound, name)
}

// apply performs call-by-value application of an ordinary list form.
func (in *Interpreter) apply(form SexpList, env *Env) (Value, error) {
	front, err := in.Eval(form[0], env)
	if err != nil {
		return nil, err
	}

	proc, isProc := front.(*Lambda)
	if !isProc {
		return nil, fmt.Errorf("%w: invalid proc: %s", ErrType, Print(front))
	}

	args, err := in.evalSlice(form[1:], env)
	if err != nil {
		return nil, err
	}

	if len(args) != len(proc.Params) {
		return nil, fmt.Errorf("%w (%d) passed to procedure", ErrArity, len(args))
	}

	return in.Eval(proc.Body, proc.Env.Extend(proc.Params, args))
}

// eval all elements in a slice, left to right
func (in *Interpreter) evalSlice(val []Sexp, env *Env) ([]Value, error) {
	arr := make([]Value, len(val))
	for i, v := range val {
		res, err := in.Eval(v, env)
		if err != nil {
			return nil, err
		}
		arr[i] = res
	}
	return arr, nil
}

// evalOne checks that form received exactly one argument and evaluates it.
func (in *Interpreter) evalOne(form Form, args []Sexp, env *Env) (Value, error) {
	if err := checkArity(form, args, 1); err != nil {
		return nil, err
	}
	return in.Eval(args[0], env)
}

func checkArity(form Form, args []Sexp, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w (%d) passed to %s", ErrArity, len(args), form)
	}
	return nil
}

// Special Forms

// add is strict: an operand that fails or is not a number fails the form,
// the same all-or-nothing policy as list and equal.
func add(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	vals, err := in.evalSlice(args, env)
	if err != nil {
		return nil, err
	}
	var sum Number
	for _, v := range vals {
		n, isNum := v.(Number)
		if !isNum {
			return nil, fmt.Errorf("%w: invalid operand to add: %s", ErrType, Print(v))
		}
		sum += n
	}
	return sum, nil
}

func list(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	vals, err := in.evalSlice(args, env)
	if err != nil {
		return nil, err
	}
	return List(vals), nil
}

func car(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	v, err := in.evalOne(FormCar, args, env)
	if err != nil {
		return nil, err
	}
	l, isList := v.(List)
	if !isList || len(l) == 0 {
		return nil, fmt.Errorf("%w: car of %s", ErrType, Print(v))
	}
	return l[0], nil
}

func cdr(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	v, err := in.evalOne(FormCdr, args, env)
	if err != nil {
		return nil, err
	}
	l, isList := v.(List)
	if !isList || len(l) == 0 {
		return nil, fmt.Errorf("%w: cdr of %s", ErrType, Print(v))
	}
	return l[1:], nil
}

func empty(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	v, err := in.evalOne(FormEmpty, args, env)
	if err != nil {
		return nil, err
	}
	l, isList := v.(List)
	return truth(isList && len(l) == 0), nil
}

// cond returns the result of the first clause whose test is not 0, or 0.
// Clauses after the chosen one are neither checked nor evaluated.
func cond(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	for _, arg := range args {
		clause, isList := arg.(SexpList)
		if !isList || len(clause) != 2 {
			return nil, fmt.Errorf("%w: cond clause must be a (test result) pair: %s", ErrSyntax, PrintSexp(arg))
		}
		test, err := in.Eval(clause[0], env)
		if err != nil {
			return nil, err
		}
		if !Equals(test, Number(0)) {
			return in.Eval(clause[1], env)
		}
	}
	return Number(0), nil
}

func equal(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	vals, err := in.evalSlice(args, env)
	if err != nil {
		return nil, err
	}
	return truth(allEqual(vals)), nil
}

func lambda(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	if err := checkArity(FormLambda, args, 2); err != nil {
		return nil, err
	}

	params, isList := args[0].(SexpList)
	if !isList {
		return nil, fmt.Errorf("%w: first argument to lambda must be a list", ErrSyntax)
	}

	names := make([]string, len(params))
	for i, p := range params {
		sym, isSym := p.(SymbolAtom)
		if !isSym {
			return nil, fmt.Errorf("%w: first argument to lambda must be a list of symbols", ErrSyntax)
		}
		names[i] = sym.Name
	}

	return &Lambda{
		Params: names,
		Env:    env,
		Body:   args[1],
	}, nil
}

func quote(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	if err := checkArity(FormQuote, args, 1); err != nil {
		return nil, err
	}
	return quoteSexp(args[0]), nil
}

// define binds in the ambient environment, so the binding outlives the
// form even when define appears inside a lambda body.
func define(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	if err := checkArity(FormDefine, args, 2); err != nil {
		return nil, err
	}

	sym, isSym := args[0].(SymbolAtom)
	if !isSym {
		return nil, fmt.Errorf("%w: first argument to define must be a symbol", ErrSyntax)
	}

	evaled, err := in.Eval(args[1], env)
	if err != nil {
		return nil, err
	}

	in.global = in.global.Define(sym.Name, evaled)
	return evaled, nil
}

func isList(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	v, err := in.evalOne(FormIsList, args, env)
	if err != nil {
		return nil, err
	}
	_, ok := v.(List)
	return truth(ok), nil
}

func isNumber(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	v, err := in.evalOne(FormIsNumber, args, env)
	if err != nil {
		return nil, err
	}
	_, ok := v.(Number)
	return truth(ok), nil
}

func isSymbol(in *Interpreter, args []Sexp, env *Env) (Value, error) {
	v, err := in.evalOne(FormIsSymbol, args, env)
	if err != nil {
		return nil, err
	}
	_, ok := v.(Symbol)
	return truth(ok), nil
}
