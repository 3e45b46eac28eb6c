package nanolisp

// Sexp is an un-evaluated syntax tree: a NumberAtom, a SymbolAtom or a SexpList.
type Sexp interface {
	sexp()
}

type NumberAtom int64

type SymbolAtom struct {
	Name string
	Form Form
}

type SexpList []Sexp

func (NumberAtom) sexp() {}
func (SymbolAtom) sexp() {}
func (SexpList) sexp()   {}

// Form identifies a special form. Symbols are tagged when they are read so
// the evaluator never compares names.
type Form int

const (
	FormNone Form = iota
	FormAdd
	FormList
	FormCar
	FormCdr
	FormEmpty
	FormCond
	FormEqual
	FormLambda
	FormQuote
	FormDefine
	FormIsList
	FormIsNumber
	FormIsSymbol
	numForms
)

var formNames = [numForms]string{
	FormAdd:      "add",
	FormList:     "list",
	FormCar:      "car",
	FormCdr:      "cdr",
	FormEmpty:    "empty",
	FormCond:     "cond",
	FormEqual:    "equal",
	FormLambda:   "lambda",
	FormQuote:    "quote",
	FormDefine:   "define",
	FormIsList:   "islist",
	FormIsNumber: "isnumber",
	FormIsSymbol: "issymbol",
}

var formsByName map[string]Form

func init() {
	formsByName = make(map[string]Form, numForms)
	for f := FormAdd; f < numForms; f++ {
		formsByName[formNames[f]] = f
	}
}

// LookupForm returns the special form named s, or FormNone.
func LookupForm(s string) Form {
	return formsByName[s]
}

func (f Form) String() string {
	if f <= FormNone || f >= numForms {
		return "none"
	}
	return formNames[f]
}

// Sym builds a symbol atom, resolving its special form.
func Sym(name string) SymbolAtom {
	return SymbolAtom{Name: name, Form: LookupForm(name)}
}
