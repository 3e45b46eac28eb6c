package nanolisp

// Value is the result of evaluation: a Number, a quoted Symbol, a List or a
// *Lambda.
type Value interface {
	value()
}

type Number int64

// Symbol is a symbol produced by quote. It is data, never looked up.
type Symbol string

type List []Value

// Lambda is a closure. Env is the snapshot taken when the lambda form was
// evaluated; frames never change so holding the pointer is a by-value capture.
type Lambda struct {
	Params []string
	Env    *Env
	Body   Sexp
}

func (Number) value()  {}
func (Symbol) value()  {}
func (List) value()    {}
func (*Lambda) value() {}

// truth converts a predicate result to the language's 1/0 encoding.
func truth(b bool) Number {
	if b {
		return 1
	}
	return 0
}

// quoteSexp converts syntax to data without evaluating it.
func quoteSexp(s Sexp) Value {
	switch t := s.(type) {
	case NumberAtom:
		return Number(t)
	case SymbolAtom:
		return Symbol(t.Name)
	case SexpList:
		out := make(List, len(t))
		for i, item := range t {
			out[i] = quoteSexp(item)
		}
		return out
	}
	return nil
}
