package nanolisp

import (
	"fmt"
	"strings"
)

func Print(val Value) string {
	switch t := val.(type) {
	case nil:
		return "nil"
	case Number:
		return fmt.Sprintf("%d", int64(t))
	case Symbol:
		return string(t)
	case List:
		arr := make([]string, len(t))
		for i, v := range t {
			arr[i] = Print(v)
		}
		return fmt.Sprintf("(%s)", strings.Join(arr, " "))
	case *Lambda:
		return fmt.Sprintf("#<lambda (%s)>", strings.Join(t.Params, " "))
	default:
		return fmt.Sprintf("%v", val)
	}
}

func PrintSexp(s Sexp) string {
	switch t := s.(type) {
	case nil:
		return "nil"
	case NumberAtom:
		return fmt.Sprintf("%d", int64(t))
	case SymbolAtom:
		return t.Name
	case SexpList:
		arr := make([]string, len(t))
		for i, v := range t {
			arr[i] = PrintSexp(v)
		}
		return fmt.Sprintf("(%s)", strings.Join(arr, " "))
	default:
		return fmt.Sprintf("%v", s)
	}
}
