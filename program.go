package nanolisp

// Run reads and evaluates a whole program with a fresh interpreter and
// returns the value of its last form. An empty program yields (nil, nil).
func Run(text string) (Value, error) {
	return NewInterpreter().RunString(text)
}

// RunString reads text and evaluates its forms against the interpreter's
// ambient environment, keeping any definitions for later calls.
func (in *Interpreter) RunString(text string) (Value, error) {
	forms, err := ReadProgram(text)
	if err != nil {
		return nil, err
	}
	return in.RunProgram(forms)
}

// RunProgram evaluates forms left to right. Results and failures of all but
// the last form are discarded.
func (in *Interpreter) RunProgram(forms []Sexp) (Value, error) {
	var val Value
	var err error
	for _, form := range forms {
		val, err = in.Eval(form, in.global)
	}
	return val, err
}
