package nanolisp

// Equals compares values structurally. Lambdas are never equal, not even to
// themselves.
func Equals(v1, v2 Value) bool {
	switch t1 := v1.(type) {
	case Number:
		t2, ok := v2.(Number)
		return ok && t1 == t2
	case Symbol:
		t2, ok := v2.(Symbol)
		return ok && t1 == t2
	case List:
		t2, ok := v2.(List)
		return ok && sliceEquals(t1, t2)
	default:
		return false
	}
}

func sliceEquals(slice1, slice2 []Value) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := 0; i < len(slice1); i++ {
		if !Equals(slice1[i], slice2[i]) {
			return false
		}
	}
	return true
}

// allEqual reports whether every value equals the first. Zero or one value is
// trivially equal.
func allEqual(vals []Value) bool {
	for i := 1; i < len(vals); i++ {
		if !Equals(vals[0], vals[i]) {
			return false
		}
	}
	return true
}
