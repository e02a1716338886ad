package tree

import "fmt"

// Value is the set of Go types a field value can be coerced to. The
// type argument selects the coercion; there is no reflection involved.
type Value interface {
	bool | int64 | float64 | string | []int64 | []float64 | []string
}

// Param resolves path relative to n (or uses n itself if path is empty)
// and coerces the value stored there to T. It fails if no node exists
// at path or if the value cannot be represented as T.
func Param[T Value](n *Node, path string) (T, error) {
	var zero T
	target := n
	if path != "" {
		target = n.Find(path)
		if target == nil {
			return zero, fmt.Errorf("%w named %q", ErrNoParam, path)
		}
	}
	var (
		res any
		err error
	)
	switch any(zero).(type) {
	case bool:
		res, err = target.BoolVal()
	case int64:
		res, err = target.IntVal()
	case float64:
		res, err = target.FloatVal()
	case string:
		res, err = target.StrVal()
	case []int64:
		res, err = target.VecIntVal()
	case []float64:
		res, err = target.VecFloatVal()
	case []string:
		res, err = target.VecStrVal()
	}
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// ParamOptional is Param except that defaultVal is returned when no
// node exists at path. A node that exists but cannot be coerced still
// fails.
func ParamOptional[T Value](n *Node, path string, defaultVal T) (T, error) {
	if n.Find(path) == nil {
		return defaultVal, nil
	}
	return Param[T](n, path)
}
