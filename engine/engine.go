package engine

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Builtin is a Go function exposed to scripts as a zero-argument callable returning a float.
type Builtin func() float64

// ExecuteStarlark executes a script with provided inputs and returns a map of global names to native Go values.
// Builtins are predeclared alongside the inputs.
func ExecuteStarlark(threadName string, script string, inputs map[string]interface{}, builtins map[string]Builtin) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: threadName, Print: func(_ *starlark.Thread, _ string) {}}

	globals := starlark.StringDict{}
	for k, v := range inputs {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", k, err)
		}
		globals[k] = val
	}
	for name, fn := range builtins {
		fn := fn
		globals[name] = starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(args) > 0 || len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: takes no arguments", b.Name())
			}
			return starlark.Float(fn()), nil
		})
	}

	resultGlobals, err := starlark.ExecFile(thread, threadName, script, globals)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range resultGlobals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

// Compile parses a script once so syntax errors surface at load time.
func Compile(name, script string) error {
	_, _, err := starlark.SourceProgram(name, script, func(string) bool { return true })
	return err
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	}
	return nil
}

// Number converts a script output to float64, accepting ints and floats.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
