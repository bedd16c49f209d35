package subprocess

import "fmt"

// PathLike is implemented by values that have a filesystem path
// representation. Arguments, prefix elements, working directories and
// environment values accept either a string or a PathLike.
type PathLike interface {
	FSPath() string
}

// Path is a filesystem path usable wherever a string argument is accepted.
type Path string

// FSPath implements PathLike.
func (p Path) FSPath() string {
	return string(p)
}

// AsString converts a string or PathLike value to a string.
// Any other type, nil included, yields a *TypeError.
func AsString(v any) (string, error) {
	return asString(v, "value")
}

func asString(v any, field string) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case PathLike:
		return s.FSPath(), nil
	default:
		return "", &TypeError{Field: field, Value: v}
	}
}

// asStrings converts every element, naming the first offending one by index.
func asStrings(values []any, field string) ([]string, error) {
	strs := make([]string, 0, len(values))
	for i, v := range values {
		s, err := asString(v, fmt.Sprintf("%s %d", field, i))
		if err != nil {
			return nil, err
		}
		strs = append(strs, s)
	}
	return strs, nil
}
