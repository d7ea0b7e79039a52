package colour

import (
	"fmt"
	"sort"
	"strings"
)

// ContrastFunc scores the perceptual contrast between a foreground and a
// background colour. Sign convention and value range are method-specific.
type ContrastFunc func(fg, bg Color) float64

var contrastMethods = map[string]ContrastFunc{}

// RegisterContrast adds a contrast method to the registry under the given
// name, replacing any previous registration. Like RegisterSpace, this is
// meant to be called from init functions.
func RegisterContrast(name string, fn ContrastFunc) {
	contrastMethods[strings.ToLower(name)] = fn
}

// ContrastRegistered reports whether a contrast method is registered under
// the given name.
func ContrastRegistered(name string) bool {
	_, ok := contrastMethods[strings.ToLower(name)]
	return ok
}

// ContrastMethods returns the registered contrast method names, sorted.
func ContrastMethods() []string {
	out := make([]string, 0, len(contrastMethods))
	for name := range contrastMethods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func lookupContrast(name string) (ContrastFunc, error) {
	fn, ok := contrastMethods[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("colour: unknown contrast method %q", name)
	}
	return fn, nil
}
