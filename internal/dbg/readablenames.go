package dbg

import (
	"fmt"
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary keys (pointers, triangle indices) into random
// readable names. It flagrantly leaks memory but generates the names lazily,
// so it's not a problem unless you're actually using it. Eleven and twelve
// look alike in a wall of debug output; GentleOtter and BraveFalcon don't.

var memo map[interface{}]string

var title = cases.Title(language.English)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for key, inventing one on first use. Keys
// must be comparable. Nil keys are named "Ø".
func Name(key interface{}) string {
	if isNil(key) {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[key] = r
	return r
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
