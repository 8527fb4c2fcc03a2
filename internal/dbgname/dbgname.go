// Package dbgname converts arbitrary debug keys (vertex indices, ring
// pointers) into random readable names, so debug dumps of the ring state
// are easier to eyeball than raw indices. Names are memoized but
// intentionally nondeterministic across runs, as a reminder that the
// same name doesn't refer to the same vertex between invocations.
package dbgname

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo = make(map[interface{}]string)

func init() {
	petname.NonDeterministicMode()
}

// Name returns a memoized readable name for key, generating one lazily
// on first use.
func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
