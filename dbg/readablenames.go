package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts geometry values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem
// unless you're actually using it. Hull vertices all look alike in a
// debug trace; "CuddlyMarmot" does not.

// Entity is the slice of the geometry API the debug helpers need: every
// point, segment, rect and polygon satisfies it.
type Entity interface {
	fmt.Stringer
	IsNull() bool
}

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same value between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for the value within this run.
// Values that render identically share a name, which is exactly what you
// want when tracing the same vertex through sort and scan.
func Name(e Entity) string {
	key := e.String()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// ColorName colors the name by validity: red for null entities, green for
// live ones.
func ColorName(e Entity) string {
	name := Name(e)
	if e.IsNull() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
