package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// A Namer converts arbitrary comparable keys (arena slots, pointers) into
// readable names like "BraveOtter". This is helpful when reading traces where
// many vertices share coordinates, or where bare slot numbers blur together.
//
// Names are generated lazily in order of demand, so the same name does not
// refer to the same thing between runs. A Namer is not safe for concurrent use;
// create one per trace.
type Namer struct {
	memo map[interface{}]string
	used map[string]int
}

func NewNamer() *Namer {
	return &Namer{
		memo: make(map[interface{}]string),
		used: make(map[string]int),
	}
}

func (n *Namer) Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if name, ok := n.memo[key]; ok {
		return name
	}

	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	// The word lists are finite, so disambiguate repeats
	if count := n.used[name]; count > 0 {
		n.used[name] = count + 1
		name = fmt.Sprintf("%s%d", name, count+1)
	} else {
		n.used[name] = 1
	}
	n.memo[key] = name
	return name
}
