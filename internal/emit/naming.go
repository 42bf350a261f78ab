package emit

import (
	"fmt"

	"github.com/tickc/tickc/internal/ast"
)

// userPrefix is the private-symbol prefix of spec.md §4.1/§6.4.
const userPrefix = "__u_"

// symbolName computes the C symbol for a user-named declaration: a
// private prefix unless the declaration is pub or extern (spec.md
// §4.1). Compiler temporaries never reach this function — callers emit
// those via tempName instead.
func symbolName(name string, vis ast.Visibility) string {
	if vis.Pub || vis.Extern {
		return name
	}
	return userPrefix + name
}

// tempName renders a compiler-generated temporary (tmpid != 0), which
// never carries the user prefix (spec.md §4.1, §6.4).
func tempName(tmpID int) string {
	return fmt.Sprintf("__tmp%d", tmpID)
}

// identName renders an identifier *reference*, trusting the
// precomputed NeedsUserPrefix flag from analysis rather than
// re-deriving scope (invariant 4; §4.1 "the emitter does not
// re-derive scope").
func identName(id *ast.Ident) string {
	if id.IsTemp() {
		return tempName(id.TmpID)
	}
	if id.NeedsUserPrefix {
		return userPrefix + id.Name
	}
	return id.Name
}

// enumValueName renders `<Enum>_<Value>`, with the prefix rule applied
// only to the enum-name portion (spec.md §4.1, §6.4).
func enumValueName(enum *ast.EnumDecl, valueName string) string {
	return symbolName(enum.Name, enum.Vis) + "_" + valueName
}

// userTypeName renders a reference to a user-defined (struct/enum/
// union) type name, applying the private-prefix rule of the type's own
// declaration — not of whatever is referencing it — looked up from the
// registry the top-level driver built on its first pass over the
// module (spec.md §4.2 "Named user-defined types use the `__u_`-prefix
// rule of §4.1").
func (ctx *Context) userTypeName(name string) string {
	vis := ctx.declVis[name]
	return symbolName(name, vis)
}
