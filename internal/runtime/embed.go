// Package runtime bundles the tick runtime's C sources directly into
// the compiler binary, so a generated program never depends on an
// out-of-tree copy of runtime.h/runtime.c being available at build
// time: the emitter inlines Header into every header it writes
// (spec.md §6.2), and the build driver writes Source, together with the
// Header it #includes, to a scratch directory for the C toolchain to
// compile and link with the generated translation unit.
package runtime

import _ "embed"

//go:embed runtime.h
var Header []byte

//go:embed runtime.c
var Source []byte
