// Command tickc drives the tick code emitter from the command line: it
// reads a lowered AST (JSON-encoded by an out-of-process front end),
// emits a C11 header and implementation, and optionally hands both off
// to a C toolchain to compile and link an executable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/tickc/tickc/internal/ast"
	"github.com/tickc/tickc/internal/astjson"
	"github.com/tickc/tickc/internal/diag"
	"github.com/tickc/tickc/internal/emit"
	"github.com/tickc/tickc/internal/runtime"
)

var formatter = diag.NewFormatter()

var (
	flagDebugOpt   = flag.Bool("debug-opt", false, "log the external compiler invocation and its output even on success")
	flagOutput     = flag.String("o", "", "output path override (emit: the implementation file; build: the linked binary)")
	flagHeaderName = flag.String("header-name", "", "override the basename used for the generated header and its #include")
)

func debugLog(format string, a ...interface{}) {
	if os.Getenv("TICKC_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format, a...)
	}
}

func main() {
	debugLog("tickc started (pre-flags)\n")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tickc [flags] <command> [arguments]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  emit <ast.json>     Emit a header and implementation file next to the input\n")
		fmt.Fprintf(os.Stderr, "  build <ast.json>    Emit, then compile and link an executable via cc\n")
		fmt.Fprintf(os.Stderr, "  version             Show version information\n")
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "emit":
		runEmit(args)
	case "build":
		runBuild(args)
	case "version", "-v", "--version":
		runVersion()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// loadModule reads and decodes the JSON AST at path.
func loadModule(path string) (*ast.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	mod, err := astjson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding AST: %w", err)
	}
	return mod, nil
}

// emitToFiles emits headerPath/implPath for the module decoded from
// astPath, deriving both paths from astPath's own basename, and
// returns the paths actually written.
func emitToFiles(astPath string) (headerPath, implPath string, err error) {
	return emitToFilesWithOverrides(astPath, "", "")
}

// emitToFilesWithOverrides is emitToFiles with the `-header-name` and
// `-o` overrides applied: headerNameOverride replaces the derived
// header basename (used both for the written filename and the impl
// file's #include), and implPathOverride replaces the derived
// implementation file path outright. An empty override leaves the
// corresponding default in place.
func emitToFilesWithOverrides(astPath, headerNameOverride, implPathOverride string) (headerPath, implPath string, err error) {
	mod, err := loadModule(astPath)
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(filepath.Base(astPath), filepath.Ext(astPath))
	dir := filepath.Dir(astPath)

	headerBasename := base + ".h"
	if headerNameOverride != "" {
		headerBasename = headerNameOverride
	}
	headerPath = filepath.Join(dir, headerBasename)

	implPath = filepath.Join(dir, base+".c")
	if implPathOverride != "" {
		implPath = implPathOverride
	}

	header, err := os.Create(headerPath)
	if err != nil {
		return "", "", fmt.Errorf("error creating header file: %w", err)
	}
	defer header.Close()

	impl, err := os.Create(implPath)
	if err != nil {
		return "", "", fmt.Errorf("error creating implementation file: %w", err)
	}
	defer impl.Close()

	debugLog("emitting %s and %s\n", headerPath, implPath)
	if err := emit.Emit(mod, astPath, headerBasename, header, impl); err != nil {
		return "", "", err
	}
	return headerPath, implPath, nil
}

func runEmit(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tickc emit <ast.json>\n")
		os.Exit(1)
	}

	headerPath, implPath, err := emitToFilesWithOverrides(args[0], *flagHeaderName, *flagOutput)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
	fmt.Printf("Emitted %s and %s\n", headerPath, implPath)
}

func runBuild(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tickc build <ast.json>\n")
		os.Exit(1)
	}
	astPath := args[0]
	fmt.Printf("Building %s...\n", astPath)

	_, implPath, err := emitToFilesWithOverrides(astPath, *flagHeaderName, "")
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	// runtime.c #includes "runtime.h", so both are written side by side
	// into a scratch directory for the toolchain.
	runtimeDir, err := os.MkdirTemp("", "tickc-runtime-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating runtime directory: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(runtimeDir)
	if err := os.WriteFile(filepath.Join(runtimeDir, "runtime.h"), runtime.Header, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing runtime header: %v\n", err)
		os.Exit(1)
	}
	runtimeC := filepath.Join(runtimeDir, "runtime.c")
	if err := os.WriteFile(runtimeC, runtime.Source, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing runtime source: %v\n", err)
		os.Exit(1)
	}

	base := strings.TrimSuffix(filepath.Base(astPath), filepath.Ext(astPath))
	outName := filepath.Join(filepath.Dir(astPath), base)
	if *flagOutput != "" {
		outName = *flagOutput
	}

	cc := findCC()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	args2 := []string{"-std=c11", "-o", outName, implPath, runtimeC}
	debugLog("linking binary: %s %v\n", cc, args2)
	cmd := exec.CommandContext(ctx, cc, args2...)
	cmd.Stdout = os.Stdout
	var stderrBuf strings.Builder
	cmd.Stderr = &stderrBuf
	runErr := cmd.Run()
	if *flagDebugOpt {
		fmt.Fprintf(os.Stderr, "[debug-opt] %s %v\n", cc, args2)
		if stderrBuf.Len() > 0 {
			fmt.Fprintf(os.Stderr, "[debug-opt] %s output:\n%s\n", cc, stderrBuf.String())
		}
	}
	if err := runErr; err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			fmt.Fprintf(os.Stderr, "compilation timed out after 60s\n")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "compilation failed: %v\n", err)
		if stderrBuf.Len() > 0 {
			fmt.Fprintf(os.Stderr, "\n%s error output:\n%s\n", cc, stderrBuf.String())
		}
		os.Exit(1)
	}
	fmt.Printf("Build successful: %s\n", outName)
}

// findCC locates the C compiler to invoke, preferring an explicit
// override so CI and cross builds can pin a specific toolchain.
func findCC() string {
	if cc := os.Getenv("TICKC_CC"); cc != "" {
		return cc
	}
	if path, err := exec.LookPath("cc"); err == nil {
		return path
	}
	return "clang"
}

func reportError(err error) {
	if violation, ok := err.(*emit.InvariantViolation); ok {
		formatter.Format(violation.Diagnostic)
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
}

func runVersion() {
	version := "dev"
	if v := os.Getenv("TICKC_VERSION"); v != "" {
		version = v
	}
	fmt.Printf("tickc version %s\n", version)
}
