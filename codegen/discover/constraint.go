package discover

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"path/filepath"
	"strings"
)

var (
	// knownOS and knownArch list the GOOS and GOARCH values the go command
	// recognizes in file name suffixes.
	knownOS = map[string]bool{
		"aix": true, "android": true, "darwin": true, "dragonfly": true,
		"freebsd": true, "hurd": true, "illumos": true, "ios": true,
		"js": true, "linux": true, "nacl": true, "netbsd": true,
		"openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
		"windows": true, "zos": true,
	}
	knownArch = map[string]bool{
		"386": true, "amd64": true, "amd64p32": true, "arm": true,
		"armbe": true, "arm64": true, "arm64be": true, "loong64": true,
		"mips": true, "mipsle": true, "mips64": true, "mips64le": true,
		"mips64p32": true, "mips64p32le": true, "ppc": true, "ppc64": true,
		"ppc64le": true, "riscv": true, "riscv64": true, "s390": true,
		"s390x": true, "sparc": true, "sparc64": true, "wasm": true,
	}
)

// buildConstraint returns the build constraint of file as a //go:build
// expression, "" when the file is always built. The constraint combines the
// //go:build line (or the legacy // +build lines) with the GOOS and GOARCH
// implied by the file name, since generated files do not share that name.
func buildConstraint(file *ast.File, filename string) (string, error) {
	var (
		goBuild constraint.Expr
		plus    []constraint.Expr
	)
	for _, cg := range file.Comments {
		if cg.Pos() >= file.Package {
			break
		}
		for _, c := range cg.List {
			if !constraint.IsGoBuild(c.Text) && !constraint.IsPlusBuild(c.Text) {
				continue
			}
			x, err := constraint.Parse(c.Text)
			if err != nil {
				return "", fmt.Errorf("%s: invalid build constraint %q: %w", filepath.Base(filename), c.Text, err)
			}
			if constraint.IsGoBuild(c.Text) {
				goBuild = x
			} else {
				plus = append(plus, x)
			}
		}
	}
	expr := goBuild
	if expr == nil {
		for _, x := range plus {
			expr = and(expr, x)
		}
	}
	for _, tag := range fileNameTags(filename) {
		expr = and(expr, &constraint.TagExpr{Tag: tag})
	}
	if expr == nil {
		return "", nil
	}
	return expr.String(), nil
}

// fileNameTags returns the GOOS and GOARCH tags implied by the name of a Go
// source file, e.g. "linux" and "amd64" for "poll_linux_amd64.go".
func fileNameTags(filename string) []string {
	name := strings.TrimSuffix(filepath.Base(filename), ".go")
	i := strings.Index(name, "_")
	if i < 0 {
		return nil
	}
	parts := strings.Split(name[i:], "_")
	if n := len(parts); n > 0 && parts[n-1] == "test" {
		parts = parts[:n-1]
	}
	n := len(parts)
	if n >= 2 && knownOS[parts[n-2]] && knownArch[parts[n-1]] {
		return []string{parts[n-2], parts[n-1]}
	}
	if n >= 1 && (knownOS[parts[n-1]] || knownArch[parts[n-1]]) {
		return []string{parts[n-1]}
	}
	return nil
}

func and(x, y constraint.Expr) constraint.Expr {
	if x == nil {
		return y
	}
	return &constraint.AndExpr{X: x, Y: y}
}
