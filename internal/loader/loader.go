// Package loader resolves manifest descriptors to documentation providers.
//
// Descriptors naming a source file are resolved by parsing the Go file and
// collecting the named type's exported methods with their doc comments, in
// declaration order. Descriptors from the simple command list (and named
// types the file does not declare) resolve through the static registry.
package loader

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"

	"github.com/dkarlsen/wpdocgen/internal/manifest"
	"github.com/dkarlsen/wpdocgen/internal/registry"
)

// NotFoundError reports an unresolvable command provider. Callers treat it
// as a per-command warning, not a fatal failure.
type NotFoundError struct {
	Command string
	Name    string // type or command name that failed to resolve
	Cause   error
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("command %q: provider %q not found: %v", e.Command, e.Name, e.Cause)
	}
	return fmt.Sprintf("command %q: provider %q not found", e.Command, e.Name)
}

// Unwrap returns the underlying cause, if any.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Loader resolves descriptors for the duration of one run. Parsed files are
// cached, so descriptors sharing a source file parse it once.
type Loader struct {
	fset  *token.FileSet
	files map[string]*ast.File
}

// New creates a Loader with an empty parse cache.
func New() *Loader {
	return &Loader{
		fset:  token.NewFileSet(),
		files: make(map[string]*ast.File),
	}
}

// Resolve returns the documentation provider for one descriptor.
func (l *Loader) Resolve(desc manifest.Descriptor) (registry.Provider, error) {
	// Simple-list entries resolve by command name.
	if desc.SourceFile == "" {
		if p, ok := registry.Lookup(desc.Command); ok {
			return p, nil
		}
		return nil, &NotFoundError{Command: desc.Command, Name: desc.Command}
	}

	path := filepath.Join(desc.BaseDir, desc.SourceFile)
	file, err := l.parse(path)
	if err != nil {
		// Fall back to the registry before giving up on the command.
		if p, ok := registry.Lookup(desc.TypeName); ok {
			return p, nil
		}
		return nil, &NotFoundError{Command: desc.Command, Name: desc.TypeName, Cause: err}
	}

	if !declaresType(file, desc.TypeName) {
		if p, ok := registry.Lookup(desc.TypeName); ok {
			return p, nil
		}
		return nil, &NotFoundError{
			Command: desc.Command,
			Name:    desc.TypeName,
			Cause:   fmt.Errorf("type not declared in %s", desc.SourceFile),
		}
	}

	return registry.MethodSet(methodsOf(file, desc.TypeName)), nil
}

// parse loads a source file through the cache. Parsing the same file twice
// returns the cached AST.
func (l *Loader) parse(path string) (*ast.File, error) {
	if file, ok := l.files[path]; ok {
		return file, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	file, err := parser.ParseFile(l.fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	l.files[path] = file
	return file, nil
}

// declaresType reports whether the file declares a type with the given name.
func declaresType(file *ast.File, name string) bool {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == name {
				return true
			}
		}
	}
	return false
}

// methodsOf collects the exported methods declared on typeName, in
// declaration order, each paired with its doc comment text (empty when the
// method has none).
func methodsOf(file *ast.File, typeName string) []registry.Method {
	var methods []registry.Method
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || !fd.Name.IsExported() {
			continue
		}
		if receiverTypeName(fd.Recv) != typeName {
			continue
		}
		methods = append(methods, registry.Method{
			Name: fd.Name.Name,
			Doc:  fd.Doc.Text(),
		})
	}
	return methods
}

// receiverTypeName unwraps a method receiver to its type identifier.
func receiverTypeName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}
