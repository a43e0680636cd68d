package discover

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"goa.design/autoreg/codegen/model"
	"goa.design/autoreg/codegen/naming"
	"goa.design/goa/v3/codegen"
)

// declaration implements model.Declaration on top of the type checker. It
// only reads the marked field, its enclosing type and the methods declared on
// that type.
type declaration struct {
	pkg        *packages.Package
	pos        token.Position
	named      *types.Named
	field      *types.Var
	constraint string
}

func (d *declaration) Pos() token.Position { return d.pos }

func (d *declaration) Namespace() string { return d.pkg.Types.Name() }

func (d *declaration) PkgPath() string { return d.pkg.PkgPath }

func (d *declaration) Dir() string { return filepath.Dir(d.pos.Filename) }

func (d *declaration) TypeName() string { return d.named.Obj().Name() }

func (d *declaration) FieldName() string { return d.field.Name() }

func (d *declaration) BuildConstraint() string { return d.constraint }

func (d *declaration) TypeParams() []string {
	tps := d.named.TypeParams()
	if tps.Len() == 0 {
		return nil
	}
	names := make([]string, tps.Len())
	for i := range tps.Len() {
		names[i] = tps.At(i).Obj().Name()
	}
	return names
}

// FieldType renders the field type qualifying every package other than the
// declaring one with its name. Two distinct packages sharing a name get
// distinct aliases so the generated file does not depend on the imports of
// the file declaring the field.
func (d *declaration) FieldType() (string, []model.Import) {
	var (
		scope   = codegen.NewNameScope()
		byPath  = make(map[string]string)
		imports []model.Import
	)
	qualifier := func(p *types.Package) string {
		if p == nil || p.Path() == d.pkg.PkgPath {
			return ""
		}
		if name, ok := byPath[p.Path()]; ok {
			return name
		}
		name := scope.Unique(p.Name())
		byPath[p.Path()] = name
		imports = append(imports, model.Import{Name: name, Path: p.Path()})
		return name
	}
	return types.TypeString(d.field.Type(), qualifier), imports
}

// Receiver returns the receiver name of the first method declared on the
// enclosing type outside of generated files.
func (d *declaration) Receiver() string {
	typeName := d.TypeName()
	for _, file := range d.pkg.Syntax {
		if naming.IsGenerated(d.pkg.Fset.Position(file.Package).Filename) {
			continue
		}
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 {
				continue
			}
			recv := fd.Recv.List[0]
			if len(recv.Names) != 1 || recv.Names[0].Name == "_" {
				continue
			}
			if receiverTypeName(recv.Type) == typeName {
				return recv.Names[0].Name
			}
		}
	}
	return ""
}

// Declares reports whether the enclosing type, or a type it embeds, has a
// field or method named name declared outside of generated files.
func (d *declaration) Declares(name string) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(d.named), true, d.pkg.Types, name)
	if obj == nil {
		return false
	}
	return !naming.IsGenerated(d.pkg.Fset.Position(obj.Pos()).Filename)
}

func (d *declaration) Registry(c model.Contract) (model.Registry, error) {
	return resolveRegistry(d.pkg.Types, d.named, c)
}

// receiverTypeName returns the name of the base type of a receiver type
// expression, e.g. "Box" for "*Box[T]".
func receiverTypeName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}
