package discover

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strconv"

	"golang.org/x/tools/go/packages"

	"goa.design/autoreg/annotation"
	"goa.design/autoreg/codegen/model"
	"goa.design/autoreg/codegen/naming"
)

// Fields returns the marked struct fields of pkgs in package, file and
// source order. Each marked field yields either a declaration or a
// *model.Diagnostic explaining why the field cannot host an accessor. The
// sequence is computed lazily.
func Fields(pkgs []*packages.Package) iter.Seq2[model.Declaration, error] {
	return func(yield func(model.Declaration, error) bool) {
		for _, pkg := range pkgs {
			for _, file := range pkg.Syntax {
				if naming.IsGenerated(pkg.Fset.Position(file.Package).Filename) {
					continue
				}
				if !fileFields(pkg, file, yield) {
					return
				}
			}
		}
	}
}

// fileFields yields the marked fields of file. It returns false when yield
// asked to stop.
func fileFields(pkg *packages.Package, file *ast.File, yield func(model.Declaration, error) bool) bool {
	top := make(map[*ast.StructType]*ast.TypeSpec)
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if st, ok := ts.Type.(*ast.StructType); ok {
				top[st] = ts
			}
		}
	}

	filename := pkg.Fset.Position(file.Package).Filename
	constraint, constraintErr := buildConstraint(file, filename)

	cont := true
	ast.Inspect(file, func(n ast.Node) bool {
		if !cont {
			return false
		}
		st, ok := n.(*ast.StructType)
		if !ok || st.Fields == nil {
			return true
		}
		spec := top[st]
		for _, field := range st.Fields.List {
			if !marked(field) {
				continue
			}
			for _, name := range fieldNames(field) {
				pos := pkg.Fset.Position(name.Pos())
				var (
					decl model.Declaration
					err  error
				)
				switch {
				case spec == nil:
					err = &model.Diagnostic{
						Pos:     pos,
						Kind:    model.Unsupported,
						Message: "field " + name.Name + " belongs to an anonymous or function-local struct type",
					}
				case constraintErr != nil:
					err = &model.Diagnostic{
						Pos:     pos,
						Key:     naming.Key(spec.Name.Name, name.Name),
						Kind:    model.Unsupported,
						Message: constraintErr.Error(),
						Err:     constraintErr,
					}
				default:
					decl, err = newDeclaration(pkg, spec, name.Name, pos, constraint)
				}
				if !yield(decl, err) {
					cont = false
					return false
				}
			}
		}
		return true
	})
	return cont
}

func marked(field *ast.Field) bool {
	if field.Tag == nil {
		return false
	}
	tag, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return false
	}
	return annotation.Marked(tag)
}

// fieldNames returns the identifiers naming field. Embedded fields are named
// after their type.
func fieldNames(field *ast.Field) []*ast.Ident {
	if len(field.Names) > 0 {
		return field.Names
	}
	expr := field.Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.SelectorExpr:
			return []*ast.Ident{e.Sel}
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return []*ast.Ident{e}
		default:
			return nil
		}
	}
}

// newDeclaration resolves the type checker objects of the field named name
// declared by spec in a file built under constraint.
func newDeclaration(pkg *packages.Package, spec *ast.TypeSpec, name string, pos token.Position, constraint string) (model.Declaration, error) {
	malformed := func(msg string) error {
		return &model.Diagnostic{
			Pos:     pos,
			Key:     naming.Key(spec.Name.Name, name),
			Kind:    model.Unsupported,
			Message: msg,
		}
	}
	tn, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, malformed("type " + spec.Name.Name + " could not be type-checked")
	}
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, malformed("type " + spec.Name.Name + " is an alias of an unnamed struct type and cannot declare methods")
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, malformed("type " + spec.Name.Name + " is not a struct type")
	}
	for i := range st.NumFields() {
		if f := st.Field(i); f.Name() == name {
			return &declaration{pkg: pkg, pos: pos, named: named, field: f, constraint: constraint}, nil
		}
	}
	return nil, malformed("field " + spec.Name.Name + "." + name + " could not be type-checked")
}
