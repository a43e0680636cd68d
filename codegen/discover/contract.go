package discover

import (
	"go/types"

	"goa.design/autoreg/codegen/model"
)

// resolveRegistry checks that named satisfies contract c and returns the
// selectors generated setters use.
func resolveRegistry(pkg *types.Package, named *types.Named, c model.Contract) (model.Registry, error) {
	typeName := named.Obj().Name()
	fail := func(member, reason string) (model.Registry, error) {
		return model.Registry{}, &model.ContractError{TypeName: typeName, Member: member, Reason: reason}
	}
	ptr := types.NewPointer(named)

	var (
		regType     types.Type
		selector    string
		addressable bool
	)
	obj, _, _ := types.LookupFieldOrMethod(ptr, true, pkg, c.Registry)
	switch o := obj.(type) {
	case *types.Var:
		regType, selector, addressable = o.Type(), c.Registry, true
	case *types.Func:
		sig := o.Type().(*types.Signature)
		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			return fail(c.Registry, "method must take no argument and return the registry")
		}
		regType, selector = sig.Results().At(0).Type(), c.Registry+"()"
	default:
		return fail(c.Registry, "no field or method with this name")
	}

	contains, ok := method(regType, addressable, pkg, c.Contains)
	if !ok {
		return fail(c.Contains, "no method with this name on "+typeString(regType, pkg))
	}
	if !takesString(contains, 1) || contains.Results().Len() != 1 || !isKind(contains.Results().At(0).Type(), types.IsBoolean) {
		return fail(c.Contains, "registry method must have signature func(string) bool")
	}
	remove, ok := method(regType, addressable, pkg, c.Remove)
	if !ok {
		return fail(c.Remove, "no method with this name on "+typeString(regType, pkg))
	}
	if !takesString(remove, 1) {
		return fail(c.Remove, "registry method must accept a single string")
	}
	register, ok := method(ptr, true, pkg, c.Register)
	if !ok {
		return fail(c.Register, "no method with this name")
	}
	if !takesString(register, 2) {
		return fail(c.Register, "method must accept a string key and a value")
	}

	return model.Registry{
		Selector: selector,
		Contains: c.Contains,
		Remove:   c.Remove,
		Register: c.Register,
	}, nil
}

// method returns the signature of the method name of t.
func method(t types.Type, addressable bool, pkg *types.Package, name string) (*types.Signature, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t, addressable, pkg, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, false
	}
	return fn.Type().(*types.Signature), true
}

func typeString(t types.Type, pkg *types.Package) string {
	return types.TypeString(t, types.RelativeTo(pkg))
}

// takesString reports whether sig has n parameters, the first of which is
// a string.
func takesString(sig *types.Signature, n int) bool {
	return sig.Params().Len() == n && isKind(sig.Params().At(0).Type(), types.IsString)
}

func isKind(t types.Type, info types.BasicInfo) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&info != 0
}
