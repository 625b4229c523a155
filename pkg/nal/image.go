package nal

// Image builds an image-ext or image-int compound: the relation term
// followed by its arguments with the argument at index replaced by the
// reserved placeholder "_". index is an argument position (0-based, among
// args), not a position in the resulting component slice (which is
// len(args)+1, since the relation occupies slot 0).
//
// Returns nil (construction failure) if op is not an image operator, args
// is empty, index is out of [0,len(args)), or relation is nil — the
// "relation-index bounds checking" edge case.
func Image(op CompoundOp, relation *Term, args []*Term, index int) *Term {
	if op != OpImageExt && op != OpImageInt {
		return nil
	}
	if relation == nil || len(args) == 0 || index < 0 || index >= len(args) {
		return nil
	}
	for _, a := range args {
		if a == nil {
			return nil
		}
	}
	components := make([]*Term, 0, len(args)+1)
	components = append(components, relation)
	for i, a := range args {
		if i == index {
			components = append(components, Placeholder())
		} else {
			components = append(components, a)
		}
	}
	t := &Term{kind: kindCompound, op: op, components: components, relIndex: index}
	return buildTerm(t)
}

// rebuildImage reconstructs an image with the same operator and relation
// index as template but new components (used by Make). The placeholder
// slot of newComponents is expected to already be at template's relIndex.
func rebuildImage(template *Term, newComponents []*Term) *Term {
	if len(newComponents) != len(template.components) {
		return nil
	}
	for _, c := range newComponents {
		if c == nil {
			return nil
		}
	}
	t := &Term{kind: kindCompound, op: template.op, components: append([]*Term(nil), newComponents...), relIndex: template.relIndex}
	return buildTerm(t)
}

// imageArgs reconstructs the full (no-placeholder) argument list of an
// image compound, substituting fillWithRelIndexArg at the placeholder slot.
func imageArgs(image *Term, fillWithRelIndexArg *Term) []*Term {
	args := make([]*Term, 0, len(image.components)-1)
	for i, c := range image.components[1:] {
		if i == image.relIndex {
			args = append(args, fillWithRelIndexArg)
		} else {
			args = append(args, c)
		}
	}
	return args
}

// TransformInheritance implements the product<->image
// structural transform on a statement at argument position index. It
// dispatches on the shape of stmt's subject/predicate:
//
//   - subject is a product: forward transform to an image-ext predicate.
//   - predicate is a product: dual forward transform to an image-int subject.
//   - predicate is an image-ext at its own relation index: invert to the
//     product-on-subject form.
//   - predicate is an image-ext at a different index: invert to the
//     product form, then re-transform at index (yielding a different
//     image-ext, with the placeholder shifted).
//   - subject is an image-int: dual of the two image-ext cases.
//
// Returns nil if stmt's shape matches none of the above, or if any
// intermediate construction is degenerate (construction failure, aborting
// the caller's derivation). The statement's copula and
// temporal order are preserved.
func TransformInheritance(stmt *Term, index int) *Term {
	if stmt == nil || !stmt.IsStatement() {
		return nil
	}
	subject, predicate := stmt.Subject(), stmt.Predicate()

	switch {
	case subject.Op() == OpProduct:
		if index < 0 || index >= subject.Arity() {
			return nil
		}
		newSubject := subject.components[index]
		newPredicate := Image(OpImageExt, predicate, subject.components, index)
		return Statement(stmt.copula, newSubject, newPredicate, stmt.temporal)

	case predicate.Op() == OpProduct:
		if index < 0 || index >= predicate.Arity() {
			return nil
		}
		newPredicate := predicate.components[index]
		newSubject := Image(OpImageInt, subject, predicate.components, index)
		return Statement(stmt.copula, newSubject, newPredicate, stmt.temporal)

	case predicate.Op() == OpImageExt:
		relation := predicate.components[0]
		args := imageArgs(predicate, subject)
		product := productOf(args)
		full := Statement(stmt.copula, product, relation, stmt.temporal)
		if full == nil {
			return nil
		}
		if index == predicate.relIndex {
			return full
		}
		return TransformInheritance(full, index)

	case subject.Op() == OpImageInt:
		relation := subject.components[0]
		args := imageArgs(subject, predicate)
		product := productOf(args)
		full := Statement(stmt.copula, relation, product, stmt.temporal)
		if full == nil {
			return nil
		}
		if index == subject.relIndex {
			return full
		}
		return TransformInheritance(full, index)

	default:
		return nil
	}
}
