package nal

// Compound builds a compound term for the given operator and children,
// applying canonicalization and degeneracy rules:
//
//   - commutative/set-like operators (set-ext, set-int, intersection-ext,
//     intersection-int, conjunction, disjunction) are sorted and deduped;
//   - associative operators (conjunction, disjunction, intersection-ext,
//     intersection-int) are flattened one level: a same-operator child's
//     components are spliced in rather than nested;
//   - an operator whose algebra collapses to a single surviving operand
//     (e.g. an intersection of one distinct term, or a conjunction of one
//     conjunct) returns that operand directly rather than a unit compound;
//   - an operator given zero components, or a self-referential degenerate
//     form, returns nil (construction failure).
//
// Image operators are not constructed here; use Image (image.go), since
// they additionally require a relation index.
func Compound(op CompoundOp, children ...*Term) *Term {
	switch op {
	case OpImageExt, OpImageInt:
		return nil // use Image
	case OpNegation:
		return negationOf(children)
	case OpProduct:
		return productOf(children)
	case OpSetExt, OpSetInt:
		return setOf(op, children)
	case OpIntersectionExt, OpIntersectionInt:
		return intersectionOf(op, children)
	case OpDifferenceExt, OpDifferenceInt:
		return differenceOf(op, children)
	case OpConjunction, OpDisjunction:
		return junctionOf(op, children)
	default:
		return nil
	}
}

func negationOf(children []*Term) *Term {
	if len(children) != 1 || children[0] == nil {
		return nil
	}
	inner := children[0]
	// Double negation collapses: (--,(--,A)) ≡ A. Supplemented per
	//  negation identity; consistent with the admission
	// gate's "double-negation partner" cycle-check wording.
	if inner.kind == kindCompound && inner.op == OpNegation {
		return inner.components[0]
	}
	t := &Term{kind: kindCompound, op: OpNegation, components: children}
	return buildTerm(t)
}

func productOf(children []*Term) *Term {
	if len(children) == 0 {
		return nil
	}
	for _, c := range children {
		if c == nil {
			return nil
		}
	}
	cp := append([]*Term(nil), children...)
	t := &Term{kind: kindCompound, op: OpProduct, components: cp}
	return buildTerm(t)
}

func setOf(op CompoundOp, children []*Term) *Term {
	if len(children) == 0 {
		return nil
	}
	for _, c := range children {
		if c == nil {
			return nil
		}
	}
	cp := append([]*Term(nil), children...)
	sortTerms(cp)
	cp = dedupeSorted(cp)
	t := &Term{kind: kindCompound, op: op, components: cp}
	return buildTerm(t)
}

// intersectionOf flattens nested same-operator intersections one level,
// sorts and dedupes, and collapses to the single operand when the
// intersection has only one distinct member (A & A ≡ A).
func intersectionOf(op CompoundOp, children []*Term) *Term {
	flat := flattenSameOp(op, children)
	if flat == nil {
		return nil
	}
	sortTerms(flat)
	flat = dedupeSorted(flat)
	if len(flat) == 1 {
		return flat[0]
	}
	t := &Term{kind: kindCompound, op: op, components: flat}
	return buildTerm(t)
}

// differenceOf is the (non-commutative, non-associative) set/term
// difference; always binary.
func differenceOf(op CompoundOp, children []*Term) *Term {
	if len(children) != 2 || children[0] == nil || children[1] == nil {
		return nil
	}
	if children[0].Equal(children[1]) {
		// A - A is degenerate: empty extension/intension has no sound
		// representation in this algebra, so construction fails.
		return nil
	}
	t := &Term{kind: kindCompound, op: op, components: []*Term{children[0], children[1]}}
	return buildTerm(t)
}

// junctionOf handles conjunction/disjunction: flatten one level, sort and
// dedupe (they are commutative connectives here; temporal ordering, when
// present, is carried on the Term's Temporal field rather than by
// preserving insertion order — callers needing an ordered sequence of
// events use BuildOrderedJunction, which skips the sort).
func junctionOf(op CompoundOp, children []*Term) *Term {
	flat := flattenSameOp(op, children)
	if flat == nil {
		return nil
	}
	sortTerms(flat)
	flat = dedupeSorted(flat)
	if len(flat) == 1 {
		return flat[0]
	}
	t := &Term{kind: kindCompound, op: op, components: flat}
	return buildTerm(t)
}

// BuildOrderedJunction constructs a conjunction/disjunction that preserves
// insertion order instead of sorting, for use when temporal is not
// TemporalNone: a forward-ordered conjunction's first component is
// semantically distinguished ( structural-compound rule
// refuses to extract non-first components of a forward conjunction).
func BuildOrderedJunction(op CompoundOp, temporal TemporalOrder, children ...*Term) *Term {
	flat := flattenSameOp(op, children)
	if flat == nil {
		return nil
	}
	// Order-preserving dedupe.
	seen := make(map[string]bool, len(flat))
	out := flat[:0]
	for _, c := range flat {
		if seen[c.key] {
			continue
		}
		seen[c.key] = true
		out = append(out, c)
	}
	if len(out) == 1 {
		return out[0]
	}
	t := &Term{kind: kindCompound, op: op, components: out, temporal: temporal}
	return buildTerm(t)
}

func flattenSameOp(op CompoundOp, children []*Term) []*Term {
	if len(children) == 0 {
		return nil
	}
	out := make([]*Term, 0, len(children))
	for _, c := range children {
		if c == nil {
			return nil
		}
		if c.kind == kindCompound && c.op == op {
			out = append(out, c.components...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Make rebuilds a compound of the same operator and (for statements) the
// same copula as template, using newComponents as the children. It returns
// nil if the result would be degenerate, matching 
// make(template, newComponents) contract. Image operators preserve the
// template's relation index.
func Make(template *Term, newComponents []*Term) *Term {
	switch template.kind {
	case kindStatement:
		if len(newComponents) != 2 {
			return nil
		}
		return Statement(template.copula, newComponents[0], newComponents[1], template.temporal)
	case kindCompound:
		switch template.op {
		case OpImageExt, OpImageInt:
			return rebuildImage(template, newComponents)
		default:
			return Compound(template.op, newComponents...)
		}
	default:
		return nil
	}
}
