package nal

// Statement builds a statement term (inheritance, similarity, implication,
// or equivalence) with the given temporal order. Degenerate forms — a
// reflexive inheritance/implication <A --> A> or <A ==> A>, which carries
// no information — construct to nil. Symmetric copulas (similarity,
// equivalence) canonicalize their operands into a fixed order so that
// <A <-> B> and <B <-> A> hash-cons to the same term.
func Statement(copula Copula, subject, predicate *Term, temporal TemporalOrder) *Term {
	if subject == nil || predicate == nil {
		return nil
	}
	if subject.Equal(predicate) {
		return nil
	}
	if copula.symmetric() && predicate.key < subject.key {
		subject, predicate = predicate, subject
		temporal = temporal.reverse()
	}
	t := &Term{
		kind:       kindStatement,
		copula:     copula,
		components: []*Term{subject, predicate},
		temporal:   temporal,
	}
	return buildTerm(t)
}

// Inheritance, Similarity, Implication, Equivalence are convenience
// constructors for the eternal (non-temporal) case, the common case for
// structural rules.
func Inheritance(subject, predicate *Term) *Term {
	return Statement(CopInheritance, subject, predicate, TemporalNone)
}

func Similarity(subject, predicate *Term) *Term {
	return Statement(CopSimilarity, subject, predicate, TemporalNone)
}

func Implication(subject, predicate *Term) *Term {
	return Statement(CopImplication, subject, predicate, TemporalNone)
}

func Equivalence(subject, predicate *Term) *Term {
	return Statement(CopEquivalence, subject, predicate, TemporalNone)
}
