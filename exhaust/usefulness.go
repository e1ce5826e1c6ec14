package exhaust

// CtorInfo is one constructor of a finite TypeSignature: its tag name and
// the type name of each sub-pattern position (empty for a 0-arity
// constructor like a bool literal or an enum variant).
type CtorInfo struct {
	Name     string
	ArgTypes []string
}

// Signature is the constructor set for one scrutinee type. Complete is
// false for types with no enumerable constructor set (int, string, float,
// money, percent, date, duration, and any struct type not shaped as an
// enum) — those fall back to the default-matrix-only branch of the
// algorithm.
type Signature struct {
	Complete bool
	Ctors    []CtorInfo
}

// BoolSignature is the fixed {true, false} constructor set.
func BoolSignature() Signature {
	return Signature{Complete: true, Ctors: []CtorInfo{{Name: "true"}, {Name: "false"}}}
}

// SignatureLookup resolves a type name to its constructor set. The
// exhaustiveness checker is parameterized over this so it can be exercised
// against a synthetic registry in tests without constructing a full module.
type SignatureLookup func(typeName string) (Signature, bool)

// witnessLimit bounds how many missing-pattern witnesses are reported
// before the diagnostic falls back to an ellipsis. Generation stops after
// witnessLimit+1 witnesses, one more than is reported, so a match missing
// six or more variants always gets exactly five names plus an ellipsis,
// never a partial count that happens to equal the limit.
const witnessLimit = 5

// Missing returns the witnessing pattern rows not covered by matrix for a
// scrutinee whose column types are colTypes (one per matrix column, in
// order). An empty result means the matrix is exhaustive. For a type with
// a complete constructor set, every witness names a missing constructor;
// defaulted witnesses are produced only for a type with no finite
// constructor set, and have their head pattern's rendering prefixed with
// "_".
func Missing(m PatternMatrix, colTypes []string, lookup SignatureLookup) []PatternRow {
	return missingCapped(m, colTypes, lookup, witnessLimit+1)
}

func missingCapped(m PatternMatrix, colTypes []string, lookup SignatureLookup, cap int) []PatternRow {
	if cap <= 0 {
		return nil
	}
	if len(colTypes) == 0 {
		if len(m.Rows) == 0 {
			return []PatternRow{{Cols: nil}}
		}
		return nil
	}

	headType := colTypes[0]
	restTypes := colTypes[1:]
	sig, known := lookup(headType)

	var results []PatternRow

	if known && sig.Complete {
		for _, ctor := range sig.Ctors {
			spec := Specialize(m, ctor.Name, len(ctor.ArgTypes))
			specColTypes := append(append([]string{}, ctor.ArgTypes...), restTypes...)
			sub := missingCapped(spec, specColTypes, lookup, cap-len(results))
			for _, w := range sub {
				ctorSub := w.Cols[:len(ctor.ArgTypes)]
				rest := w.Cols[len(ctor.ArgTypes):]
				row := PatternRow{Cols: append([]AbstractPattern{Constructor(ctor.Name, ctorSub)}, rest...)}
				results = append(results, row)
				if len(results) >= cap {
					return results
				}
			}
		}
		// Every constructor of a complete signature has been tried, so any
		// uncovered value is already named by one of the witnesses above.
		return results
	}

	// The type has no finite constructor set: recurse on the default
	// matrix and mark every witness found this way.
	def := Default(m)
	sub := missingCapped(def, restTypes, lookup, cap-len(results))
	for _, w := range sub {
		row := PatternRow{Cols: append([]AbstractPattern{defaultWitnessHead()}, w.Cols...)}
		results = append(results, row)
		if len(results) >= cap {
			return results
		}
	}
	return results
}

// defaultWitnessHead is the head pattern substituted for a witness column
// produced by the default-matrix branch; its String() renders with the
// "_" prefix the spec requires for such witnesses.
func defaultWitnessHead() AbstractPattern {
	return AbstractPattern{Kind: KindWildcard, Ctor: "_"}
}
