package fwdmodel

import (
	"github.com/sourcegraph/conc/iter"
	"gonum.org/v1/gonum/mat"
)

// EvaluateBatch evaluates every parameter vector with the same configured
// model using at most maxGoroutines goroutines (GOMAXPROCS when <= 0).
// Results are returned in input order. A panic inside Evaluate is
// propagated to the caller.
func EvaluateBatch(model FwdModel, params []mat.Vector, maxGoroutines int) []*mat.VecDense {
	mapper := iter.Mapper[mat.Vector, *mat.VecDense]{MaxGoroutines: maxGoroutines}
	return mapper.Map(params, func(p *mat.Vector) *mat.VecDense {
		return model.Evaluate(*p)
	})
}
