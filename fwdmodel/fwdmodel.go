// Package fwdmodel defines the interface a forward model exposes to the
// inference engine that fits it, together with the pieces shared by all
// models: the parameter layout, structured parameter dumps, the registry of
// named models and batch evaluation.
package fwdmodel

import (
	"github.com/hammal/asl/mvn"
	"github.com/hammal/asl/options"
	"gonum.org/v1/gonum/mat"
)

// FwdModel maps a parameter vector to a predicted signal
//
// y = f(params)
//
// A model is created uninitialized, configured once through Initialize and
// after that only read. Evaluate may then be called concurrently.
type FwdModel interface {
	// Configure the model from string options
	Initialize(args *options.Args) error
	// Length of the parameter vector
	NumParams() int
	// Human readable names, one per parameter
	NameParams() []string
	// Fill prior and initial posterior, both must have dimension NumParams()
	HardcodedInitialDists(prior, posterior *mvn.MVNDist)
	// Predicted signal for params
	Evaluate(params mat.Vector) *mat.VecDense
	// Structured view of a parameter vector
	DumpParameters(params mat.Vector) ParameterDump

	GetOptions() []options.OptionSpec
	GetUsage() []string
	GetDescription() string
	ModelVersion() string
}

// NewInstanceFunc returns a fresh uninitialized model
type NewInstanceFunc func() FwdModel
