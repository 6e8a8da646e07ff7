// Package quipss2 implements the QUIPSS II dual-echo arterial spin labeling
// forward model. The model predicts an interleaved two-echo signal time series
// from baseline cerebral blood flow (Q0), static magnetization (M0) and R2*
// (R0), their basis expanded changes and per echo nuisance regressors.
package quipss2

import (
	"errors"

	"github.com/hammal/asl/fwdmodel"
	"github.com/hammal/asl/gonumExtensions"
	"go.uber.org/zap"
)

// Name is the registry name of the model
const Name = "quipss2"

// Roles of the parameter vector segments, in layout order
const (
	RoleQ0       = "Q0"
	RoleQn       = "Qn"
	RoleM0       = "M0"
	RoleMn       = "Mn"
	RoleR0       = "R0"
	RoleRn       = "Rn"
	RoleNuisance = "Nuisance"
	RoleInvEff   = "InvEff"
	RoleT1b      = "T1b"
	RoleDt       = "dt"
)

var _ fwdmodel.FwdModel = (*Model)(nil)

// Model is the QUIPSS II forward model. The zero value is not usable, create
// it with New and configure it with Initialize.
type Model struct {
	logger *zap.Logger

	scan ScanParameters

	// Tag/control sign per TR, -1 tag and +1 control
	rho []float64

	// Basis functions for CBF, static magnetization, BOLD and nuisance
	qBasis gonumExtensions.DesignMatrix
	mBasis gonumExtensions.DesignMatrix
	rBasis gonumExtensions.DesignMatrix
	nBasis gonumExtensions.DesignMatrix

	layout *fwdmodel.Layout
}

// New returns an uninitialized model logging to logger (nil means no logging)
func New(logger *zap.Logger) *Model {
	m := &Model{}
	m.SetLogger(logger)
	return m
}

// NewInstance returns an uninitialized model, used by the model registry
func NewInstance() fwdmodel.FwdModel {
	return New(nil)
}

// SetLogger replaces the logger used while configuring the model
func (m *Model) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m.logger = logger.With(zap.String("model", Name))
}

// GetDescription returns a one line description of the model
func (m *Model) GetDescription() string {
	return "Implements the QUIPSS II ASL"
}

// ModelVersion identifies the revision of the model equations
func (m *Model) ModelVersion() string {
	return "quipss2 dual-echo 1.25"
}

// ScanParameters returns the resolved scan configuration
func (m *Model) ScanParameters() ScanParameters {
	m.mustBeInitialized()
	res := m.scan
	res.EchoTimes = append([]float64(nil), m.scan.EchoTimes...)
	return res
}

// NumTR returns the number of acquired time points
func (m *Model) NumTR() int {
	m.mustBeInitialized()
	return m.rBasis.Rows()
}

// NumEchoes returns the number of echoes per time point
func (m *Model) NumEchoes() int {
	m.mustBeInitialized()
	return len(m.scan.EchoTimes)
}

// TagControl returns a copy of the tag/control sign sequence
func (m *Model) TagControl() []float64 {
	m.mustBeInitialized()
	return append([]float64(nil), m.rho...)
}

// Layout returns the parameter layout
func (m *Model) Layout() *fwdmodel.Layout {
	m.mustBeInitialized()
	return m.layout
}

// NumParams returns the length of the parameter vector
func (m *Model) NumParams() int {
	m.mustBeInitialized()
	return m.layout.NumParams()
}

func (m *Model) Q0Index() int     { return m.Layout().Index(RoleQ0) }
func (m *Model) M0Index() int     { return m.Layout().Index(RoleM0) }
func (m *Model) R0Index() int     { return m.Layout().Index(RoleR0) }
func (m *Model) InvEffIndex() int { return m.Layout().Index(RoleInvEff) }
func (m *Model) T1bIndex() int    { return m.Layout().Index(RoleT1b) }
func (m *Model) DtIndex() int     { return m.Layout().Index(RoleDt) }

func (m *Model) mustBeInitialized() {
	if m.layout == nil {
		panic(errors.New("quipss2 model used before Initialize"))
	}
}
