package quipss2

import (
	"fmt"

	"github.com/hammal/asl/fwdmodel"
	"github.com/hammal/asl/gonumExtensions"
	"github.com/hammal/asl/options"
	"go.uber.org/zap"
)

// Initialize configures the model from args. On error the model is left
// unchanged.
//
// The BOLD basis is mandatory and fixes the number of TRs. The CBF and
// static magnetization options must be present but may be "null", the
// nuisance basis is optional. Every basis must have one row per TR.
func (m *Model) Initialize(args *options.Args) error {
	scanParams := args.ReadWithDefault("scan-params", defaultScanParams)
	if scanParams != defaultScanParams {
		return fmt.Errorf("%w: only --scan-params=cmdline is accepted at the moment, got %q", options.ErrUnsupportedOption, scanParams)
	}
	scan, err := readScanParameters(args)
	if err != nil {
		return err
	}
	m.logger.Info("scan parameters", zap.Object("scan", scan))

	rb, err := args.Read("bold-basis")
	if err != nil {
		return err
	}
	qb, err := args.Read("cbf-basis")
	if err != nil {
		return err
	}
	mb, err := args.Read("statmag-basis")
	if err != nil {
		return err
	}
	nb := args.ReadWithDefault("nuisance-basis", nullBasis)

	if rb == nullBasis {
		return fmt.Errorf("%w: --bold-basis=null isn't allowed", options.ErrInvalidOption)
	}
	rBasis, err := m.readBasis("BOLD", rb, -1)
	if err != nil {
		return err
	}
	numTR := rBasis.Rows()

	qBasis, err := m.readBasis("CBF", qb, numTR)
	if err != nil {
		return err
	}
	mBasis, err := m.readBasis("Stat. Mag.", mb, numTR)
	if err != nil {
		return err
	}
	nBasis, err := m.readBasis("Nuisance", nb, numTR)
	if err != nil {
		return err
	}

	rho, err := TagControlPattern(scan.TagPattern, numTR)
	if err != nil {
		return err
	}
	m.logger.Info("full tag-control pattern",
		zap.Int("trs", numTR),
		zap.String("pattern", TagControlString(rho)))

	m.scan = scan
	m.rho = rho
	m.qBasis, m.mBasis, m.rBasis, m.nBasis = qBasis, mBasis, rBasis, nBasis
	m.layout = buildLayout(scan, qBasis.Cols(), mBasis.Cols(), rBasis.Cols(), nBasis.Cols())
	m.logger.Debug("parameter layout", zap.Strings("names", m.layout.Names()))
	return nil
}

// readBasis loads a design matrix. "null" gives a design without columns.
// numTR < 0 accepts any number of rows.
func (m *Model) readBasis(label, path string, numTR int) (gonumExtensions.DesignMatrix, error) {
	m.logger.Info("reading basis functions", zap.String("basis", label), zap.String("path", path))
	if path == nullBasis {
		return gonumExtensions.EmptyDesignMatrix(numTR), nil
	}
	d, err := gonumExtensions.ReadVest(path)
	if err != nil {
		return gonumExtensions.DesignMatrix{}, fmt.Errorf("%w: reading %s basis: %v", options.ErrInvalidOption, label, err)
	}
	if numTR >= 0 && d.Rows() != numTR {
		return gonumExtensions.DesignMatrix{}, fmt.Errorf("%w: %s basis %s has %d rows, expected %d (one per TR)",
			options.ErrInvalidOption, label, path, d.Rows(), numTR)
	}
	return d, nil
}

// buildLayout fixes the parameter order
//
// Q0 Qn.. M0 Mn.. R0 Rn.. Nuisance(te1).. Nuisance(te2).. [InvEff] [T1b] [dt]
func buildLayout(scan ScanParameters, qCols, mCols, rCols, nCols int) *fwdmodel.Layout {
	l := fwdmodel.NewLayout()
	l.Append(RoleQ0, "Q0")
	l.Append(RoleQn, numbered("Q_abschg_%d", qCols)...)
	l.Append(RoleM0, "M0")
	l.Append(RoleMn, numbered("M_abschg_%d", mCols)...)
	l.Append(RoleR0, "R0")
	l.Append(RoleRn, numbered("BOLD_abschg_%d", rCols)...)

	nuisance := make([]string, 0, len(scan.EchoTimes)*nCols)
	for te := 1; te <= len(scan.EchoTimes); te++ {
		for k := 1; k <= nCols; k++ {
			nuisance = append(nuisance, fmt.Sprintf("Nuisance_signal_%d_te%d", k, te))
		}
	}
	l.Append(RoleNuisance, nuisance...)

	if scan.InvEffStdev > 0 {
		l.Append(RoleInvEff, "InvEff")
	}
	if scan.T1bStdev > 0 {
		l.Append(RoleT1b, "T1b")
	}
	if scan.DtStdev > 0 {
		l.Append(RoleDt, "dt")
	}
	return l
}

func numbered(format string, n int) []string {
	res := make([]string, n)
	for index := range res {
		res[index] = fmt.Sprintf(format, index+1)
	}
	return res
}
