package gonumExtensions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadVest reads a design matrix file from path, see ParseVest.
func ReadVest(path string) (DesignMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return DesignMatrix{}, err
	}
	defer f.Close()
	d, err := ParseVest(f)
	if err != nil {
		return DesignMatrix{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ParseVest parses a text matrix with one row per line.
//
// Both the FSL VEST format
//
//	/NumWaves 2
//	/NumPoints 3
//	/Matrix
//	1 0
//	...
//
// and bare whitespace separated rows are accepted. Lines starting with # are
// comments. Only the header form can describe a matrix with zero columns.
func ParseVest(r io.Reader) (DesignMatrix, error) {
	var (
		data      []float64
		rows      int
		cols      = -1
		numWaves  = -1
		numPoints = -1
		lineNo    int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "/") {
			fields := strings.Fields(line)
			var err error
			switch fields[0] {
			case "/NumWaves":
				numWaves, err = headerValue(fields)
			case "/NumPoints":
				numPoints, err = headerValue(fields)
			}
			if err != nil {
				return DesignMatrix{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		fields := strings.Fields(line)
		if cols < 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return DesignMatrix{}, fmt.Errorf("line %d: expected %d columns, found %d", lineNo, cols, len(fields))
		}
		for _, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return DesignMatrix{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			data = append(data, value)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return DesignMatrix{}, err
	}

	if numWaves >= 0 && rows > 0 && cols != numWaves {
		return DesignMatrix{}, fmt.Errorf("/NumWaves %d doesn't match %d data columns", numWaves, cols)
	}
	if numPoints >= 0 && rows > 0 && rows != numPoints {
		return DesignMatrix{}, fmt.Errorf("/NumPoints %d doesn't match %d data rows", numPoints, rows)
	}

	if rows == 0 {
		// Only a header can describe an empty design
		if numPoints > 0 && numWaves == 0 {
			return EmptyDesignMatrix(numPoints), nil
		}
		if numPoints > 0 && numWaves > 0 {
			return DesignMatrix{}, fmt.Errorf("header announces %d by %d matrix but there is no data", numPoints, numWaves)
		}
		return DesignMatrix{}, fmt.Errorf("no data rows")
	}
	return NewDesignMatrix(mat.NewDense(rows, cols, data)), nil
}

func headerValue(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("malformed header %q", strings.Join(fields, " "))
	}
	value, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed header %q: %w", strings.Join(fields, " "), err)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative size in header %q", strings.Join(fields, " "))
	}
	return value, nil
}

// WriteVest writes d in the VEST format
func WriteVest(w io.Writer, d DesignMatrix) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/NumWaves %d\n/NumPoints %d\n/Matrix\n", d.Cols(), d.Rows())
	for row := 0; row < d.Rows() && d.Cols() > 0; row++ {
		for col := 0; col < d.Cols(); col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(d.At(row, col), 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
