package timeseries

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a Series from a file in the trace CSV format: one sample
// per line, two fields separated by ';', decimal point encoded as ','.
// The file handle is released on every exit path.
func LoadCSV(path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errOpenFailed(path, err)
	}
	defer file.Close()

	return LoadCSVReader(file)
}

// LoadCSVReader reads a Series from r in the trace CSV format. Lines
// shorter than two ';'-separated fields end input. Trailing text after
// the second field is discarded up to the next newline. A malformed
// (non-numeric) field stops parsing at that line without raising an
// error — this is intentional for terse trace files with trailing
// garbage in otherwise terse trace files.
func LoadCSVReader(r io.Reader) (*Series, error) {
	scanner := bufio.NewScanner(r)

	var rows []Row
	for scanner.Scan() {
		line := scanner.Text()

		tField, rest, ok := strings.Cut(line, ";")
		if !ok {
			break
		}
		vField, _, _ := strings.Cut(rest, ";")

		t, err := parseLocaleFloat(tField)
		if err != nil {
			break
		}
		v, err := parseLocaleFloat(vField)
		if err != nil {
			break
		}

		rows = append(rows, Row{T: t, V: v})
	}

	return NewFromRows(rows), nil
}

// SaveCSV writes s to path in the trace CSV format, one "t;v" line per
// sample, decimal point encoded as ','. The file handle is released on
// every exit path.
func SaveCSV(s *Series, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errOpenFailed(path, err)
	}
	defer file.Close()

	return SaveCSVWriter(s, file)
}

// SaveCSVWriter writes s to w in the trace CSV format.
func SaveCSVWriter(s *Series, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, p := range s.points {
		bw.WriteString(formatLocaleFloat(p.T()))
		bw.WriteString(";")
		bw.WriteString(formatLocaleFloat(p.V()))
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// parseLocaleFloat parses a field using ',' as the decimal point,
// regardless of host locale.
func parseLocaleFloat(field string) (float64, error) {
	field = strings.TrimSpace(field)
	field = strings.Replace(field, ",", ".", 1)
	return strconv.ParseFloat(field, 64)
}

// formatLocaleFloat formats v using ',' as the decimal point, regardless
// of host locale.
func formatLocaleFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1)
}
