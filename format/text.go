package format

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
	"gonum.org/v1/gonum/mat"
)

const textName = "text"

// Text is the plain text format: one matrix row per line, values separated by
// white space. Blank lines and lines starting with '#' are ignored.
type Text struct{}

// Name implements Format.
func (Text) Name() string { return textName }

// Suffixes implements Format.
func (Text) Suffixes() []string { return []string{"txt"} }

// Identify implements Format. The content must start with a number, a
// non-finite value (NaN, Inf, Infinity) or a comment.
func (Text) Identify(header []byte) bool {
	s := strings.TrimLeft(string(header), " \t\r\n")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || (s[i] < 0x20 && !strings.ContainsRune(" \t\r\n", rune(s[i]))) {
			return false
		}
	}
	if strings.ContainsRune("0123456789+-.#", rune(s[0])) {
		return true
	}
	return nonFinite(s)
}

// nonFinite reports whether s starts with a NaN or infinity token as parsed
// by strconv. A token cut off by the end of s only needs to be a prefix.
func nonFinite(s string) bool {
	token := strings.ToLower(s)
	if i := strings.IndexAny(token, " \t\r\n"); i >= 0 {
		token = token[:i]
		return token == "nan" || token == "inf" || token == "infinity"
	}
	return len(token) >= 3 && (token == "nan" || strings.HasPrefix("infinity", token))
}

// Read implements Reader.
func (Text) Read(r *stream.Reader, _ string) (*mat.Dense, error) {
	var (
		data []float64
		rows int
		cols int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, errors.BadDataOn(r, textName)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.BadDataOn(r, textName)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.IOOn(r, "Unable to read text data: "+err.Error())
	}

	if rows == 0 {
		return nil, errors.BadFileOn(r, textName)
	}
	return mat.NewDense(rows, cols, data), nil
}

// Write implements Writer.
func (Text) Write(w *stream.Writer, m mat.Matrix) error {
	rows, cols := m.Dims()
	fields := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fields[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if _, err := w.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return errors.IOOn(w, "Unable to write text data: "+err.Error())
		}
	}
	return nil
}
