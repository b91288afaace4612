package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// Data returns the values of the series keyed by their x position. Values
// read from a file are left as strings; the chart decides what is numeric.
func (s Series) Data() (map[int]any, error) {
	if s.File == "" {
		return s.Values, nil
	}
	return s.load()
}

func (s Series) load() (map[int]any, error) {
	r, err := readFrom(s.File)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs   = csv.NewReader(r)
		data = make(map[int]any)
		row  int
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if s.Delim != "" {
		rs.Comma = []rune(s.Delim)[0]
	}
	if s.Header {
		if _, err := rs.Read(); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	for ; ; row++ {
		line, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		key, value, err := s.pick(line, row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.File, err)
		}
		data[key] = value
	}
	return data, nil
}

// pick uses the X column as key when it differs from the Y column and the
// row number otherwise.
func (s Series) pick(line []string, row int) (int, any, error) {
	y := s.Y
	if s.X == s.Y && y == 0 && len(line) > 1 {
		y = 1
	}
	if y >= len(line) {
		return 0, nil, fmt.Errorf("row %d: column %d out of range", row+1, y)
	}
	if s.X == y || s.X >= len(line) {
		return row, line[y], nil
	}
	key, err := cast.ToIntE(strings.TrimSpace(line[s.X]))
	if err != nil {
		return 0, nil, fmt.Errorf("row %d: %w", row+1, err)
	}
	return key, line[y], nil
}

// readFrom accepts plain paths and file:// URLs.
func readFrom(location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "":
		return os.Open(location)
	case "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}
