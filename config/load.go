package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrFormat   = errors.New("unsupported format")
	ErrDecode   = errors.New("decode failed")
	ErrEnv      = errors.New("undefined environment variable")
	ErrInvalid  = errors.New("invalid chart definition")
	ErrNoCharts = errors.New("no chart defined")
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Loader struct {
	ExpandEnv bool
	StrictEnv bool
	Validate  bool
	Dir       string
}

type LoaderOption func(*Loader)

func WithExpandEnv(on bool) LoaderOption {
	return func(l *Loader) {
		l.ExpandEnv = on
	}
}

// WithStrictEnv makes the loader fail on references to unset variables.
func WithStrictEnv(on bool) LoaderOption {
	return func(l *Loader) {
		l.StrictEnv = on
	}
}

func WithValidate(on bool) LoaderOption {
	return func(l *Loader) {
		l.Validate = on
	}
}

func WithBaseDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.Dir = dir
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := Loader{
		ExpandEnv: true,
		Validate:  true,
	}
	for _, o := range opts {
		o(&l)
	}
	return &l
}

func (l *Loader) LoadFile(file string) (File, error) {
	var format string
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return File{}, fmt.Errorf("%w: %s", ErrFormat, ext)
	}
	r, err := os.Open(file)
	if err != nil {
		return File{}, err
	}
	defer r.Close()

	ld := *l
	if ld.Dir == "" {
		ld.Dir = filepath.Dir(file)
	}
	return ld.Load(r, format)
}

func (l *Loader) Load(r io.Reader, format string) (File, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return File{}, err
	}
	if l.ExpandEnv {
		if buf, err = l.expand(buf); err != nil {
			return File{}, err
		}
	}
	file := Default()
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(buf, &file)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(buf))
		err = dec.Decode(&file)
	default:
		return File{}, fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	l.resolve(&file)
	if l.Validate {
		err = file.Validate()
	}
	return file, err
}

func (l *Loader) expand(buf []byte) ([]byte, error) {
	var missing []string
	str := os.Expand(string(buf), func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return v
	})
	if l.StrictEnv && len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrEnv, strings.Join(missing, ", "))
	}
	return []byte(str), nil
}

func (l *Loader) resolve(file *File) {
	if l.Dir == "" {
		return
	}
	for i := range file.Charts {
		for j, s := range file.Charts[i].Series {
			if s.File == "" || filepath.IsAbs(s.File) || strings.HasPrefix(s.File, "file:") {
				continue
			}
			file.Charts[i].Series[j].File = filepath.Join(l.Dir, s.File)
		}
	}
}

func (f File) Validate() error {
	if len(f.Charts) == 0 {
		return ErrNoCharts
	}
	switch strings.ToLower(f.Format) {
	case FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("%w: %s", ErrFormat, f.Format)
	}
	seen := make(map[string]struct{})
	for i, c := range f.Charts {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if c.Width < 0 || c.Height < 0 {
			return fmt.Errorf("%w: %s: negative dimension", ErrInvalid, name)
		}
		if c.Name != "" {
			if _, ok := seen[c.Name]; ok {
				return fmt.Errorf("%w: %s: duplicate name", ErrInvalid, name)
			}
			seen[c.Name] = struct{}{}
		}
		for j, s := range c.Series {
			if s.File != "" && len(s.Values) > 0 {
				return fmt.Errorf("%w: %s: series %d: values and file are exclusive", ErrInvalid, name, j+1)
			}
		}
	}
	return nil
}
