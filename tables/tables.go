// Static lookup tables for the bandwidth report: the input file list, display names for models and
// platforms, model groups, and socket multipliers.
//
// The tables are decoded from the embedded tables.yaml when the package is initialized and are
// never modified after that.  A broken tables.yaml is a build defect and panics.

package tables

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownModel    = errors.New("No display name for model")
	ErrUnknownPlatform = errors.New("No display name for platform")
)

type Socket struct {
	Multiplier int    `yaml:"multiplier"`
	PeakKey    string `yaml:"peak"`
}

type document struct {
	Results       []string          `yaml:"results"`
	Peaks         string            `yaml:"peaks"`
	ModelAliases  map[string]string `yaml:"model-aliases"`
	ModelNames    map[string]string `yaml:"model-names"`
	ModelOrder    []string          `yaml:"model-order"`
	ModelGroups   map[string]string `yaml:"model-groups"`
	PlatformNames map[string]string `yaml:"platform-names"`
	Sockets       map[string]Socket `yaml:"sockets"`
}

//go:embed tables.yaml
var tablesYaml []byte

// MT: Constant after initialization; immutable
var tables *document

func init() {
	var err error
	tables, err = decode(tablesYaml)
	if err != nil {
		panic(err)
	}
}

func decode(bs []byte) (*document, error) {
	d := new(document)
	if err := yaml.Unmarshal(bs, d); err != nil {
		return nil, fmt.Errorf("Decoding tables: %w", err)
	}
	if len(d.Results) == 0 || d.Peaks == "" {
		return nil, errors.New("Tables: no input files")
	}
	for arch, s := range d.Sockets {
		if s.Multiplier < 1 || s.PeakKey == "" {
			return nil, fmt.Errorf("Tables: bad socket entry for %s", arch)
		}
	}
	return d, nil
}

func ResultFiles() []string {
	return slices.Clone(tables.Results)
}

func PeaksFile() string {
	return tables.Peaks
}

// The model label that `model` is folded into, if any.

func ModelAlias(model string) (string, bool) {
	m, found := tables.ModelAliases[model]
	return m, found
}

func ModelName(model string) (string, error) {
	if n, found := tables.ModelNames[model]; found {
		return n, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownModel, model)
}

func PlatformName(arch string) (string, error) {
	if n, found := tables.PlatformNames[arch]; found {
		return n, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, arch)
}

// The canonical model for `model`; a model without a group is its own group.

func ModelGroup(model string) string {
	if g, found := tables.ModelGroups[model]; found {
		return g
	}
	return model
}

func ModelOrder() []string {
	return slices.Clone(tables.ModelOrder)
}

func InModelOrder(model string) bool {
	return slices.Contains(tables.ModelOrder, model)
}

// The socket multiplier for `arch` and the key to look up in the peak table.  Defaults to (1, arch).

func SocketMultiplier(arch string) (int, string) {
	if s, found := tables.Sockets[arch]; found {
		return s.Multiplier, s.PeakKey
	}
	return 1, arch
}
