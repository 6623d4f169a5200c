package crucible

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Variant holds the run-length constraints of a crucible.
//
// MinStraight is how many cells a crucible must travel in one direction
// before it may turn (and before it may stop at the goal); MaxStraight is
// how many it may travel before it is forced to turn.
type Variant struct {
	Name        string `yaml:"name"`
	MinStraight int    `yaml:"min_straight"`
	MaxStraight int    `yaml:"max_straight"`
}

var (
	// Basic is the ordinary crucible: at most three cells in a row.
	Basic = Variant{Name: "basic", MinStraight: 0, MaxStraight: 3}
	// Ultra is the ultra crucible: four to ten cells between turns.
	Ultra = Variant{Name: "ultra", MinStraight: 4, MaxStraight: 10}
)

// Validate reports ErrBadVariant unless 0 ≤ MinStraight ≤ MaxStraight and MaxStraight ≥ 1.
func (v Variant) Validate() error {
	if v.MinStraight < 0 || v.MaxStraight < 1 || v.MinStraight > v.MaxStraight {
		return fmt.Errorf("%w: %q min_straight=%d max_straight=%d",
			ErrBadVariant, v.Name, v.MinStraight, v.MaxStraight)
	}
	return nil
}

// String returns the variant name with its bounds.
func (v Variant) String() string {
	return fmt.Sprintf("%s(%d..%d)", v.Name, v.MinStraight, v.MaxStraight)
}

// variantFile is the document layout accepted by LoadVariants.
type variantFile struct {
	Variants []Variant `yaml:"variants"`
}

// LoadVariants decodes a YAML document of the form
//
//	variants:
//	  - name: basic
//	    min_straight: 0
//	    max_straight: 3
//
// and validates every entry. Names must be non-empty and unique.
func LoadVariants(data []byte) ([]Variant, error) {
	var doc variantFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("crucible: decode variants: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Variants))
	for i, v := range doc.Variants {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrBadVariant, i)
		}
		if _, dup := seen[v.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrBadVariant, v.Name)
		}
		seen[v.Name] = struct{}{}
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	return doc.Variants, nil
}
