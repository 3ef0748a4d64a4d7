package reference

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is a cell that holds a number, free text or a list of strings.
// Only YAML numbers count as numeric: a quoted "1.0" stays text.
type Value struct {
	num  *float64
	text string
	list []string
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value { return Value{num: &f} }

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{text: s} }

// ListValue returns a list Value.
func ListValue(items ...string) Value { return Value{list: items} }

// Number returns the numeric content of v.
func (v Value) Number() (float64, bool) {
	if v.num == nil {
		return 0, false
	}
	return *v.num, true
}

// IsZero reports whether v carries nothing.
func (v Value) IsZero() bool {
	return v.num == nil && v.text == "" && v.list == nil
}

func (v Value) String() string {
	switch {
	case v.num != nil:
		return strconv.FormatFloat(*v.num, 'g', -1, 64)
	case v.list != nil:
		return strings.Join(v.list, ", ")
	}
	return v.text
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	*v = Value{}
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return err
			}
			v.num = &f
		case "!!null":
		default:
			v.text = node.Value
		}
		return nil
	case yaml.SequenceNode:
		return decodeStringList(node, &v.list)
	}
	return fmt.Errorf("line %d: value must be a scalar or a list", node.Line)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.num != nil:
		return json.Marshal(*v.num)
	case v.list != nil:
		return json.Marshal(v.list)
	case v.text != "":
		return json.Marshal(v.text)
	}
	return []byte("null"), nil
}

// Range is the plausible span of a row: either a free-text interval such as
// "80–600" or a list of allowed levels.
type Range struct {
	Text   string
	Levels []string
}

// IsZero reports whether r carries nothing.
func (r Range) IsZero() bool { return r.Text == "" && r.Levels == nil }

func (r Range) String() string {
	if r.Levels != nil {
		return strings.Join(r.Levels, " / ")
	}
	return r.Text
}

func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	*r = Range{}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			r.Text = node.Value
		}
		return nil
	case yaml.SequenceNode:
		return decodeStringList(node, &r.Levels)
	}
	return fmt.Errorf("line %d: range must be a scalar or a list", node.Line)
}

func (r Range) MarshalJSON() ([]byte, error) {
	if r.Levels != nil {
		return json.Marshal(r.Levels)
	}
	return json.Marshal(r.Text)
}

// Upgradeable says whether a venue can invest in a row.
type Upgradeable string

const (
	UpgradeableYes       Upgradeable = "yes"
	UpgradeableNo        Upgradeable = "no"
	UpgradeableSometimes Upgradeable = "sometimes"
	UpgradeablePartial   Upgradeable = "partial"
	UpgradeableUsuallyNo Upgradeable = "usually_no"
)

// IsValid reports whether u is a known tag. Empty means unspecified.
func (u Upgradeable) IsValid() bool {
	switch u {
	case "", UpgradeableYes, UpgradeableNo, UpgradeableSometimes, UpgradeablePartial, UpgradeableUsuallyNo:
		return true
	}
	return false
}

// UnmarshalYAML accepts the tag names and plain booleans (true = yes).
func (u *Upgradeable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: upgradeable must be a scalar", node.Line)
	}
	if node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		if b {
			*u = UpgradeableYes
		} else {
			*u = UpgradeableNo
		}
		return nil
	}
	*u = Upgradeable(node.Value)
	return nil
}

func decodeStringList(node *yaml.Node, out *[]string) error {
	items := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: list items must be scalars", item.Line)
		}
		items = append(items, item.Value)
	}
	*out = items
	return nil
}
