package form

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Prefill populates widget values from a JSON document using each
// field's bind path. Fields without a bind, or whose path does not
// resolve, are left untouched. Returns the number of fields filled.
//
// The inputs must be the chain's widgets in definition order (as
// produced by Build).
func Prefill(def *Definition, ch *Chain, doc []byte) (int, error) {
	if !gjson.ValidBytes(doc) {
		return 0, fmt.Errorf("prefill document is not valid JSON")
	}

	inputs := ch.Widgets()
	if len(inputs) != len(def.Fields) {
		return 0, fmt.Errorf("definition has %d fields but chain has %d widgets", len(def.Fields), len(inputs))
	}

	filled := 0
	for i, f := range def.Fields {
		if f.Bind == "" {
			continue
		}
		res := gjson.GetBytes(doc, f.Bind)
		if !res.Exists() {
			continue
		}
		inputs[i].SetValue(res.String())
		filled++
	}
	return filled, nil
}
