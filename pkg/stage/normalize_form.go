package stage

import (
	"golang.org/x/text/unicode/norm"

	"github.com/hazyhaar/normy/pkg/lang"
)

// NormalizeForm wraps one of Unicode's four canonical/compatibility
// normalization forms. It is always non-fusable: composition/decomposition
// is inherently a block-level transform, not a per-character adapter — the
// same reason the original specification treats NFC/NFD/NFKC/NFKD as a
// black-box batch dependency.
type NormalizeForm struct {
	form norm.Form
	name string
}

var (
	NFC  = NormalizeForm{form: norm.NFC, name: "NFC"}
	NFD  = NormalizeForm{form: norm.NFD, name: "NFD"}
	NFKC = NormalizeForm{form: norm.NFKC, name: "NFKC"}
	NFKD = NormalizeForm{form: norm.NFKD, name: "NFKD"}
)

func (s NormalizeForm) Name() string { return s.name }

func (s NormalizeForm) NeedsApply(input string, _ lang.Entry) bool {
	return !s.form.IsNormalString(input)
}

func (s NormalizeForm) Apply(input string, _ lang.Entry) (string, error) {
	if s.form.IsNormalString(input) {
		return input, nil
	}
	return s.form.String(input), nil
}
