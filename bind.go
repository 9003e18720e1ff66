package catalyst

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Bind decodes the valid subset of a load into out, which must be a pointer
// to a struct. Struct fields are matched through `catalyst` tags. Invalid
// fields are simply absent from the decode — partial persistence of the
// valid subset is the point — so callers wanting all-or-nothing should check
// IsValid first.
func (r *LoadResult) Bind(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "catalyst",
	})
	if err != nil {
		return fmt.Errorf("catalyst: bind: %w", err)
	}
	if err := dec.Decode(r.ValidData); err != nil {
		return fmt.Errorf("catalyst: bind: %w", err)
	}
	return nil
}
