package confidence

import (
	"encoding/json"
	"fmt"

	"github.com/yuhangwang/statistics/common"
)

// MarshalJSON encodes the wrapped value in its stored "1 - confidence" form.
func (c CL[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(c.p))
}

// UnmarshalJSON re-checks the [0, 1] range so a decoded CL holds the same
// invariant as a constructed one.
func (c *CL[A]) UnmarshalJSON(data []byte) error {
	var p float64
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("encoded p-value %v outside [0, 1]: %w", p, common.ErrorInvalidValue)
	}
	c.p = A(p)
	return nil
}
