// SPDX-License-Identifier: MIT

package ratio_test

import (
	"fmt"

	"github.com/katalvlaran/quickmaths/ratio"
)

func ExampleRatio_Reduced() {
	r := ratio.New(26, -20)
	fmt.Println(r, "→", r.Reduced())
	fmt.Println(ratio.Float[float64](r.Reduced()))
	// Output:
	// 26/-20 → -13/10
	// -1.3
}
