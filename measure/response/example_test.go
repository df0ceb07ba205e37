package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-pedal/measure/response"
)

func ExampleTapLags() {
	lags, _ := response.TapLags(48000, 2000, 2)
	gains, _ := response.TapGains(2)

	for i := range lags {
		fmt.Printf("tap %d: lag %d samples, gain %.1f\n", i, lags[i], gains[i])
	}

	// Output:
	// tap 0: lag 2000 samples, gain 1.0
	// tap 1: lag 0 samples, gain 0.4
	// tap 2: lag 46000 samples, gain 0.4
}
