// SPDX-License-Identifier: MIT
package logratio_test

import (
	"fmt"

	"github.com/katalvlaran/coda/logratio"
)

// ExampleTransform runs a base-2 CLR with essential-zero removal on a small
// features × samples table.
func ExampleTransform() {
	t, _ := logratio.NewTable(
		[]string{"geneA", "geneB", "geneC"},
		[]string{"s1", "s2"},
		[][]float64{
			{0, 0},
			{1, 2},
			{4, 8},
		},
	)
	res, err := logratio.Transform(t,
		logratio.WithBase(logratio.Base2),
		logratio.WithRemoveEssentialZeros(true),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("dropped:", res.Diagnostics.DroppedIDs)
	for i, id := range res.Table.RowIDs {
		a, _ := res.Table.Data.At(i, 0)
		b, _ := res.Table.Data.At(i, 1)
		fmt.Printf("%s %+.3f %+.3f\n", id, a, b)
	}
	// Output:
	// dropped: [geneA]
	// geneB -1.000 -1.000
	// geneC +1.000 +1.000
}

// ExampleTransformWith shows the string-parameter entry point rejecting an
// unknown denominator.
func ExampleTransformWith() {
	t, _ := logratio.NewTable(nil, nil, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	_, err := logratio.TransformWith(t, "e", false, logratio.ImputeConfig{}, "TMM")
	fmt.Println(err != nil, logratio.IsConfigurationError(err))
	// Output: true false
}
