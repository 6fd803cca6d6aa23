// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the text matrix format.
package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsssp/matrix"
)

func TestReadWrite(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(12, matrix.WithSeed(21), matrix.WithDensity(0.4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.Write(&buf, a))

	b, err := matrix.Read(&buf, 12)
	require.NoError(t, err)
	require.Equal(t, a.Data(), b.Data())
}

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		n       int
		want    []int64
		wantErr error
	}{
		{"explicit order", "0 1\n1 0\n", 2, []int64{0, 1, 1, 0}, nil},
		{"inferred order", "0 3 3 0", 0, []int64{0, 3, 3, 0}, nil},
		{"comments and blank lines", "# header\n\n0 2 # row 0\n2 0\n", 2, []int64{0, 2, 2, 0}, nil},
		{"bad token", "0 x\nx 0\n", 2, nil, matrix.ErrParse},
		{"too few values", "0 1 1\n", 2, nil, matrix.ErrDimensionMismatch},
		{"not a square count", "0 1 1", 0, nil, matrix.ErrDimensionMismatch},
		{"empty inferred", "", 0, nil, matrix.ErrDimensionMismatch},
		{"asymmetric", "0 1\n2 0\n", 2, nil, matrix.ErrAsymmetry},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, err := matrix.Read(strings.NewReader(tt.input), tt.n)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, a.Data())
		})
	}
}

func TestWrite_Nil(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.Write(&bytes.Buffer{}, nil), matrix.ErrNilMatrix)
}
