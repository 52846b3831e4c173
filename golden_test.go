package sqv_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	sqv "github.com/sqf-tools/go-sqv"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.sqv")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no testdata files found")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			v, err := sqv.Parse(src)
			if err != nil {
				// Inputs that fail even lenient parsing keep the error
				// message as their golden content.
				actual = []byte(err.Error())
			} else {
				actual, err = sqv.Marshal(v)
				require.NoError(t, err)
			}

			goldenFile := strings.Replace(file, ".sqv", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "golden file not found, run with -update to create it")

			require.Equal(t, string(expected), string(actual))
		})
	}
}
