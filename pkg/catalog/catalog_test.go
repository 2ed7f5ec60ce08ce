package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	path := writeCatalog(t, "reglist.json", `{
		"registers": [
			{"index": 7, "address": "PAGE1", "name": "REG_C", "offset": 4, "length": 4},
			{"index": 0, "address": "PAGE0", "name": "REG_A", "offset": 0, "length": 8},
			{"index": 3, "address": "PAGE0", "name": "REG_B", "offset": 8, "length": 2}
		]
	}`)

	descriptors, err := Load(path)
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	// Document order, not index order
	assert.Equal(t, []int{7, 0, 3}, []int{descriptors[0].Index, descriptors[1].Index, descriptors[2].Index})
	assert.Equal(t, Descriptor{Index: 0, AddressGroup: "PAGE0", Name: "REG_A", BitOffset: 0, BitLength: 8}, descriptors[1])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformedDocument(t *testing.T) {
	path := writeCatalog(t, "bad.json", `{"registers": [`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMissingArrayKey(t *testing.T) {
	path := writeCatalog(t, "nokey.json", `{"register_list": []}`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrMissingField)
}

func TestLoadEmptyArray(t *testing.T) {
	path := writeCatalog(t, "empty.json", `{"registers": []}`)
	descriptors, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}

func TestLoadRecordMissingFieldIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"index", `{"address": "PAGE0", "name": "REG_A", "offset": 0, "length": 8}`},
		{"address", `{"index": 0, "name": "REG_A", "offset": 0, "length": 8}`},
		{"name", `{"index": 0, "address": "PAGE0", "offset": 0, "length": 8}`},
		{"offset", `{"index": 0, "address": "PAGE0", "name": "REG_A", "length": 8}`},
		{"length", `{"index": 0, "address": "PAGE0", "name": "REG_A", "offset": 0}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// One good record does not save a catalog with one bad record.
			path := writeCatalog(t, "partial.json", `{"registers": [
				{"index": 1, "address": "PAGE0", "name": "REG_OK", "offset": 0, "length": 8},
				`+tc.record+`
			]}`)
			_, err := Load(path)
			require.ErrorIs(t, err, ErrMissingField)
			assert.ErrorContains(t, err, tc.name)
		})
	}
}

func TestLoadRejectsFractionalNumbers(t *testing.T) {
	path := writeCatalog(t, "frac.json", `{"registers": [
		{"index": 1.5, "address": "PAGE0", "name": "REG_A", "offset": 0, "length": 8}
	]}`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrBadValue)
}

func TestLoadRejectsBadRanges(t *testing.T) {
	negative := writeCatalog(t, "neg.json", `{"registers": [
		{"index": -1, "address": "PAGE0", "name": "REG_A", "offset": 0, "length": 8}
	]}`)
	_, err := Load(negative)
	require.ErrorIs(t, err, ErrBadValue)

	zeroLength := writeCatalog(t, "zero.json", `{"registers": [
		{"index": 0, "address": "PAGE0", "name": "REG_A", "offset": 0, "length": 0}
	]}`)
	_, err = Load(zeroLength)
	require.ErrorIs(t, err, ErrBadValue)
}

func TestLoadYAMLCatalog(t *testing.T) {
	path := writeCatalog(t, "reglist.yaml", `
registers:
  - index: 2
    address: PAGE0
    name: REG_A
    offset: 0
    length: 8
  - index: 5
    address: PAGE1
    name: REG_B
    offset: 4
    length: 2
`)

	descriptors, err := Load(path)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	assert.Equal(t, "REG_A", descriptors[0].Name)
	assert.Equal(t, 5, descriptors[1].Index)
	assert.Equal(t, 2, descriptors[1].BitLength)
}
