package index

import "fmt"

var _ Index = (*KeyIndex)(nil)

type keyBucket struct {
	key any
	row RowNum // NoRow means empty
}

// KeyIndex is a unique-valued secondary index: at most one row per key.
// It backs the Mode Analyzer's Key-index-lookup access strategy and the
// Column Accessor's get/set.
type KeyIndex struct {
	column  int
	buckets []keyBucket
}

// NewKeyIndex creates a Key index over column, sized for an initial row
// capacity.
func NewKeyIndex(column, rowCapacity int) *KeyIndex {
	ki := &KeyIndex{column: column}
	ki.buckets = make([]keyBucket, nextPow2(rowCapacity*2))
	ki.clearBuckets()
	return ki
}

func (ki *KeyIndex) clearBuckets() {
	for i := range ki.buckets {
		ki.buckets[i] = keyBucket{row: NoRow}
	}
}

func (ki *KeyIndex) ColumnNumber() int { return ki.column }

func (ki *KeyIndex) slot(key any) int {
	mask := len(ki.buckets) - 1
	i := int(keyHash(key)) & mask
	if i < 0 {
		i = -i
	}
	for {
		b := &ki.buckets[i]
		if b.row == NoRow || keyEqual(b.key, key) {
			return i
		}
		i = (i + 1) & mask
	}
}

// RowWithKey returns the row bearing key k, or NoRow if none.
func (ki *KeyIndex) RowWithKey(k any) RowNum {
	b := &ki.buckets[ki.slot(k)]
	if b.row == NoRow {
		return NoRow
	}
	return b.row
}

// OnAppend inserts (key(row), rowNum). It is an error — the table's
// declared uniqueness invariant would break — for the bucket to already
// hold a *different* row under that key.
func (ki *KeyIndex) OnAppend(rowNum RowNum, getRow func(RowNum) []any) error {
	row := getRow(rowNum)
	key := row[ki.column]
	i := ki.slot(key)
	b := &ki.buckets[i]
	if b.row != NoRow {
		return fmt.Errorf("%w: column %d key %v already held by row %d, rejected row %d",
			ErrDuplicateKey, ki.column, key, b.row, rowNum)
	}
	b.key = key
	b.row = rowNum
	return nil
}

func (ki *KeyIndex) Clear() { ki.clearBuckets() }

// Expand rehashes all entries into a larger bucket array sized for the
// table's new row capacity.
func (ki *KeyIndex) Expand(newRowCapacity int) {
	old := ki.buckets
	ki.buckets = make([]keyBucket, nextPow2(newRowCapacity*2))
	ki.clearBuckets()
	for _, b := range old {
		if b.row == NoRow {
			continue
		}
		i := ki.slot(b.key)
		ki.buckets[i] = b
	}
}
