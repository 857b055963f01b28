package rowcodec

import (
	"testing"

	"github.com/arloliu/rowcodec/column"
	"github.com/arloliu/rowcodec/format"
	"github.com/stretchr/testify/require"
)

func TestTable_AppliesDefaultSort(t *testing.T) {
	tbl, err := NewTable(WithDefaultSort(format.Descending))
	require.NoError(t, err)

	vals := &column.Int64Values{Data: []int64{1, 2, 3}}
	tbl.AddColumn(column.EncodeColumn{
		Type:   format.Int64,
		Kind:   column.Fixed,
		Source: vals,
	})

	require.Len(t, tbl.cols, 1)
	require.Equal(t, format.Descending, tbl.cols[0].Sort)
}

func TestTable_Encode_RoundTrip(t *testing.T) {
	tbl, err := NewTable()
	require.NoError(t, err)

	vals := &column.Int64Values{Data: []int64{30, 10, 20}}
	tbl.AddColumn(column.EncodeColumn{
		Type:   format.Int64,
		Sort:   format.Ascending,
		Kind:   column.Fixed,
		Source: vals,
	})

	buf, err := tbl.Encode(3)
	require.NoError(t, err)
	require.Equal(t, 3, buf.RowCount())

	dst := column.NewInt64Builder(3)
	rows := make([][]byte, 3)
	for i := range rows {
		rows[i] = buf.RowBytes(i)
	}

	err = column.DecodeRows(rows, []column.DecodeColumn{
		{Type: format.Int64, Sort: format.Ascending, Kind: column.Fixed, Builder: dst},
	})
	require.NoError(t, err)
	require.Equal(t, []int64{30, 10, 20}, dst.Values)
}

func TestWithMaxDictSize_RejectsNegative(t *testing.T) {
	_, err := NewTable(WithMaxDictSize(-1))
	require.Error(t, err)
}
