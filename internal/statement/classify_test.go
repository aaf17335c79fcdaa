package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingSink captures failure artifacts for assertions.
type recordingSink struct {
	docs    []string
	indexes []int
	tables  [][][]string
}

func (s *recordingSink) SaveTable(doc string, tableIndex int, rows [][]string) error {
	s.docs = append(s.docs, doc)
	s.indexes = append(s.indexes, tableIndex)
	s.tables = append(s.tables, rows)
	return nil
}

func newTestParser() (*Parser, *recordingSink) {
	sink := &recordingSink{}
	return NewParser(zap.NewNop(), sink), sink
}

func shapeATable() [][]string {
	return [][]string{
		{"FRANK ACCOUNT", "", "", "", "", "", ""},
		{"Account No. 501-123456-001", "", "", "", "", "", ""},
		{"Transaction", "Value", "", "Cheque", "", "", ""},
		{"Date", "Date", "Description", "No.", "Withdrawal", "Deposit", "Balance"},
		{"01 JAN", "01 JAN", "PAYMENT", "", "100.00", "", "900.00"},
	}
}

func TestClassifyTable_NoMarkerIsIgnored(t *testing.T) {
	p, sink := newTestParser()

	rows, class := p.classifyTable("doc", 0, [][]string{
		{"Deposit Insurance Scheme"},
		{"Some disclaimer text"},
	})
	assert.Equal(t, tableIgnored, class)
	assert.Nil(t, rows)
	assert.Empty(t, sink.docs)
}

func TestClassifyTable_EmptyTableIsIgnored(t *testing.T) {
	p, _ := newTestParser()

	_, class := p.classifyTable("doc", 0, nil)
	assert.Equal(t, tableIgnored, class)
}

func TestClassifyTable_ShapeA(t *testing.T) {
	p, sink := newTestParser()

	rows, class := p.classifyTable("doc", 0, shapeATable())
	require.Equal(t, tableRecognized, class)
	require.Len(t, rows, 1)
	assert.Equal(t, "01 JAN", rows[0][0])
	assert.Empty(t, sink.docs)
}

func TestClassifyTable_IncompleteHeader(t *testing.T) {
	p, sink := newTestParser()

	_, class := p.classifyTable("doc", 3, [][]string{
		{"Account No. 501-123456-001", "", "", "", "", "", ""},
		{"Transaction", "", "", "", "", "", ""},
	})
	assert.Equal(t, tableFailed, class)
	require.Len(t, sink.docs, 1)
	assert.Equal(t, "doc", sink.docs[0])
	assert.Equal(t, 3, sink.indexes[0])
}

func TestClassifyTable_UnknownHeaderShape(t *testing.T) {
	p, sink := newTestParser()

	_, class := p.classifyTable("doc", 0, [][]string{
		{"Account No. 501-123456-001", "", "", "", "", "", ""},
		{"Something", "", "", "", "", "", ""},
		{"Else", "", "", "", "", "", ""},
		{"01 JAN", "01 JAN", "PAYMENT", "", "100.00", "", "900.00"},
	})
	assert.Equal(t, tableFailed, class)
	assert.Len(t, sink.docs, 1)
}

func TestClassifyTable_ShapeBSplitsMergedDates(t *testing.T) {
	p, sink := newTestParser()

	rows, class := p.classifyTable("doc", 0, [][]string{
		{"Account No. 501-123456-001", "", "", "", "", ""},
		{"Transaction\nValue", "", "Cheque", "", "", ""},
		{"Date\nDate", "Description", "No.", "Withdrawal", "Deposit", "Balance"},
		{"01 JAN\n01 JAN", "PAYMENT", "", "100.00", "", "900.00"},
		{"", "VIA GIRO", "", "", "", ""},
	})
	require.Equal(t, tableRecognized, class)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"01 JAN", "01 JAN", "PAYMENT", "", "100.00", "", "900.00"}, rows[0])
	assert.Equal(t, []string{"", "", "VIA GIRO", "", "", "", ""}, rows[1])
	for _, row := range rows {
		assert.Len(t, row, canonicalColumns)
	}
	assert.Empty(t, sink.docs)
}

func TestClassifyTable_ShapeBEmptyRowPadsToCanonicalWidth(t *testing.T) {
	p, _ := newTestParser()

	rows, class := p.classifyTable("doc", 0, [][]string{
		{"Account No. 501-123456-001", "", "", "", "", ""},
		{"Transaction\nValue", "", "", "", "", ""},
		{"Date\nDate", "", "", "", "", ""},
		{},
		{"01 JAN\n01 JAN", "PAYMENT", "", "100.00", "", "900.00"},
	})
	require.Equal(t, tableRecognized, class)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"", "", "", "", "", "", ""}, rows[0])
	for _, r := range rows {
		assert.Len(t, r, canonicalColumns)
	}
}

func TestClassifyTable_ShapeBBadMergedCell(t *testing.T) {
	p, sink := newTestParser()

	_, class := p.classifyTable("doc", 2, [][]string{
		{"Account No. 501-123456-001", "", "", "", "", ""},
		{"Transaction\nValue", "", "", "", "", ""},
		{"Date\nDate", "", "", "", "", ""},
		{"01 JAN\n01 JAN\n02 JAN", "PAYMENT", "", "100.00", "", "900.00"},
	})
	assert.Equal(t, tableFailed, class)
	require.Len(t, sink.docs, 1)
	assert.Equal(t, 2, sink.indexes[0])
}

func TestClassifyTable_MarkerIsPrefixMatch(t *testing.T) {
	p, _ := newTestParser()

	table := shapeATable()
	table[1][0] = "Account No. 999-000111-002 STATEMENT OF ACCOUNT"
	_, class := p.classifyTable("doc", 0, table)
	assert.Equal(t, tableRecognized, class)
}
