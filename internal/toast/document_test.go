package toast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateFor(t *testing.T) {
	tests := []struct {
		n       int
		want    Template
		wantErr bool
	}{
		{n: 0, wantErr: true},
		{n: 1, want: ToastText01},
		{n: 2, want: ToastText02},
		{n: 3, wantErr: true},
	}

	for _, tt := range tests {
		got, err := TemplateFor(tt.n)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidFields, "n=%d", tt.n)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
		require.Equal(t, tt.n, got.Slots())
	}
}

func TestNewDocumentSchema(t *testing.T) {
	doc, err := NewDocument(ToastText02)
	require.NoError(t, err)
	require.Equal(t, 2, doc.SlotCount())

	xml, err := doc.XML()
	require.NoError(t, err)
	require.Equal(t,
		`<toast><visual><binding template="ToastText02"><text id="1"/><text id="2"/></binding></visual></toast>`,
		xml)
}

func TestNewDocumentUnknownTemplate(t *testing.T) {
	_, err := NewDocument(Template(42))
	require.Error(t, err)
}

func TestBindOutOfRange(t *testing.T) {
	doc, err := NewDocument(ToastText01)
	require.NoError(t, err)

	require.ErrorIs(t, doc.Bind(1, "too far"), ErrSlotIndexOutOfRange)
	require.ErrorIs(t, doc.Bind(-1, "negative"), ErrSlotIndexOutOfRange)

	_, err = doc.Slot(1)
	require.ErrorIs(t, err, ErrSlotIndexOutOfRange)
}

func TestBindEscapesMarkup(t *testing.T) {
	doc, err := NewDocument(ToastText01)
	require.NoError(t, err)
	require.NoError(t, doc.Bind(0, "a < b & c"))

	got, err := doc.Slot(0)
	require.NoError(t, err)
	require.Equal(t, "a < b & c", got)

	xml, err := doc.XML()
	require.NoError(t, err)
	require.Contains(t, xml, "a &lt; b &amp; c")
}

func TestStateString(t *testing.T) {
	require.Equal(t, "template_loaded", TemplateLoaded.String())
	require.Equal(t, "submitted", Submitted.String())
}
