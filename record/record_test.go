package record_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/record"
)

func TestRecord_Constructors(t *testing.T) {
	r := record.New("alpha", 7)
	assert.Equal(t, "alpha", r.Name())
	assert.Equal(t, 7, r.Value())

	d := record.NewDefault()
	assert.Equal(t, "", d.Name())
	assert.Equal(t, 0, d.Value())

	var zero record.Record
	assert.Equal(t, d.String(), zero.String(), "zero value equals default")
}

func TestRecord_SettersRoundTrip(t *testing.T) {
	r := record.NewDefault()
	for i, name := range []string{"a", "", "Ωmega", "with space"} {
		r.SetName(name)
		assert.Equal(t, name, r.Name())
		r.SetValue(i - 2)
		assert.Equal(t, i-2, r.Value())
	}
}

func TestRecord_InstancesIndependent(t *testing.T) {
	a := record.New("a", 1)
	b := record.New("b", 2)
	a.SetValue(10)
	assert.Equal(t, 2, b.Value())
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, "Record{name='widget', value=42}", record.New("widget", 42).String())
	assert.Equal(t, "Record{name='', value=0}", record.NewDefault().String())
	assert.Equal(t, "Record{name='neg', value=-5}", record.New("neg", -5).String())
}

func TestRecord_DisplayTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, record.New("widget", 42).DisplayTo(&buf))
	assert.Equal(t, "Name: widget\nValue: 42\n", buf.String())
}

// failingWriter rejects every write.
type failingWriter struct{}

var errWrite = errors.New("write refused")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRecord_DisplayToPropagatesError(t *testing.T) {
	err := record.New("x", 1).DisplayTo(failingWriter{})
	assert.ErrorIs(t, err, errWrite)
}
