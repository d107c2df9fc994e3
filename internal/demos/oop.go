package demos

import (
	"io"

	"github.com/katalvlaran/lvlearn/record"
)

func class(w io.Writer) error {
	p := &printer{w: w}

	r := record.New("widget", 42)
	if err := r.DisplayTo(w); err != nil {
		return err
	}
	r.SetName("gadget")
	r.SetValue(r.Value() + 1)
	p.println(r.String())

	d := record.NewDefault()
	p.println(d.String())

	return p.err
}
