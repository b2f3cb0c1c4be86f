package joinbench

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// errWriter keeps the first error returned by the wrapped writer and drops
// every write after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteTable prints rows as a table. With colorize set the faster device
// of every row is highlighted.
func WriteTable(w io.Writer, rows []Row, colorize bool) error {
	ew := &errWriter{w: w}
	table := tablewriter.NewWriter(ew)
	table.SetBorder(false)
	table.SetHeader([]string{"Dataset Size", "CPU (ms)", "GPU (ms)", "Speedup", "Faster"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	cpu := color.New(color.FgBlue, color.Bold)
	gpu := color.New(color.FgGreen, color.Bold)
	if colorize {
		cpu.EnableColor()
		gpu.EnableColor()
	} else {
		cpu.DisableColor()
		gpu.DisableColor()
	}

	for _, r := range rows {
		faster := gpu.Sprint(GPULabel)
		if r.CPU < r.GPU {
			faster = cpu.Sprint(CPULabel)
		}
		table.Append([]string{
			r.Category,
			humanize.Comma(int64(r.CPU)),
			humanize.Comma(int64(r.GPU)),
			humanize.FtoaWithDigits(r.Speedup(), 2) + "x",
			faster,
		})
	}
	table.Render()
	return errors.Wrap(ew.err, "write table")
}
