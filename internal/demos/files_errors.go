package demos

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvlearn/numeric"
)

func fileIO(w io.Writer) (err error) {
	p := &printer{w: w}

	dir, err := os.MkdirTemp("", "lvlearn-file-io-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		err = errors.Join(err, os.RemoveAll(dir))
	}()
	path := filepath.Join(dir, "output.txt")

	if err := writeLines(path, "Hello, World!", "This is a test."); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	p.println("File contents:")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.println(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return p.err
}

func writeLines(path string, lines ...string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			_ = out.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

func tryCatch(w io.Writer) error {
	p := &printer{w: w}
	for _, divisor := range []float64{2, 0} {
		result, err := numeric.Divide(10, divisor)
		if errors.Is(err, numeric.ErrDivisionByZero) {
			p.printf("Error: %v\n", err)
			break
		}
		p.printf("Result: %g\n", result)
	}
	p.println("Program continues...")

	return p.err
}
