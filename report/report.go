// Package report writes clustering results.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
)

// WriteAssignments writes one kernel index per line, preceded by header when
// it is not empty.
func WriteAssignments(w io.Writer, assignments []int, header string) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		if _, err := bw.WriteString(header + "\n"); err != nil {
			return err
		}
	}

	var buf []byte
	for _, a := range assignments {
		buf = strconv.AppendInt(buf[:0], int64(a), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSON writes res as a single JSON document followed by a newline.
// A nil codec uses codec.Default.
func WriteJSON(w io.Writer, c codec.Codec, res *kmeans.Result) error {
	if res == nil {
		return fmt.Errorf("report: nil result")
	}
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(res)
	if err != nil {
		return fmt.Errorf("report: encode result with %s: %w", c.Name(), err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
