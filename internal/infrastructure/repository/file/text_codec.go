package file

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/roster-manager/internal/domain/roster"
	"github.com/valyala/bytebufferpool"
)

// decodeText reads "<jersey> <rating>" lines. Blank lines are skipped and
// tokens after the rating are ignored. Lines have no length limit.
func decodeText(raw []byte) ([]record, error) {
	var out []record

	reader := bufio.NewReader(bytes.NewReader(raw))
	line := 0
	for {
		text, readErr := reader.ReadBytes('\n')
		if readErr != nil && !stderrors.Is(readErr, io.EOF) {
			return nil, crerr.Wrapf(readErr, "read line %d", line+1)
		}
		if len(text) == 0 && readErr != nil {
			break
		}
		line++

		if rec, ok := decodeTextLine(text, line); ok {
			out = append(out, rec)
		}
		if readErr != nil {
			break
		}
	}

	return out, nil
}

func decodeTextLine(text []byte, line int) (record, bool) {
	fields := bytes.Fields(text)
	if len(fields) == 0 {
		return record{}, false
	}

	rec := record{pos: line}
	if len(fields) < 2 {
		rec.err = crerr.Newf("expected jersey number and rating, got %d field(s)", len(fields))
		return rec, true
	}

	jerseyNumber, err := parseField(fields[0], "jersey number")
	if err != nil {
		rec.err = err
		return rec, true
	}
	rating, err := parseField(fields[1], "rating")
	if err != nil {
		rec.err = err
		return rec, true
	}

	rec.entry = roster.Entry{JerseyNumber: jerseyNumber, Rating: rating}
	return rec, true
}

func parseField(tok []byte, name string) (int, error) {
	n, err := strconv.Atoi(string(tok))
	if err != nil {
		// NumError repeats the whole input; keep only its cause.
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, crerr.Wrapf(err, "parse %s %q", name, truncateToken(tok))
	}
	return n, nil
}

// truncateToken keeps diagnostics for runaway tokens to a readable size.
func truncateToken(tok []byte) string {
	const limit = 32
	if len(tok) <= limit {
		return string(tok)
	}
	return string(tok[:limit]) + "..."
}

func encodeText(entries []roster.Entry) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, e := range entries {
		_, _ = buf.WriteString(strconv.Itoa(e.JerseyNumber))
		_ = buf.WriteByte(' ')
		_, _ = buf.WriteString(strconv.Itoa(e.Rating))
		_ = buf.WriteByte('\n')
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}
