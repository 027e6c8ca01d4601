package file

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/roster-manager/internal/domain/roster"
)

func decodeJSON(raw []byte) ([]record, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var entries []roster.Entry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	out := make([]record, 0, len(entries))
	for i, e := range entries {
		out = append(out, record{pos: i + 1, entry: e})
	}
	return out, nil
}

func encodeJSON(entries []roster.Entry) ([]byte, error) {
	if entries == nil {
		entries = []roster.Entry{}
	}
	return sonic.Marshal(entries)
}
