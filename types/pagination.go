package types

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/Gravity-Devs/liquidity/internal/wire"
)

// PageRequest selects a page of a list query.
type PageRequest struct {
	Key        []byte
	Offset     uint64
	Limit      uint64
	CountTotal bool
	Reverse    bool
}

// Apply encodes the request as gateway "pagination.*" query parameters.
func (p *PageRequest) Apply(v url.Values) {
	if p == nil {
		return
	}
	if len(p.Key) > 0 {
		v.Set("pagination.key", base64.StdEncoding.EncodeToString(p.Key))
	}
	if p.Offset > 0 {
		v.Set("pagination.offset", strconv.FormatUint(p.Offset, 10))
	}
	if p.Limit > 0 {
		v.Set("pagination.limit", strconv.FormatUint(p.Limit, 10))
	}
	if p.CountTotal {
		v.Set("pagination.count_total", "true")
	}
	if p.Reverse {
		v.Set("pagination.reverse", "true")
	}
}

// PageResponse is the pagination block of a list response.
type PageResponse struct {
	NextKey []byte
	Total   uint64
}

// MarshalJSON implements json.Marshaler.
func (p PageResponse) MarshalJSON() ([]byte, error) {
	out := struct {
		NextKey []byte `json:"next_key"`
		Total   string `json:"total"`
	}{NextKey: p.NextKey, Total: wire.FormatUint64(p.Total)}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PageResponse) UnmarshalJSON(b []byte) error {
	obj, err := wire.ParseObject(b)
	if err != nil {
		return err
	}
	*p = PageResponse{}
	if err := obj.Value("next_key", &p.NextKey); err != nil {
		return err
	}
	return obj.Uint64("total", &p.Total)
}
