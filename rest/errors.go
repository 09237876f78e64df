package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gravity-Devs/liquidity/types"
)

// Error is a non-2xx gateway response. Code is the gRPC status code reported
// in the body, when there is one.
type Error struct {
	StatusCode int
	Code       int
	Message    string
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}
	var gw struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &gw); err == nil {
		e.Code = gw.Code
		e.Message = gw.Message
		if e.Message == "" {
			e.Message = gw.Error
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("rest: status %d (code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("rest: status %d: %s", e.StatusCode, e.Message)
}

// Is makes a 404, or a gateway NotFound code, match types.ErrNotFound.
func (e *Error) Is(target error) bool {
	if target != types.ErrNotFound {
		return false
	}
	return e.StatusCode == http.StatusNotFound || e.Code == 5
}
