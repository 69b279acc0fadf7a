package packet

import (
	"fmt"

	"github.com/danmuck/ghostwire/internal/protocol/tlv"
)

// ResultCode is the status a response reports in its Result field.
type ResultCode uint32

const (
	ResultSuccess            ResultCode = 0
	ResultInvalidFunction    ResultCode = 1
	ResultInvalidData        ResultCode = 13
	ResultCallNotImplemented ResultCode = 120
	ResultBadArguments       ResultCode = 160
	ResultAlreadyExists      ResultCode = 183
)

var resultNames = map[ResultCode]string{
	ResultSuccess:            "success",
	ResultInvalidFunction:    "invalid_function",
	ResultInvalidData:        "invalid_data",
	ResultCallNotImplemented: "call_not_implemented",
	ResultBadArguments:       "bad_arguments",
	ResultAlreadyExists:      "already_exists",
}

func (c ResultCode) String() string {
	if name, ok := resultNames[c]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", uint32(c))
}

// Result returns the packet's result code. Codes outside the named set are
// returned as-is.
func (p *Packet) Result() (ResultCode, error) {
	v, err := p.GetUint32(tlv.FieldResult)
	if err != nil {
		return 0, err
	}
	return ResultCode(v), nil
}

// SetResult replaces any existing result.
func (p *Packet) SetResult(code ResultCode) {
	p.Remove(tlv.FieldResult)
	p.mustAdd(p.AddUint32(tlv.FieldResult, uint32(code)))
}
