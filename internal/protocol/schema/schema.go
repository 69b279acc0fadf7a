package schema

import (
	"fmt"

	"github.com/danmuck/ghostwire/internal/protocol"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/rs/zerolog/log"
)

// Requirement constrains how often one field may appear in a container.
type Requirement struct {
	ID       tlv.FieldID
	Required bool
	Unique   bool
}

type ValidationError struct {
	Scope   string
	FieldID tlv.FieldID
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("schema: %s field=%s: %v", e.Scope, e.FieldID, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Envelope holds the reserved top-level fields every packet carries exactly
// once so responses can be paired with requests.
var Envelope = []Requirement{
	{ID: tlv.FieldMethod, Required: true, Unique: true},
	{ID: tlv.FieldRequestID, Required: true, Unique: true},
}

// Validate enforces presence and uniqueness requirements on c.
// Fields not named by reqs are ignored.
func Validate(scope string, c tlv.Container, reqs []Requirement) error {
	log.Debug().Str("scope", scope).Int("fields", len(c.All())).Msg("schema.Validate")
	for _, req := range reqs {
		count := len(c.Children(req.ID))
		if req.Required && count == 0 {
			log.Error().Str("scope", scope).Stringer("field", req.ID).Msg("schema.Validate missing field")
			return ValidationError{Scope: scope, FieldID: req.ID, Err: protocol.ErrMissingField}
		}
		if req.Unique && count > 1 {
			log.Error().
				Str("scope", scope).
				Stringer("field", req.ID).
				Int("count", count).
				Msg("schema.Validate duplicate field")
			return ValidationError{Scope: scope, FieldID: req.ID, Err: protocol.ErrDuplicateField}
		}
	}
	return nil
}
