package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nfrund/pinboard/internal/tagmgr"
)

// Action is a state change keyed by a registered tag.
type Action struct {
	// ID uniquely identifies this dispatch.
	ID string
	// Type is the tag handlers match on.
	Type tagmgr.Tag
	// Payload is the raw JSON body, if any.
	Payload json.RawMessage
	// Metadata carries context such as the originating user or channel.
	Metadata map[string]string
}

// NewAction builds an action for tag, encoding payload as JSON. A nil payload
// produces an action without a body; a nil tag fails with tagmgr.ErrUnknownTag.
func NewAction(tag tagmgr.Tag, payload interface{}) (Action, error) {
	if tag == nil {
		return Action{}, unknownTag(nil)
	}

	action := Action{
		ID:       uuid.NewString(),
		Type:     tag,
		Metadata: make(map[string]string),
	}
	if payload == nil {
		return action, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Action{}, fmt.Errorf("encode %s payload: %w", tag.Name(), err)
	}
	action.Payload = raw
	return action, nil
}

// Envelope is the JSON shape of an action on the wire:
//
//	{"type":"CARD_MOVE","payload":{"cardId":7,"listId":2,"position":0}}
type Envelope struct {
	ID      string          `json:"id,omitempty" validate:"omitempty,uuid"`
	Type    string          `json:"type" validate:"required,tagname"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Codec converts between envelopes and actions, resolving tag names through
// a manager.
type Codec struct {
	tags     *tagmgr.Manager
	validate *validator.Validate
}

// NewCodec creates a codec backed by the given tags.
func NewCodec(tags *tagmgr.Manager) *Codec {
	v := validator.New()
	names := tagmgr.NewValidator()
	_ = v.RegisterValidation("tagname", func(fl validator.FieldLevel) bool {
		return names.ValidateName(fl.Field().String()) == nil
	})

	return &Codec{tags: tags, validate: v}
}

// Decode parses an envelope and resolves its type. Well-formed names that are
// not registered fail with tagmgr.ErrUnknownTag.
func (c *Codec) Decode(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Action{}, fmt.Errorf("decode envelope: %w", err)
	}
	if err := c.validate.Struct(env); err != nil {
		return Action{}, fmt.Errorf("invalid envelope: %w", err)
	}

	tag, err := c.tags.Lookup(env.Type)
	if err != nil {
		return Action{}, fmt.Errorf("decode envelope: %w", err)
	}

	id := env.ID
	if id == "" {
		id = uuid.NewString()
	}
	return Action{
		ID:       id,
		Type:     tag,
		Payload:  env.Payload,
		Metadata: make(map[string]string),
	}, nil
}

// Encode renders an action as an envelope.
func (c *Codec) Encode(action Action) ([]byte, error) {
	if !c.tags.Has(action.Type) {
		return nil, unknownTag(action.Type)
	}
	return json.Marshal(Envelope{
		ID:      action.ID,
		Type:    action.Type.Value(),
		Payload: action.Payload,
	})
}

func unknownTag(tag tagmgr.Tag) error {
	name := "<nil>"
	if tag != nil {
		name = tag.Name()
	}
	return &tagmgr.TagError{
		Type:    tagmgr.ErrorUnknownTag,
		Tag:     name,
		Message: fmt.Sprintf("tag is not registered: %s", name),
	}
}
