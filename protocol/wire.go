package protocol

import (
	"sort"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bastionctf/bastion/errors"
)

// Encoding helpers. Scalar fields follow proto3 implicit presence
// (zero values are omitted); optional fields follow explicit presence
// (emitted whenever the pointer is non-nil, even for zero values).

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendOptString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendOptInt64(b []byte, num protowire.Number, v *int64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(*v))
}

// appendMessage emits a length-delimited submessage. Callers skip nil
// pointers before calling.
func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.marshalAppend(nil))
}

// appendMapEntry emits one map<string, M> entry message (key = 1,
// value = 2). Key and value are always present so the entry round-trips
// exactly.
func appendMapEntry(b []byte, num protowire.Number, key string, m Message) []byte {
	var entry []byte
	entry = protowire.AppendTag(entry, 1, protowire.BytesType)
	entry = protowire.AppendString(entry, key)
	entry = protowire.AppendTag(entry, 2, protowire.BytesType)
	entry = protowire.AppendBytes(entry, m.marshalAppend(nil))

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, entry)
}

func consumeString(b []byte) (string, []byte, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", nil, errors.WithStack(protowire.ParseError(n))
	}
	return v, b[n:], nil
}

func consumeBytes(b []byte) ([]byte, []byte, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, nil, errors.WithStack(protowire.ParseError(n))
	}
	return v, b[n:], nil
}

func consumeVarint(b []byte) (uint64, []byte, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, nil, errors.WithStack(protowire.ParseError(n))
	}
	return v, b[n:], nil
}

// skipField discards an unknown field, keeping decoding forward-compatible.
func skipField(b []byte, num protowire.Number, typ protowire.Type) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return nil, errors.WithStack(protowire.ParseError(n))
	}
	return b[n:], nil
}

// consumeMessage decodes a length-delimited submessage into m.
func consumeMessage(b []byte, m Message) ([]byte, error) {
	raw, rest, err := consumeBytes(b)
	if err != nil {
		return nil, err
	}
	if err := m.unmarshal(raw); err != nil {
		return nil, err
	}
	return rest, nil
}

// consumeMapEntry decodes one map<string, M> entry into key and m.
func consumeMapEntry(b []byte, m Message) (string, []byte, error) {
	raw, rest, err := consumeBytes(b)
	if err != nil {
		return "", nil, err
	}
	var key string
	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return "", nil, errors.WithStack(protowire.ParseError(n))
		}
		raw = raw[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			key, raw, err = consumeString(raw)
		case num == 2 && typ == protowire.BytesType:
			raw, err = consumeMessage(raw, m)
		default:
			raw, err = skipField(raw, num, typ)
		}
		if err != nil {
			return "", nil, err
		}
	}
	return key, rest, nil
}

func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Empty) marshalAppend(b []byte) []byte { return b }

func (m *Empty) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		var err error
		if b, err = skipField(b[n:], num, typ); err != nil {
			return err
		}
	}
	return nil
}

func (m *PingRequest) marshalAppend(b []byte) []byte {
	return appendString(b, 1, m.Name)
}

func (m *PingRequest) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *PingReply) marshalAppend(b []byte) []byte {
	return appendString(b, 1, m.Message)
}

func (m *PingReply) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Message, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *ChallengeAttachment) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.URL)
	return b
}

func (m *ChallengeAttachment) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.URL, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Challenge) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Description)
	b = appendString(b, 3, m.Category)
	b = appendString(b, 4, m.Author)
	b = appendOptString(b, 5, m.TicketTemplate)
	for _, f := range m.Files {
		b = appendMessage(b, 6, f)
	}
	b = appendString(b, 7, m.Flag)
	b = appendOptString(b, 8, m.Healthscript)
	b = appendOptInt64(b, 9, m.Points)
	b = appendOptString(b, 10, m.ScoreType)
	return b
}

func (m *Challenge) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Description, b, err = consumeString(b)
		case num == 3 && typ == protowire.BytesType:
			m.Category, b, err = consumeString(b)
		case num == 4 && typ == protowire.BytesType:
			m.Author, b, err = consumeString(b)
		case num == 5 && typ == protowire.BytesType:
			var v string
			if v, b, err = consumeString(b); err == nil {
				m.TicketTemplate = &v
			}
		case num == 6 && typ == protowire.BytesType:
			f := new(ChallengeAttachment)
			if b, err = consumeMessage(b, f); err == nil {
				m.Files = append(m.Files, f)
			}
		case num == 7 && typ == protowire.BytesType:
			m.Flag, b, err = consumeString(b)
		case num == 8 && typ == protowire.BytesType:
			var v string
			if v, b, err = consumeString(b); err == nil {
				m.Healthscript = &v
			}
		case num == 9 && typ == protowire.VarintType:
			var v uint64
			if v, b, err = consumeVarint(b); err == nil {
				p := int64(v)
				m.Points = &p
			}
		case num == 10 && typ == protowire.BytesType:
			var v string
			if v, b, err = consumeString(b); err == nil {
				m.ScoreType = &v
			}
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Category) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Color)
	return b
}

func (m *Category) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Color, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Author) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.AvatarURL)
	b = appendString(b, 3, m.DiscordID)
	return b
}

func (m *Author) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.AvatarURL, b, err = consumeString(b)
		case num == 3 && typ == protowire.BytesType:
			m.DiscordID, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *ChallengeData) marshalAppend(b []byte) []byte {
	for _, k := range sortedMapKeys(m.Challenges) {
		b = appendMapEntry(b, 1, k, m.Challenges[k])
	}
	for _, k := range sortedMapKeys(m.Categories) {
		b = appendMapEntry(b, 2, k, m.Categories[k])
	}
	for _, k := range sortedMapKeys(m.Authors) {
		b = appendMapEntry(b, 3, k, m.Authors[k])
	}
	return b
}

func (m *ChallengeData) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			v := new(Challenge)
			var key string
			if key, b, err = consumeMapEntry(b, v); err == nil {
				if m.Challenges == nil {
					m.Challenges = make(map[string]*Challenge)
				}
				m.Challenges[key] = v
			}
		case num == 2 && typ == protowire.BytesType:
			v := new(Category)
			var key string
			if key, b, err = consumeMapEntry(b, v); err == nil {
				if m.Categories == nil {
					m.Categories = make(map[string]*Category)
				}
				m.Categories[key] = v
			}
		case num == 3 && typ == protowire.BytesType:
			v := new(Author)
			var key string
			if key, b, err = consumeMapEntry(b, v); err == nil {
				if m.Authors == nil {
					m.Authors = make(map[string]*Author)
				}
				m.Authors[key] = v
			}
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *GetAttachmentByHashRequest) marshalAppend(b []byte) []byte {
	return appendString(b, 1, m.Hash)
}

func (m *GetAttachmentByHashRequest) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Hash, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *GetAttachmentByHashReply) marshalAppend(b []byte) []byte {
	return appendOptString(b, 1, m.URL)
}

func (m *GetAttachmentByHashReply) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			var v string
			if v, b, err = consumeString(b); err == nil {
				m.URL = &v
			}
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
