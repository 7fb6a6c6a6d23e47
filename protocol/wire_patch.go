package protocol

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bastionctf/bastion/errors"
)

func (m *StringPatch) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Old)
	b = appendString(b, 2, m.New)
	return b
}

func (m *StringPatch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Old, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.New, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *OptionalStringPatch) marshalAppend(b []byte) []byte {
	b = appendOptString(b, 1, m.Old)
	b = appendOptString(b, 2, m.New)
	return b
}

func (m *OptionalStringPatch) unmarshal(b []byte) error {
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
				m.Old = &v
			}
		case num == 2 && typ == protowire.BytesType:
			var v string
			if v, b, err = consumeString(b); err == nil {
				m.New = &v
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

func (m *OptionalInt64Patch) marshalAppend(b []byte) []byte {
	b = appendOptInt64(b, 1, m.Old)
	b = appendOptInt64(b, 2, m.New)
	return b
}

func (m *OptionalInt64Patch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v uint64
			if v, b, err = consumeVarint(b); err == nil {
				p := int64(v)
				m.Old = &p
			}
		case num == 2 && typ == protowire.VarintType:
			var v uint64
			if v, b, err = consumeVarint(b); err == nil {
				p := int64(v)
				m.New = &p
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

func (m *ChallengeAttachmentsPatch) marshalAppend(b []byte) []byte {
	for _, f := range m.Old {
		b = appendMessage(b, 1, f)
	}
	for _, f := range m.New {
		b = appendMessage(b, 2, f)
	}
	return b
}

func (m *ChallengeAttachmentsPatch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			f := new(ChallengeAttachment)
			if b, err = consumeMessage(b, f); err == nil {
				m.Old = append(m.Old, f)
			}
		case num == 2 && typ == protowire.BytesType:
			f := new(ChallengeAttachment)
			if b, err = consumeMessage(b, f); err == nil {
				m.New = append(m.New, f)
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

func (m *ChallengePatch) marshalAppend(b []byte) []byte {
	if m.Name != nil {
		b = appendMessage(b, 1, m.Name)
	}
	if m.Description != nil {
		b = appendMessage(b, 2, m.Description)
	}
	if m.Category != nil {
		b = appendMessage(b, 3, m.Category)
	}
	if m.Author != nil {
		b = appendMessage(b, 4, m.Author)
	}
	if m.TicketTemplate != nil {
		b = appendMessage(b, 5, m.TicketTemplate)
	}
	if m.Files != nil {
		b = appendMessage(b, 6, m.Files)
	}
	if m.Flag != nil {
		b = appendMessage(b, 7, m.Flag)
	}
	if m.Healthscript != nil {
		b = appendMessage(b, 8, m.Healthscript)
	}
	if m.Points != nil {
		b = appendMessage(b, 9, m.Points)
	}
	if m.ScoreType != nil {
		b = appendMessage(b, 10, m.ScoreType)
	}
	return b
}

func (m *ChallengePatch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name = new(StringPatch)
			b, err = consumeMessage(b, m.Name)
		case num == 2 && typ == protowire.BytesType:
			m.Description = new(StringPatch)
			b, err = consumeMessage(b, m.Description)
		case num == 3 && typ == protowire.BytesType:
			m.Category = new(StringPatch)
			b, err = consumeMessage(b, m.Category)
		case num == 4 && typ == protowire.BytesType:
			m.Author = new(StringPatch)
			b, err = consumeMessage(b, m.Author)
		case num == 5 && typ == protowire.BytesType:
			m.TicketTemplate = new(OptionalStringPatch)
			b, err = consumeMessage(b, m.TicketTemplate)
		case num == 6 && typ == protowire.BytesType:
			m.Files = new(ChallengeAttachmentsPatch)
			b, err = consumeMessage(b, m.Files)
		case num == 7 && typ == protowire.BytesType:
			m.Flag = new(StringPatch)
			b, err = consumeMessage(b, m.Flag)
		case num == 8 && typ == protowire.BytesType:
			m.Healthscript = new(OptionalStringPatch)
			b, err = consumeMessage(b, m.Healthscript)
		case num == 9 && typ == protowire.BytesType:
			m.Points = new(OptionalInt64Patch)
			b, err = consumeMessage(b, m.Points)
		case num == 10 && typ == protowire.BytesType:
			m.ScoreType = new(OptionalStringPatch)
			b, err = consumeMessage(b, m.ScoreType)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *AuthorPatch) marshalAppend(b []byte) []byte {
	if m.Name != nil {
		b = appendMessage(b, 1, m.Name)
	}
	if m.AvatarURL != nil {
		b = appendMessage(b, 2, m.AvatarURL)
	}
	if m.DiscordID != nil {
		b = appendMessage(b, 3, m.DiscordID)
	}
	return b
}

func (m *AuthorPatch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name = new(StringPatch)
			b, err = consumeMessage(b, m.Name)
		case num == 2 && typ == protowire.BytesType:
			m.AvatarURL = new(StringPatch)
			b, err = consumeMessage(b, m.AvatarURL)
		case num == 3 && typ == protowire.BytesType:
			m.DiscordID = new(StringPatch)
			b, err = consumeMessage(b, m.DiscordID)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *CategoryPatch) marshalAppend(b []byte) []byte {
	if m.Name != nil {
		b = appendMessage(b, 1, m.Name)
	}
	if m.Color != nil {
		b = appendMessage(b, 2, m.Color)
	}
	return b
}

func (m *CategoryPatch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Name = new(StringPatch)
			b, err = consumeMessage(b, m.Name)
		case num == 2 && typ == protowire.BytesType:
			m.Color = new(StringPatch)
			b, err = consumeMessage(b, m.Color)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *PatchChallenge) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	if m.Patch != nil {
		b = appendMessage(b, 2, m.Patch)
	}
	return b
}

func (m *PatchChallenge) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Patch = new(ChallengePatch)
			b, err = consumeMessage(b, m.Patch)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *DeleteChallenge) marshalAppend(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *DeleteChallenge) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *CreateChallenge) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	if m.Value != nil {
		b = appendMessage(b, 2, m.Value)
	}
	return b
}

func (m *CreateChallenge) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Value = new(Challenge)
			b, err = consumeMessage(b, m.Value)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *PatchAuthor) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	if m.Patch != nil {
		b = appendMessage(b, 2, m.Patch)
	}
	return b
}

func (m *PatchAuthor) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Patch = new(AuthorPatch)
			b, err = consumeMessage(b, m.Patch)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *DeleteAuthor) marshalAppend(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *DeleteAuthor) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *CreateAuthor) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	if m.Value != nil {
		b = appendMessage(b, 2, m.Value)
	}
	return b
}

func (m *CreateAuthor) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Value = new(Author)
			b, err = consumeMessage(b, m.Value)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *PatchCategory) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	if m.Patch != nil {
		b = appendMessage(b, 2, m.Patch)
	}
	return b
}

func (m *PatchCategory) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Patch = new(CategoryPatch)
			b, err = consumeMessage(b, m.Patch)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *DeleteCategory) marshalAppend(b []byte) []byte {
	return appendString(b, 1, m.ID)
}

func (m *DeleteCategory) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *CreateCategory) marshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.ID)
	if m.Value != nil {
		b = appendMessage(b, 2, m.Value)
	}
	return b
}

func (m *CreateCategory) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.ID, b, err = consumeString(b)
		case num == 2 && typ == protowire.BytesType:
			m.Value = new(Category)
			b, err = consumeMessage(b, m.Value)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *ChallengeDataPatchAction) marshalAppend(b []byte) []byte {
	switch {
	case m.PatchChallenge != nil:
		b = appendMessage(b, 1, m.PatchChallenge)
	case m.DeleteChallenge != nil:
		b = appendMessage(b, 2, m.DeleteChallenge)
	case m.CreateChallenge != nil:
		b = appendMessage(b, 3, m.CreateChallenge)
	case m.PatchAuthor != nil:
		b = appendMessage(b, 4, m.PatchAuthor)
	case m.DeleteAuthor != nil:
		b = appendMessage(b, 5, m.DeleteAuthor)
	case m.CreateAuthor != nil:
		b = appendMessage(b, 6, m.CreateAuthor)
	case m.PatchCategory != nil:
		b = appendMessage(b, 7, m.PatchCategory)
	case m.DeleteCategory != nil:
		b = appendMessage(b, 8, m.DeleteCategory)
	case m.CreateCategory != nil:
		b = appendMessage(b, 9, m.CreateCategory)
	}
	return b
}

func (m *ChallengeDataPatchAction) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.PatchChallenge = new(PatchChallenge)
			b, err = consumeMessage(b, m.PatchChallenge)
		case num == 2 && typ == protowire.BytesType:
			m.DeleteChallenge = new(DeleteChallenge)
			b, err = consumeMessage(b, m.DeleteChallenge)
		case num == 3 && typ == protowire.BytesType:
			m.CreateChallenge = new(CreateChallenge)
			b, err = consumeMessage(b, m.CreateChallenge)
		case num == 4 && typ == protowire.BytesType:
			m.PatchAuthor = new(PatchAuthor)
			b, err = consumeMessage(b, m.PatchAuthor)
		case num == 5 && typ == protowire.BytesType:
			m.DeleteAuthor = new(DeleteAuthor)
			b, err = consumeMessage(b, m.DeleteAuthor)
		case num == 6 && typ == protowire.BytesType:
			m.CreateAuthor = new(CreateAuthor)
			b, err = consumeMessage(b, m.CreateAuthor)
		case num == 7 && typ == protowire.BytesType:
			m.PatchCategory = new(PatchCategory)
			b, err = consumeMessage(b, m.PatchCategory)
		case num == 8 && typ == protowire.BytesType:
			m.DeleteCategory = new(DeleteCategory)
			b, err = consumeMessage(b, m.DeleteCategory)
		case num == 9 && typ == protowire.BytesType:
			m.CreateCategory = new(CreateCategory)
			b, err = consumeMessage(b, m.CreateCategory)
		default:
			b, err = skipField(b, num, typ)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *ChallengeDataPatch) marshalAppend(b []byte) []byte {
	for _, a := range m.Actions {
		b = appendMessage(b, 1, a)
	}
	return b
}

func (m *ChallengeDataPatch) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.WithStack(protowire.ParseError(n))
		}
		b = b[n:]
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			a := new(ChallengeDataPatchAction)
			if b, err = consumeMessage(b, a); err == nil {
				m.Actions = append(m.Actions, a)
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
