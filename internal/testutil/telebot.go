package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// Reply is one outgoing message captured by FakeContext
type Reply struct {
	Text   string
	Markup *tele.ReplyMarkup
	Edited bool
}

// FakeContext implements the parts of tele.Context the handlers use.
// Calling any other method panics.
type FakeContext struct {
	tele.Context

	User      *tele.User
	Msg       *tele.Message
	Cb        *tele.Callback
	Replies   []Reply
	Responses []*tele.CallbackResponse
	EditErr   error
}

// NewTextContext fakes a text message from userID
func NewTextContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID},
		Msg:  &tele.Message{Text: text},
	}
}

// NewCallbackContext fakes an inline button tap from userID
func NewCallbackContext(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID},
		Cb: &tele.Callback{
			ID:      "cb-1",
			Unique:  unique,
			Data:    data,
			Message: &tele.Message{ID: 1},
		},
	}
}

// NewPhotoContext fakes a photo upload from userID
func NewPhotoContext(userID int64, fileID string) *FakeContext {
	return &FakeContext{
		User: &tele.User{ID: userID},
		Msg: &tele.Message{
			Photo: &tele.Photo{File: tele.File{FileID: fileID}},
		},
	}
}

func (c *FakeContext) Sender() *tele.User { return c.User }

func (c *FakeContext) Message() *tele.Message {
	if c.Cb != nil {
		return c.Cb.Message
	}
	return c.Msg
}

func (c *FakeContext) Callback() *tele.Callback { return c.Cb }

func (c *FakeContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	return c.Msg.Text
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Replies = append(c.Replies, newReply(what, opts, false))
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Replies = append(c.Replies, newReply(what, opts, true))
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, nil)
		return nil
	}
	c.Responses = append(c.Responses, resp[0])
	return nil
}

// LastReply returns the most recent outgoing message
func (c *FakeContext) LastReply() Reply {
	if len(c.Replies) == 0 {
		return Reply{}
	}
	return c.Replies[len(c.Replies)-1]
}

// Alerts returns the texts of callback responses
func (c *FakeContext) Alerts() []string {
	var out []string
	for _, r := range c.Responses {
		if r != nil && r.Text != "" {
			out = append(out, r.Text)
		}
	}
	return out
}

func newReply(what interface{}, opts []interface{}, edited bool) Reply {
	r := Reply{Edited: edited}
	if s, ok := what.(string); ok {
		r.Text = s
	}
	for _, o := range opts {
		if m, ok := o.(*tele.ReplyMarkup); ok {
			r.Markup = m
		}
	}
	return r
}
