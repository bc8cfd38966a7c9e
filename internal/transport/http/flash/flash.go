// Package flash stores one-shot status messages in the cookie session; each
// message is shown on the next rendered page and then discarded.
package flash

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type Message struct {
	Kind string // "success" or "error"
	Text string
}

func Add(c *gin.Context, kind, text string) {
	session := sessions.Default(c)
	session.AddFlash(kind + "|" + text)
	_ = session.Save()
}

func Take(c *gin.Context) []Message {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save()

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		encoded, ok := item.(string)
		if !ok {
			continue
		}
		kind, text, found := strings.Cut(encoded, "|")
		if !found {
			kind, text = "success", encoded
		}
		messages = append(messages, Message{Kind: kind, Text: text})
	}
	return messages
}
