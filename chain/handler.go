package chain

import (
	"fmt"
	"io"
)

type Kind string

const (
	KindAuth Kind = "auth"
	KindLog  Kind = "log"
	KindData Kind = "data"
)

type Request struct {
	Kind Kind
	Body string
}

// A Handler either fully handles the request or forwards it unchanged to
// the next handler. A request unhandled at the end of the chain is
// silently dropped.
type Handler interface {
	Handle(w io.Writer, req Request)
}

type AuthHandler struct {
	next Handler
}

func NewAuthHandler(next Handler) *AuthHandler {
	return &AuthHandler{next: next}
}

func (h *AuthHandler) Handle(w io.Writer, req Request) {
	if req.Kind == KindAuth {
		fmt.Fprintf(w, "auth handler authenticates %q\n", req.Body)
		return
	}
	if h.next != nil {
		h.next.Handle(w, req)
	}
}

type LogHandler struct {
	next Handler
}

func NewLogHandler(next Handler) *LogHandler {
	return &LogHandler{next: next}
}

func (h *LogHandler) Handle(w io.Writer, req Request) {
	if req.Kind == KindLog {
		fmt.Fprintf(w, "log handler records %q\n", req.Body)
		return
	}
	if h.next != nil {
		h.next.Handle(w, req)
	}
}

type DataHandler struct {
	next Handler
}

func NewDataHandler(next Handler) *DataHandler {
	return &DataHandler{next: next}
}

func (h *DataHandler) Handle(w io.Writer, req Request) {
	if req.Kind == KindData {
		fmt.Fprintf(w, "data handler serves %q\n", req.Body)
		return
	}
	if h.next != nil {
		h.next.Handle(w, req)
	}
}
