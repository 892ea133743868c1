package command

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jeanpaul/attache/internal/apperr"
)

// Handler executes one operation with its parsed positional arguments and
// returns the message shown to the user.
type Handler func(args []string) (string, error)

// Response is what a front-end renders after dispatching one line. Errors
// arrive here as text, already converted; nothing propagates past Dispatch.
type Response struct {
	Op       string
	Message  string
	IsError  bool
	Inferred bool   // the command was guessed, not typed exactly
	Phrase   string // canonical phrase for the inferred hint
}

// Dispatcher binds operations to handlers and runs the full line pipeline:
// resolve, split per arity class, invoke.
type Dispatcher struct {
	resolver *Resolver
	handlers map[string]Handler
}

func NewDispatcher(resolver *Resolver) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		handlers: make(map[string]Handler),
	}
}

func (d *Dispatcher) Register(op string, h Handler) {
	d.handlers[op] = h
}

// Dispatch processes one raw input line. Every failure — resolution, arity,
// validation, lookup — comes back as a Response with IsError set; the read
// loop never sees a fault.
func (d *Dispatcher) Dispatch(line string) (resp Response) {
	defer func() {
		if p := recover(); p != nil {
			resp = Response{Message: fmt.Sprintf("internal error: %v", p), IsError: true}
		}
	}()

	res, err := d.resolver.Resolve(line)
	if err != nil {
		return Response{Message: err.Error(), IsError: true}
	}
	resp = Response{Op: res.Spec.Op, Inferred: res.Inferred, Phrase: res.Spec.Phrases[0]}

	// An inferred command came from prose or a typo, so the line carries no
	// trustworthy positional arguments. Run it bare: zero-argument commands
	// just work, the rest answer with their usage line.
	rest := res.Rest
	if res.Inferred {
		rest = ""
	}

	args, err := SplitArgs(res.Spec, rest)
	if err != nil {
		resp.Message = err.Error()
		resp.IsError = true
		return resp
	}

	h, ok := d.handlers[res.Spec.Op]
	if !ok {
		resp.Message = fmt.Sprintf("command %s is not available", res.Spec.Op)
		resp.IsError = true
		return resp
	}
	msg, err := h(args)
	if err != nil {
		// Classified errors carry a message written for the user; anything
		// else (I/O, export) keeps the raw error behind a plain prefix.
		if ae := apperr.As(err); ae != nil {
			resp.Message = ae.Message
		} else {
			resp.Message = "error: " + err.Error()
		}
		resp.IsError = true
		return resp
	}
	resp.Message = msg
	return resp
}

// SplitArgs splits the remainder text into positional arguments according to
// the spec's arity class. Missing or empty required tokens are an arity
// error carrying the usage string.
func SplitArgs(spec Spec, rest string) ([]string, error) {
	rest = strings.TrimSpace(rest)
	switch spec.Arity {
	case ArityNone:
		if rest != "" {
			return nil, apperr.Arityf("%s takes no arguments", spec.Phrases[0])
		}
		return nil, nil

	case ArityOne:
		if rest == "" {
			return nil, apperr.Arityf("usage: %s", spec.Usage)
		}
		return []string{rest}, nil

	case ArityTwo:
		parts := splitWhitespaceN(rest, 2)
		if len(parts) != 2 {
			return nil, apperr.Arityf("usage: %s", spec.Usage)
		}
		return parts, nil

	case ArityThree:
		parts := splitWhitespaceN(rest, 3)
		if len(parts) != 3 {
			return nil, apperr.Arityf("usage: %s", spec.Usage)
		}
		return parts, nil

	case ArityOneRest:
		parts := splitWhitespaceN(rest, 2)
		if len(parts) < 1 {
			return nil, apperr.Arityf("usage: %s", spec.Usage)
		}
		if len(parts) == 1 {
			parts = append(parts, "")
		}
		return parts, nil
	}
	return nil, apperr.Arityf("unknown arity class for %s", spec.Phrases[0])
}

// splitWhitespaceN splits s on whitespace runs into at most n parts; the
// last part keeps its embedded spaces.
func splitWhitespaceN(s string, n int) []string {
	s = strings.TrimSpace(s)
	var parts []string
	for len(parts) < n-1 {
		idx := strings.IndexFunc(s, unicode.IsSpace)
		if idx < 0 {
			break
		}
		parts = append(parts, s[:idx])
		s = strings.TrimSpace(s[idx:])
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
