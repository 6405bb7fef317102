package lsp

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"unicode"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/plum-lang/plum/pkg/diag"
	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/mods"
	"github.com/plum-lang/plum/pkg/parse"
	"github.com/plum-lang/plum/pkg/stream"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	evaler  *eval.Evaler
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{eval.NewEvaler(mods.All(io.Discard)...), make(map[lsp.DocumentURI]string)}
}

func (s *server) close() { s.evaler.Close() }

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":              s.initialize,
		"textDocument/didOpen":    s.didOpen,
		"textDocument/didChange":  s.didChange,
		"textDocument/didClose":   s.didClose,
		"textDocument/hover":      s.hover,
		"textDocument/completion": s.completion,

		"shutdown": noop,
		"exit":     exit,
		// Required by the protocol.
		"initialized": noop,
		// Called by clients even when server doesn't advertise support.
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func exit(_ context.Context, conn jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, conn.Close()
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		logger.Debugf("request %s", req.Method)
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider:      true,
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.content[uri] = content
	publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	delete(s.content, params.TextDocument.URI)
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.content[params.TextDocument.URI]
	from, to := wordAt(content, lspPositionToIdx(content, params.Position))
	v, ok := s.evaler.Global().Get(content[from:to])
	if from == to || !ok {
		return lsp.Hover{}, nil
	}
	r := lspRangeFromRange(content, diag.Ranging{From: from, To: to})
	return lsp.Hover{
		Contents: []lsp.MarkedString{{Language: "plum", Value: content[from:to] + ": " + kindOf(v)}},
		Range:    &r,
	}, nil
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.content[params.TextDocument.URI]
	dot := lspPositionToIdx(content, params.Position)
	from, _ := wordAt(content, dot)
	prefix := content[from:dot]
	lspRange := lspRangeFromRange(content, diag.Ranging{From: from, To: dot})

	items := []lsp.CompletionItem{}
	for _, name := range s.evaler.Global().Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		v, _ := s.evaler.Global().Get(name)
		kind := lsp.CIKVariable
		if isFunction(v) {
			kind = lsp.CIKFunction
		}
		items = append(items, lsp.CompletionItem{
			Label:  name,
			Kind:   kind,
			Detail: kindOf(v),
			TextEdit: &lsp.TextEdit{
				Range:   lspRange,
				NewText: name,
			},
		})
	}
	return items, nil
}

func isFunction(v any) bool {
	switch v.(type) {
	case eval.Callable, stream.StepFunc:
		return true
	}
	return false
}

func kindOf(v any) string {
	if _, ok := v.(stream.StepFunc); ok {
		return "step"
	}
	return vals.Kind(v)
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	err := conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content)})
	if err != nil {
		logger.Warnf("publish diagnostics for %s: %v", uri, err)
	}
}

func diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	_, err := parse.Parse(parse.Source{Name: string(uri), Code: content})
	if err == nil {
		return []lsp.Diagnostic{}
	}
	parseErr, ok := err.(*parse.Error)
	if !ok {
		return []lsp.Diagnostic{{Severity: lsp.Error, Source: "parse", Message: err.Error()}}
	}
	return []lsp.Diagnostic{{
		Range:    lspRangeFromRange(content, parseErr),
		Severity: lsp.Error,
		Source:   "parse",
		Message:  parseErr.Message,
	}}
}

// Finds the word surrounding idx in s.
func wordAt(s string, idx int) (from, to int) {
	from, to = idx, idx
	for from > 0 && isWordByte(s[from-1]) {
		from--
	}
	for to < len(s) && isWordByte(s[to]) {
		to++
	}
	return from, to
}

func isWordByte(b byte) bool {
	return b == '_' || b < 0x80 && (unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)))
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r':
			p.Line++
			p.Character = 0
		case r == '\n':
			if !lastCR {
				p.Line++
				p.Character = 0
			}
		case r <= 0xFFFF:
			// Encoded in UTF-16 with one unit
			p.Character++
		default:
			// Encoded in UTF-16 with two units
			p.Character += 2
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
