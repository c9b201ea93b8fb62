// Command solar-lsp adapts the compiler pipeline's diagnostics to the
// Language Server Protocol, mirroring the teacher's cmd/lsp-server
// handler registration pattern on top of github.com/tliron/glsp. It
// introduces no new compiler semantics: every diagnostic it publishes
// is produced by the same parser/compiler used by cmd/solar.
package main

import (
	"fmt"
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glsp_server "github.com/tliron/glsp/server"
)

const lsName = "solar"

var version string = "0.0.1"

func main() {
	fmt.Fprintf(os.Stderr, "solar-lsp starting\n")

	server := glsp_server.NewServer(NewServer(), lsName, false)

	if err := server.RunStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

type Server struct {
	handler   protocol.Handler
	documents map[protocol.DocumentUri]protocol.TextDocumentItem
}

func NewServer() *Server {
	s := Server{
		documents: map[protocol.DocumentUri]protocol.TextDocumentItem{},
	}
	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
	}
	return &s
}

func (s *Server) Handle(context *glsp.Context) (r any, validMethod bool, validParams bool, err error) {
	return s.handler.Handle(context)
}

func (s *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (*Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (*Server) shutdown(context *glsp.Context) error {
	return nil
}

func (s *Server) textDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.documents[params.TextDocument.URI] = params.TextDocument
	if params.TextDocument.LanguageID == lsName {
		s.validate(context, params.TextDocument.URI, params.TextDocument.Text)
	}
	return nil
}

func (s *Server) textDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.documents[params.TextDocument.URI]

	for _, change := range params.ContentChanges {
		whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
		if !ok {
			return fmt.Errorf("incremental changes not supported")
		}
		doc = protocol.TextDocumentItem{
			URI:        params.TextDocument.URI,
			LanguageID: doc.LanguageID,
			Version:    params.TextDocument.Version,
			Text:       whole.Text,
		}
		s.documents[params.TextDocument.URI] = doc
		if doc.LanguageID == lsName {
			s.validate(context, params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}
