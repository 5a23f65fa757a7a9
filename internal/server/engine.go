package server

import (
	"strings"

	"github.com/glowkv/glowkv/internal/keyspace"
	"github.com/glowkv/glowkv/internal/resp"
	"go.uber.org/zap"
)

// Engine is the command dispatcher: a pure routing and validation
// layer over the registry built by newCommandRegistry. It holds no
// state of its own beyond the keyspace handle every handler needs.
type Engine struct {
	commands map[string]commandMetadata
	keyspace *keyspace.Keyspace
	logger   *zap.Logger
}

// NewEngine builds an Engine dispatching against ks.
func NewEngine(ks *keyspace.Keyspace, logger *zap.Logger) *Engine {
	return &Engine{
		commands: newCommandRegistry(),
		keyspace: ks,
		logger:   logger,
	}
}

// Execute uppercases name, validates arity, and invokes the matching
// handler. Unknown commands and arity mismatches are returned as RESP
// error replies, never as a Go error — no caller of Execute ever needs
// to distinguish "command failed" from "command reported an error".
func (e *Engine) Execute(name string, args []string) resp.Value {
	upper := strings.ToUpper(name)

	if e.logger.Core().Enabled(zap.DebugLevel) {
		e.logger.Debug("dispatching command", zap.String("cmd", upper), zap.Int("argc", len(args)))
	}

	meta, ok := e.commands[upper]
	if !ok {
		return resp.MakeErrorf("ERR unknown command '%s'", name)
	}
	if !arityOK(meta.arity, len(args)+1) {
		return resp.MakeErrorf("ERR wrong number of arguments for '%s' command", strings.ToLower(upper))
	}

	ctx := &Context{Args: args, Keyspace: e.keyspace}
	return meta.handler(ctx)
}
